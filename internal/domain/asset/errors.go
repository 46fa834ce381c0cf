package asset

import "errors"

var (
	// ErrAssetNotFound indicates the asset doesn't exist.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrProjectNotFound indicates the target project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid asset input.
	ErrInvalidInput = errors.New("invalid asset input")
	// ErrSharingDisabled indicates the target project's settings do not
	// allow cross-project assets.
	ErrSharingDisabled = errors.New("cross-project assets are disabled for this project")
)
