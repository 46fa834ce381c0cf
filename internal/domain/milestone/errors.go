package milestone

import "errors"

var (
	// ErrMilestoneNotFound indicates the milestone doesn't exist.
	ErrMilestoneNotFound = errors.New("milestone not found")
	// ErrInvalidInput indicates invalid milestone input.
	ErrInvalidInput = errors.New("invalid milestone input")
)
