package workspace

import "errors"

// ErrNoActiveProject indicates no project is currently selected.
var ErrNoActiveProject = errors.New("no active project")
