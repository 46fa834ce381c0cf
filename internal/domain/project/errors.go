package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrOwnerImmutable indicates an attempt to remove or re-role the
	// project owner's collaborator entry.
	ErrOwnerImmutable = errors.New("project owner cannot be removed or demoted")
	// ErrCollaboratorNotFound indicates the collaborator doesn't exist on
	// the project.
	ErrCollaboratorNotFound = errors.New("collaborator not found")
)
