package models

import "errors"

// Sentinel errors for request validation at the API boundary.
var (
	ErrMissingSubjectID = errors.New("subject id is required")
	ErrMissingActor     = errors.New("actor is required")
	ErrInvalidAction    = errors.New("unknown action type")
)
