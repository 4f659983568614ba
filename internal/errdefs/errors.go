package errdefs

import "errors"

var (
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrAuthentication   = errors.New("authentication error")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidRange     = errors.New("invalid comment range")
	ErrUnsupportedFile  = errors.New("unsupported file type")
	ErrFileTooLarge     = errors.New("file too large")
)
