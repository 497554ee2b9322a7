package domain

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("responsible user not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrFileTooLarge       = errors.New("file too large")
)
