package application

import "errors"

// Sentinel errors returned by the services. Handlers map these onto HTTP
// statuses with errors.Is; anything else is an internal failure.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrItemNotFound       = errors.New("clothing item not found")
	ErrNotOwner           = errors.New("caller does not own this item")
)
