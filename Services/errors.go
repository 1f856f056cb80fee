package Services

import "errors"

// Error kinds the controllers translate to status codes. Not-found is not
// an error anywhere in this package: lookups return a nil DTO instead.
var (
	ErrValidation     = errors.New("validation failed")
	ErrConflict       = errors.New("duplicate natural key")
	ErrAuthentication = errors.New("invalid credentials")
)
