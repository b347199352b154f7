package models

// ModelError is a custom error type for model validation errors
type ModelError string

// Error implements the error interface
func (e ModelError) Error() string {
	return string(e)
}

const (
	ErrInvalidIdentity ModelError = "invalid player identity"
)
