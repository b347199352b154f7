package preference

// RepositoryError is a custom error type for preference persistence errors
type RepositoryError string

// Error implements the error interface
func (e RepositoryError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      RepositoryError = "config cannot be nil"
	ErrNilRedisClient RepositoryError = "redis client cannot be nil"
	ErrEmptyPath      RepositoryError = "path cannot be empty"
	ErrNilInput       RepositoryError = "input cannot be nil"

	// ErrMalformed is wrapped when stored data cannot be decoded
	ErrMalformed RepositoryError = "stored preferences are malformed"
)

// LoadOutput contains the stored opt-out records
type LoadOutput struct {
	// OptOuts maps identity to the stored flag. Presence of a key means
	// the player disabled notifications.
	OptOuts map[string]bool
}

// SaveInput contains the full set to persist
type SaveInput struct {
	OptOuts map[string]bool
}
