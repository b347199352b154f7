package preference

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/exkludera/showdamage/internal/repositories/preference Repository

import (
	"context"
)

// Repository defines the interface for opt-out persistence. Every Save
// replaces the whole stored set.
type Repository interface {
	// Load reads the stored opt-out set. A store that does not exist yet
	// yields an empty set and no error.
	Load(ctx context.Context) (*LoadOutput, error)

	// Save overwrites the stored set
	Save(ctx context.Context, input *SaveInput) error
}
