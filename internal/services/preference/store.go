package preference

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/exkludera/showdamage/internal/models"
	preferenceRepo "github.com/exkludera/showdamage/internal/repositories/preference"
)

// PreferenceError is a custom error type for preference errors
type PreferenceError string

// Error implements the error interface
func (e PreferenceError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     PreferenceError = "config cannot be nil"
	ErrNilRepository PreferenceError = "preference repository cannot be nil"
	ErrEmptyIdentity PreferenceError = "identity cannot be empty"
)

// Config holds configuration for the preference store
type Config struct {
	Repository preferenceRepo.Repository
}

// Store is the in-memory opt-out set backed by a repository
type Store struct {
	repo preferenceRepo.Repository

	mu       sync.RWMutex
	optedOut map[models.PlayerIdentity]bool

	// saveMu serializes toggle+save so a slower save can never overwrite
	// the result of a later toggle
	saveMu sync.Mutex
}

// New creates a new, empty preference store. Call Load to read persisted
// state.
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	return &Store{
		repo:     cfg.Repository,
		optedOut: make(map[models.PlayerIdentity]bool),
	}, nil
}

// Load replaces the in-memory set with the persisted one. Unreadable or
// malformed storage falls back to an empty set with a warning; it never
// stops startup.
func (s *Store) Load(ctx context.Context) {
	loaded := make(map[models.PlayerIdentity]bool)

	output, err := s.repo.Load(ctx)
	if err != nil {
		log.Printf("preference: falling back to empty preferences: %v", err)
	} else {
		for identity := range output.OptOuts {
			loaded[models.PlayerIdentity(identity)] = true
		}
	}

	s.mu.Lock()
	s.optedOut = loaded
	s.mu.Unlock()
}

// IsOptedOut reports whether the identity disabled notifications
func (s *Store) IsOptedOut(identity models.PlayerIdentity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.optedOut[identity]
}

// Toggle flips the identity's opt-out and persists the whole set. It returns
// whether notifications are now enabled. When saving fails the flip is kept
// in memory and the error is returned alongside the new state.
func (s *Store) Toggle(ctx context.Context, identity models.PlayerIdentity) (bool, error) {
	if identity == "" {
		return false, ErrEmptyIdentity
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if s.optedOut[identity] {
		delete(s.optedOut, identity)
	} else {
		s.optedOut[identity] = true
	}
	enabled := !s.optedOut[identity]
	snapshot := make(map[string]bool, len(s.optedOut))
	for id := range s.optedOut {
		snapshot[string(id)] = true
	}
	s.mu.Unlock()

	if err := s.repo.Save(ctx, &preferenceRepo.SaveInput{OptOuts: snapshot}); err != nil {
		log.Printf("preference: failed to persist toggle for %s: %v", identity, err)
		return enabled, fmt.Errorf("failed to save preferences: %w", err)
	}

	return enabled, nil
}

// Len returns the number of opted-out identities
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.optedOut)
}

// Reset clears the in-memory set without touching storage
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.optedOut = make(map[models.PlayerIdentity]bool)
}
