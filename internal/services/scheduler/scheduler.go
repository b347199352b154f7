package scheduler

import (
	"sort"
	"sync"
	"time"

	"github.com/exkludera/showdamage/internal/common/clock"
	"github.com/exkludera/showdamage/internal/models"
)

// SchedulerError is a custom error type for scheduling errors
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       SchedulerError = "config cannot be nil"
	ErrNilClock        SchedulerError = "clock cannot be nil"
	ErrEmptySession    SchedulerError = "session cannot be empty"
	ErrInvalidDuration SchedulerError = "display duration must be positive"
)

// Config holds configuration for the scheduler
type Config struct {
	Clock clock.Clock
}

// Message is a session's currently visible text
type Message struct {
	Session models.PlayerSession
	Text    string
}

// entry outlives expiry; only Remove and Reset drop it
type entry struct {
	text       string
	timer      clock.Timer
	generation uint64
}

// Scheduler owns at most one timed message per session. A new Display for a
// session replaces its text and restarts the expiry window.
type Scheduler struct {
	mu      sync.RWMutex
	clock   clock.Clock
	entries map[models.PlayerSession]*entry

	// generation is shared across sessions so a handle reused after Remove
	// can never match a timer armed for its previous entry
	generation uint64
}

// New creates a new scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &Scheduler{
		clock:   cfg.Clock,
		entries: make(map[models.PlayerSession]*entry),
	}, nil
}

// Display shows text to the session for duration, superseding whatever the
// session was showing
func (s *Scheduler) Display(session models.PlayerSession, text string, duration time.Duration) error {
	if session == "" {
		return ErrEmptySession
	}

	if duration <= 0 {
		return ErrInvalidDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[session]
	if !ok {
		e = &entry{}
		s.entries[session] = e
	}

	if e.timer != nil {
		e.timer.Stop()
	}

	s.generation++
	generation := s.generation

	e.text = text
	e.generation = generation
	e.timer = s.clock.AfterFunc(duration, func() {
		s.expire(session, generation)
	})

	return nil
}

// expire clears the text if the firing timer is still the session's latest
func (s *Scheduler) expire(session models.PlayerSession, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[session]
	if !ok || e.generation != generation {
		return
	}

	e.text = ""
	e.timer = nil
}

// CurrentText returns the session's visible text, if any
func (s *Scheduler) CurrentText(session models.PlayerSession) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[session]
	if !ok || e.text == "" {
		return "", false
	}
	return e.text, true
}

// Active returns every visible message ordered by session
func (s *Scheduler) Active() []Message {
	s.mu.RLock()
	messages := make([]Message, 0, len(s.entries))
	for session, e := range s.entries {
		if e.text == "" {
			continue
		}
		messages = append(messages, Message{Session: session, Text: e.text})
	}
	s.mu.RUnlock()

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Session < messages[j].Session
	})
	return messages
}

// Remove stops the session's timer and drops its bookkeeping
func (s *Scheduler) Remove(session models.PlayerSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[session]; ok {
		if e.timer != nil {
			e.timer.Stop()
		}
		delete(s.entries, session)
	}
}

// Reset stops every timer and drops all sessions
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	s.entries = make(map[models.PlayerSession]*entry)
}

// Tracked returns the number of sessions with bookkeeping, visible or not
func (s *Scheduler) Tracked() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
