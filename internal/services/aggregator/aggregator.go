package aggregator

import (
	"sync"

	"github.com/exkludera/showdamage/internal/models"
)

// AggregatorError is a custom error type for aggregation errors
type AggregatorError string

// Error implements the error interface
func (e AggregatorError) Error() string {
	return string(e)
}

const (
	ErrNegativeDamage AggregatorError = "damage amount cannot be negative"
)

// Aggregator keeps a running total of area damage dealt by each attacker.
// Totals only grow; they are cleared by Remove, Reset or ResetSession.
type Aggregator struct {
	mu     sync.Mutex
	totals map[models.PlayerSession]int
}

// New creates an empty aggregator
func New() *Aggregator {
	return &Aggregator{
		totals: make(map[models.PlayerSession]int),
	}
}

// AddDamage adds amount to the session's total and returns the new total
func (a *Aggregator) AddDamage(session models.PlayerSession, amount int) (int, error) {
	if amount < 0 {
		return 0, ErrNegativeDamage
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.totals[session] += amount
	return a.totals[session], nil
}

// Total returns the session's current total, zero if it has none
func (a *Aggregator) Total(session models.PlayerSession) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.totals[session]
}

// Remove drops the session's entry
func (a *Aggregator) Remove(session models.PlayerSession) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.totals, session)
}

// Reset drops every entry
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.totals = make(map[models.PlayerSession]int)
}
