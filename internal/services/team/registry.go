package team

import (
	"sync"

	"github.com/exkludera/showdamage/internal/models"
)

// Registry maps connected sessions to their current team
type Registry struct {
	mu    sync.RWMutex
	teams map[models.PlayerSession]models.TeamID
}

// New creates an empty team registry
func New() *Registry {
	return &Registry{
		teams: make(map[models.PlayerSession]models.TeamID),
	}
}

// SetTeam records the latest team for a session, overwriting any previous value
func (r *Registry) SetTeam(session models.PlayerSession, team models.TeamID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams[session] = team
}

// GetTeam returns the session's team and whether one has been recorded
func (r *Registry) GetTeam(session models.PlayerSession) (models.TeamID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.teams[session]
	return team, ok
}

// Remove forgets a disconnected session
func (r *Registry) Remove(session models.PlayerSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.teams, session)
}

// Reset forgets every session
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams = make(map[models.PlayerSession]models.TeamID)
}

// Len returns the number of sessions with a known team
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.teams)
}
