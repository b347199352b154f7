package notification

import (
	"context"
	"time"

	"github.com/exkludera/showdamage/internal/host"
	"github.com/exkludera/showdamage/internal/i18n"
	"github.com/exkludera/showdamage/internal/models"
)

// GrenadeReset decides when cumulative grenade damage starts over
type GrenadeReset string

const (
	// GrenadeResetNever keeps totals until the session disconnects
	GrenadeResetNever GrenadeReset = "never"

	// GrenadeResetRound clears every total at round start
	GrenadeResetRound GrenadeReset = "round"

	// GrenadeResetLife clears a player's total when an enemy hit kills them
	GrenadeResetLife GrenadeReset = "life"
)

// Valid reports whether r is a known policy
func (r GrenadeReset) Valid() bool {
	switch r {
	case GrenadeResetNever, GrenadeResetRound, GrenadeResetLife:
		return true
	}
	return false
}

// Settings are the tunables that may change on config reload
type Settings struct {
	// DisplayDamage enables single-hit messages
	DisplayDamage bool

	// DisplayGrenadeDamage enables cumulative grenade messages
	DisplayGrenadeDamage bool

	// DisplayDuration is how long a message stays visible
	DisplayDuration time.Duration

	GrenadeReset GrenadeReset

	// Locale used to format messages
	Locale string
}

// TeamRegistry is the team lookup used for filtering
type TeamRegistry interface {
	SetTeam(session models.PlayerSession, team models.TeamID)
	GetTeam(session models.PlayerSession) (models.TeamID, bool)
	Remove(session models.PlayerSession)
	Reset()
}

// PreferenceStore is the opt-out set
type PreferenceStore interface {
	IsOptedOut(identity models.PlayerIdentity) bool
	Toggle(ctx context.Context, identity models.PlayerIdentity) (bool, error)
	Reset()
}

// DamageAggregator sums grenade damage per attacker
type DamageAggregator interface {
	AddDamage(session models.PlayerSession, amount int) (int, error)
	Remove(session models.PlayerSession)
	Reset()
}

// MessageScheduler shows timed messages
type MessageScheduler interface {
	Display(session models.PlayerSession, text string, duration time.Duration) error
	Remove(session models.PlayerSession)
	Reset()
}

// Config holds configuration for the notification service
type Config struct {
	Settings Settings

	// Registry dependencies
	Teams       TeamRegistry
	Preferences PreferenceStore
	Aggregator  DamageAggregator
	Scheduler   MessageScheduler

	// Output dependencies
	Catalog *i18n.Catalog
	Host    host.Host
}

// ToggleInput contains parameters for toggling notifications
type ToggleInput struct {
	// Player is the player who issued the command
	Player models.Player
}

// ToggleOutput contains the result of a toggle
type ToggleOutput struct {
	// Enabled is true when notifications are now on
	Enabled bool

	// Message is the acknowledgment sent to chat
	Message string
}
