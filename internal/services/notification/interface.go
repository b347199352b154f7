package notification

import (
	"context"

	"github.com/exkludera/showdamage/internal/events"
)

// Service defines the interface for damage notification handling
type Service interface {
	// HandleHurt decides whether a hurt event shows the attacker a message
	HandleHurt(ctx context.Context, event *events.PlayerHurt) error

	// HandleTeamChange records a player's new team
	HandleTeamChange(ctx context.Context, event *events.PlayerTeam) error

	// HandleDisconnect drops everything kept for a session
	HandleDisconnect(ctx context.Context, event *events.PlayerDisconnect) error

	// HandleRoundStart applies the round grenade reset policy
	HandleRoundStart(ctx context.Context, event *events.RoundStart) error

	// Toggle flips a player's opt-out and acknowledges it in chat
	Toggle(ctx context.Context, input *ToggleInput) (*ToggleOutput, error)

	// UpdateSettings swaps in reloaded settings
	UpdateSettings(settings Settings) error

	// Register subscribes the handlers to a router
	Register(router *events.Router)

	// Reset clears all in-memory state and stops pending timers
	Reset()
}
