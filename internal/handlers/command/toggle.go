package command

//go:generate mockgen -package=mocks -destination=mocks/mock_toggler.go github.com/exkludera/showdamage/internal/handlers/command Toggler

import (
	"context"
	"fmt"

	"github.com/exkludera/showdamage/internal/events"
	"github.com/exkludera/showdamage/internal/services/notification"
)

// Toggler flips a player's damage notifications
type Toggler interface {
	Toggle(ctx context.Context, input *notification.ToggleInput) (*notification.ToggleOutput, error)
}

// ToggleCommand turns damage notifications on or off for the issuing player
type ToggleCommand struct {
	BaseCommand
	toggler Toggler
}

// NewToggleCommand creates a toggle command answering to name
func NewToggleCommand(name string, toggler Toggler) *ToggleCommand {
	return &ToggleCommand{
		BaseCommand: BaseCommand{
			Name:        name,
			Description: "Toggle damage notifications",
		},
		toggler: toggler,
	}
}

// Handle runs the toggle; the acknowledgment is sent by the service
func (c *ToggleCommand) Handle(ctx context.Context, cmd *events.Command) error {
	_, err := c.toggler.Toggle(ctx, &notification.ToggleInput{Player: cmd.Player})
	if err != nil {
		return fmt.Errorf("toggle for %s: %w", cmd.Player.Identity, err)
	}
	return nil
}
