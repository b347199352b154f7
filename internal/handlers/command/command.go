package command

import (
	"context"

	"github.com/exkludera/showdamage/internal/events"
)

// Prefix is what the host puts in front of plugin console commands
const Prefix = "css_"

// Handler defines the interface for player command handlers
type Handler interface {
	// GetName returns the command name without the prefix
	GetName() string

	// GetDescription returns the help text
	GetDescription() string

	// Handle processes a command issued by a player
	Handle(ctx context.Context, cmd *events.Command) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetDescription returns the help text
func (c *BaseCommand) GetDescription() string {
	return c.Description
}
