package host

//go:generate mockgen -package=mocks -destination=mocks/mock_host.go github.com/exkludera/showdamage/internal/host Host

import (
	"github.com/exkludera/showdamage/internal/models"
)

// Host is the slice of the game engine this add-on talks back to
type Host interface {
	// RenderOverlay replaces the player's center-screen HTML overlay
	RenderOverlay(session models.PlayerSession, html string) error

	// PrintToChat appends a line to the player's chat
	PrintToChat(session models.PlayerSession, text string) error
}
