package models

import (
	"github.com/leighmacdonald/steamid/v4/steamid"
)

// PlayerSession is the host's handle for a connected player. It is only
// valid while the player is connected.
type PlayerSession string

// PlayerIdentity is the durable account id of a player, stored as a
// SteamID64 decimal string so it can key persisted preferences.
type PlayerIdentity string

// ParseIdentity normalizes any SteamID representation (SteamID64, STEAM_X:Y:Z,
// [U:1:N]) into a PlayerIdentity
func ParseIdentity(raw string) (PlayerIdentity, error) {
	sid := steamid.New(raw)
	if !sid.Valid() {
		return "", ErrInvalidIdentity
	}

	return PlayerIdentity(sid.String()), nil
}

// TeamID is the host engine's numeric team
type TeamID uint8

const (
	// TeamNone is used before a player picks a side
	TeamNone TeamID = 0

	// TeamSpectator is the spectator slot
	TeamSpectator TeamID = 1

	// TeamTerrorist is the T side
	TeamTerrorist TeamID = 2

	// TeamCounterTerrorist is the CT side
	TeamCounterTerrorist TeamID = 3
)

// Player is a connected player as known to a host adapter
type Player struct {
	// Session is the transient handle
	Session PlayerSession

	// Identity is the durable account id
	Identity PlayerIdentity

	// Name is the display name
	Name string
}
