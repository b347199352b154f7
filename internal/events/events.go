package events

import (
	"github.com/exkludera/showdamage/internal/models"
)

// Kind identifies a host event type
type Kind string

const (
	KindPlayerHurt       Kind = "player_hurt"
	KindPlayerTeam       Kind = "player_team"
	KindPlayerConnect    Kind = "player_connect"
	KindPlayerDisconnect Kind = "player_disconnect"
	KindRoundStart       Kind = "round_start"
	KindCommand          Kind = "command"
)

// Event is anything the host delivers
type Event interface {
	Kind() Kind
}

// PlayerHurt is raised after the engine has applied damage to a player
type PlayerHurt struct {
	Attacker models.Player
	Victim   models.Player

	// Health is the victim's health after the hit
	Health int

	// Damage is the health removed by the hit
	Damage int

	HitGroup models.HitGroup
	Weapon   string
}

func (*PlayerHurt) Kind() Kind { return KindPlayerHurt }

// PlayerTeam is raised when a player joins or switches team
type PlayerTeam struct {
	Session models.PlayerSession
	Team    models.TeamID
}

func (*PlayerTeam) Kind() Kind { return KindPlayerTeam }

// PlayerConnect is raised once a player is fully in game
type PlayerConnect struct {
	Player models.Player
}

func (*PlayerConnect) Kind() Kind { return KindPlayerConnect }

// PlayerDisconnect is raised when a session ends
type PlayerDisconnect struct {
	Session models.PlayerSession
}

func (*PlayerDisconnect) Kind() Kind { return KindPlayerDisconnect }

// RoundStart is raised at the start of every round
type RoundStart struct{}

func (*RoundStart) Kind() Kind { return KindRoundStart }

// Command is a console or chat command issued by a player
type Command struct {
	Player models.Player

	// Name is the command as typed, e.g. css_damage or !damage
	Name string
}

func (*Command) Kind() Kind { return KindCommand }
