package console

// Input line types
const (
	lineConnect    = "connect"
	lineTeam       = "team"
	lineHurt       = "hurt"
	lineDisconnect = "disconnect"
	lineRoundStart = "round_start"
	lineCommand    = "command"
	lineWait       = "wait"
)

// line is one JSON object of console input. Players are referred to by the
// name given on connect.
//
//	{"type":"connect","player":"alice","steam_id":"STEAM_0:0:11101","team":2}
//	{"type":"hurt","attacker":"alice","victim":"bob","damage":27,"health":73,"hitgroup":1,"weapon":"ak47"}
//	{"type":"command","player":"alice","command":"!damage"}
//	{"type":"wait","ms":500}
type line struct {
	Type string `json:"type"`

	Player  string `json:"player,omitempty"`
	SteamID string `json:"steam_id,omitempty"`
	Team    uint8  `json:"team,omitempty"`

	Attacker string `json:"attacker,omitempty"`
	Victim   string `json:"victim,omitempty"`
	Damage   int    `json:"damage,omitempty"`
	Health   int    `json:"health,omitempty"`
	HitGroup int    `json:"hitgroup,omitempty"`
	Weapon   string `json:"weapon,omitempty"`

	Command string `json:"command,omitempty"`

	Millis int `json:"ms,omitempty"`
}
