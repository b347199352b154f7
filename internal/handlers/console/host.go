package console

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/exkludera/showdamage/internal/common/uuid"
	"github.com/exkludera/showdamage/internal/events"
	"github.com/exkludera/showdamage/internal/models"
)

// ConsoleError is a custom error type for console host errors
type ConsoleError string

// Error implements the error interface
func (e ConsoleError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     ConsoleError = "config cannot be nil"
	ErrNilOutput     ConsoleError = "output writer cannot be nil"
	ErrNilGenerator  ConsoleError = "uuid generator cannot be nil"
	ErrUnknownType   ConsoleError = "unknown line type"
	ErrUnknownPlayer ConsoleError = "player is not connected"
	ErrMissingPlayer ConsoleError = "player name is required"
)

// Config holds configuration for the console host
type Config struct {
	// Output receives overlay and chat lines
	Output io.Writer

	// UUIDGenerator mints session handles on connect
	UUIDGenerator uuid.Generator
}

// Host is a line-oriented stand-in for the game engine. It reads JSON
// events, one per line, and writes what players would see as text.
type Host struct {
	uuidGenerator uuid.Generator

	outMu sync.Mutex
	out   io.Writer

	mu       sync.RWMutex
	players  map[string]models.Player
	names    map[models.PlayerSession]string
	overlays map[models.PlayerSession]string
}

// New creates a new console host
func New(cfg *Config) (*Host, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Output == nil {
		return nil, ErrNilOutput
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilGenerator
	}

	return &Host{
		uuidGenerator: cfg.UUIDGenerator,
		out:           cfg.Output,
		players:       make(map[string]models.Player),
		names:         make(map[models.PlayerSession]string),
		overlays:      make(map[models.PlayerSession]string),
	}, nil
}

// RenderOverlay prints the overlay when it differs from what the player
// already sees; the engine would redraw the same HTML every frame.
func (h *Host) RenderOverlay(session models.PlayerSession, html string) error {
	h.mu.Lock()
	if h.overlays[session] == html {
		h.mu.Unlock()
		return nil
	}
	h.overlays[session] = html
	name := h.displayNameLocked(session)
	h.mu.Unlock()

	return h.writeLine("overlay", name, html)
}

// PrintToChat prints a chat line for the player
func (h *Host) PrintToChat(session models.PlayerSession, text string) error {
	h.mu.RLock()
	name := h.displayNameLocked(session)
	h.mu.RUnlock()

	return h.writeLine("chat", name, text)
}

func (h *Host) displayNameLocked(session models.PlayerSession) string {
	if name, ok := h.names[session]; ok {
		return name
	}
	return string(session)
}

func (h *Host) writeLine(channel, name, text string) error {
	h.outMu.Lock()
	defer h.outMu.Unlock()

	_, err := fmt.Fprintf(h.out, "[%s] %s: %s\n", channel, name, text)
	return err
}

// Player returns the connected player registered under name
func (h *Host) Player(name string) (models.Player, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	p, ok := h.players[name]
	return p, ok
}

// Run reads lines from r and dispatches the events they describe until r
// is exhausted or ctx is done. Bad lines are logged and skipped. A read
// blocked on r does not hold up cancellation.
func (h *Host) Run(ctx context.Context, r io.Reader, router *events.Router) error {
	lines, readErr := scan(ctx, r)

	lineNo := 0
	for {
		var raw []byte
		select {
		case <-ctx.Done():
			return nil
		case next, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}
			raw = next
		}
		lineNo++

		if len(raw) == 0 {
			continue
		}

		var l line
		if err := json.Unmarshal(raw, &l); err != nil {
			log.Printf("console: line %d: invalid json: %v", lineNo, err)
			continue
		}

		if l.Type == lineWait {
			if err := wait(ctx, time.Duration(l.Millis)*time.Millisecond); err != nil {
				return nil
			}
			continue
		}

		evts, err := h.translate(&l)
		if err != nil {
			log.Printf("console: line %d: %v", lineNo, err)
			continue
		}

		for _, evt := range evts {
			if err := router.Dispatch(ctx, evt); err != nil {
				log.Printf("console: line %d: %v", lineNo, err)
			}
		}
	}
}

// scan feeds the lines of r to a channel from its own goroutine. The
// channel is closed at EOF, after the read error (or nil) is sent. Once ctx
// is done the goroutine stops after its current read returns.
func scan(ctx context.Context, r io.Reader) (<-chan []byte, <-chan error) {
	lines := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			// the scanner reuses its buffer
			raw := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- raw:
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// translate turns one input line into the events it stands for, updating
// the connected player table on connect and disconnect
func (h *Host) translate(l *line) ([]events.Event, error) {
	switch l.Type {
	case lineConnect:
		return h.connect(l)

	case lineTeam:
		p, err := h.lookup(l.Player)
		if err != nil {
			return nil, err
		}
		return []events.Event{&events.PlayerTeam{Session: p.Session, Team: models.TeamID(l.Team)}}, nil

	case lineHurt:
		// unknown names stand for the world or a bot without a session
		attacker, _ := h.Player(l.Attacker)
		victim, err := h.lookup(l.Victim)
		if err != nil {
			return nil, err
		}
		return []events.Event{&events.PlayerHurt{
			Attacker: attacker,
			Victim:   victim,
			Health:   l.Health,
			Damage:   l.Damage,
			HitGroup: models.HitGroup(l.HitGroup),
			Weapon:   l.Weapon,
		}}, nil

	case lineDisconnect:
		p, err := h.lookup(l.Player)
		if err != nil {
			return nil, err
		}
		h.mu.Lock()
		delete(h.players, l.Player)
		delete(h.names, p.Session)
		delete(h.overlays, p.Session)
		h.mu.Unlock()
		return []events.Event{&events.PlayerDisconnect{Session: p.Session}}, nil

	case lineRoundStart:
		return []events.Event{&events.RoundStart{}}, nil

	case lineCommand:
		p, err := h.lookup(l.Player)
		if err != nil {
			return nil, err
		}
		return []events.Event{&events.Command{Player: p, Name: l.Command}}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownType, l.Type)
}

func (h *Host) connect(l *line) ([]events.Event, error) {
	if l.Player == "" {
		return nil, ErrMissingPlayer
	}

	identity, err := models.ParseIdentity(l.SteamID)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", l.Player, err)
	}

	var evts []events.Event

	h.mu.Lock()
	if old, ok := h.players[l.Player]; ok {
		delete(h.names, old.Session)
		delete(h.overlays, old.Session)
		evts = append(evts, &events.PlayerDisconnect{Session: old.Session})
	}
	p := models.Player{
		Session:  models.PlayerSession(h.uuidGenerator.NewUUID()),
		Identity: identity,
		Name:     l.Player,
	}
	h.players[l.Player] = p
	h.names[p.Session] = l.Player
	h.mu.Unlock()

	evts = append(evts, &events.PlayerConnect{Player: p})
	if l.Team != 0 {
		evts = append(evts, &events.PlayerTeam{Session: p.Session, Team: models.TeamID(l.Team)})
	}
	return evts, nil
}

func (h *Host) lookup(name string) (models.Player, error) {
	if name == "" {
		return models.Player{}, ErrMissingPlayer
	}

	p, ok := h.Player(name)
	if !ok {
		return models.Player{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, name)
	}
	return p, nil
}
