package command

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/exkludera/showdamage/internal/events"
)

// CommandError is a custom error type for command errors
type CommandError string

// Error implements the error interface
func (e CommandError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    CommandError = "config cannot be nil"
	ErrNilToggler   CommandError = "toggler cannot be nil"
	ErrNoAliases    CommandError = "at least one alias is required"
	ErrEmptyName    CommandError = "command name cannot be empty"
	ErrDuplicate    CommandError = "command already registered"
	ErrNilHandler   CommandError = "handler cannot be nil"
	ErrWrongPayload CommandError = "unexpected event type"
)

// Config holds the configuration for the dispatcher
type Config struct {
	// ToggleAliases are the names the toggle command answers to, without
	// the css_ prefix
	ToggleAliases []string

	Toggler Toggler
}

// Dispatcher routes player commands to their handlers by name
type Dispatcher struct {
	commands map[string]Handler
}

// New creates a dispatcher with a toggle command registered under every
// alias
func New(cfg *Config) (*Dispatcher, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Toggler == nil {
		return nil, ErrNilToggler
	}

	d := &Dispatcher{
		commands: make(map[string]Handler),
	}

	for _, alias := range cfg.ToggleAliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" {
			continue
		}
		if _, ok := d.commands[alias]; ok {
			continue
		}
		if err := d.RegisterCommand(NewToggleCommand(alias, cfg.Toggler)); err != nil {
			return nil, err
		}
	}

	if len(d.commands) == 0 {
		return nil, ErrNoAliases
	}

	return d, nil
}

// RegisterCommand adds a handler under its name
func (d *Dispatcher) RegisterCommand(cmd Handler) error {
	if cmd == nil {
		return ErrNilHandler
	}

	name := strings.ToLower(cmd.GetName())
	if name == "" {
		return ErrEmptyName
	}

	if _, ok := d.commands[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}

	d.commands[name] = cmd
	log.Printf("Registered command: %s%s (%s)", Prefix, name, cmd.GetDescription())
	return nil
}

// Names returns the full console names of the registered commands, sorted
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, Prefix+name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a typed command to its handler. Console names carry the
// css_ prefix; chat triggers use ! or / instead.
func (d *Dispatcher) Lookup(typed string) (Handler, bool) {
	name, ok := normalize(typed)
	if !ok {
		return nil, false
	}

	h, ok := d.commands[name]
	return h, ok
}

func normalize(typed string) (string, bool) {
	fields := strings.Fields(typed)
	if len(fields) == 0 {
		return "", false
	}

	name := strings.ToLower(fields[0])
	switch {
	case strings.HasPrefix(name, Prefix):
		name = strings.TrimPrefix(name, Prefix)
	case strings.HasPrefix(name, "!"), strings.HasPrefix(name, "/"):
		name = name[1:]
	default:
		return "", false
	}

	return name, name != ""
}

// Handle runs the handler for cmd. Unknown commands belong to other
// plugins and are ignored.
func (d *Dispatcher) Handle(ctx context.Context, cmd *events.Command) error {
	if cmd == nil {
		return nil
	}

	h, ok := d.Lookup(cmd.Name)
	if !ok {
		return nil
	}

	if err := h.Handle(ctx, cmd); err != nil {
		return fmt.Errorf("command %s: %w", cmd.Name, err)
	}
	return nil
}

// Register subscribes the dispatcher to command events
func (d *Dispatcher) Register(router *events.Router) {
	router.Register(events.KindCommand, events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		cmd, ok := event.(*events.Command)
		if !ok {
			return ErrWrongPayload
		}
		return d.Handle(ctx, cmd)
	}))
}
