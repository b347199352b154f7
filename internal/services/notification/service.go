package notification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/exkludera/showdamage/internal/events"
	"github.com/exkludera/showdamage/internal/host"
	"github.com/exkludera/showdamage/internal/i18n"
	"github.com/exkludera/showdamage/internal/models"
)

// service implements the Service interface
type service struct {
	teams       TeamRegistry
	preferences PreferenceStore
	aggregator  DamageAggregator
	scheduler   MessageScheduler
	catalog     *i18n.Catalog
	host        host.Host

	mu       sync.RWMutex
	settings Settings
}

// New creates a new notification service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Teams == nil {
		return nil, ErrNilTeams
	}

	if cfg.Preferences == nil {
		return nil, ErrNilPreferences
	}

	if cfg.Aggregator == nil {
		return nil, ErrNilAggregator
	}

	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	if cfg.Host == nil {
		return nil, ErrNilHost
	}

	if err := validateSettings(cfg.Settings); err != nil {
		return nil, err
	}

	return &service{
		teams:       cfg.Teams,
		preferences: cfg.Preferences,
		aggregator:  cfg.Aggregator,
		scheduler:   cfg.Scheduler,
		catalog:     cfg.Catalog,
		host:        cfg.Host,
		settings:    cfg.Settings,
	}, nil
}

func validateSettings(settings Settings) error {
	if settings.DisplayDuration <= 0 {
		return ErrInvalidDuration
	}

	if !settings.GrenadeReset.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidResetPolicy, settings.GrenadeReset)
	}

	return nil
}

// UpdateSettings swaps in new settings; invalid settings are rejected and
// the current ones kept
func (s *service) UpdateSettings(settings Settings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	return nil
}

func (s *service) currentSettings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// HandleHurt shows the attacker a message for an enemy hit. Unknown teams,
// friendly fire and opted-out attackers are skipped silently. Under the life
// policy any lethal hit clears the victim's grenade total, whoever dealt it.
func (s *service) HandleHurt(ctx context.Context, event *events.PlayerHurt) error {
	if event == nil {
		return nil
	}

	attacker := event.Attacker.Session
	victim := event.Victim.Session
	if victim == "" {
		return nil
	}

	settings := s.currentSettings()
	if settings.GrenadeReset == GrenadeResetLife && event.Health <= 0 {
		defer s.aggregator.Remove(victim)
	}

	if attacker == "" {
		return nil
	}

	attackerTeam, ok := s.teams.GetTeam(attacker)
	if !ok {
		return nil
	}

	victimTeam, ok := s.teams.GetTeam(victim)
	if !ok {
		return nil
	}

	if attackerTeam == victimTeam {
		return nil
	}

	if s.preferences.IsOptedOut(event.Attacker.Identity) {
		return nil
	}

	if models.IsAreaDamage(event.Weapon) {
		total, err := s.aggregator.AddDamage(attacker, event.Damage)
		if err != nil {
			return fmt.Errorf("failed to add grenade damage: %w", err)
		}

		if !settings.DisplayGrenadeDamage {
			return nil
		}

		text := s.catalog.Sprintf(settings.Locale, i18n.KeyGrenadeDamage, total)
		return s.scheduler.Display(attacker, text, settings.DisplayDuration)
	}

	if !settings.DisplayDamage {
		return nil
	}

	text := s.catalog.Sprintf(settings.Locale, i18n.KeyDamage,
		event.Victim.Name, event.Damage, event.Health, event.HitGroup.String())
	return s.scheduler.Display(attacker, text, settings.DisplayDuration)
}

// HandleTeamChange records the session's new team
func (s *service) HandleTeamChange(ctx context.Context, event *events.PlayerTeam) error {
	if event == nil || event.Session == "" {
		return nil
	}

	s.teams.SetTeam(event.Session, event.Team)
	return nil
}

// HandleDisconnect purges team, message and aggregation state for the session
func (s *service) HandleDisconnect(ctx context.Context, event *events.PlayerDisconnect) error {
	if event == nil || event.Session == "" {
		return nil
	}

	s.teams.Remove(event.Session)
	s.scheduler.Remove(event.Session)
	s.aggregator.Remove(event.Session)
	return nil
}

// HandleRoundStart clears grenade totals under the round policy
func (s *service) HandleRoundStart(ctx context.Context, event *events.RoundStart) error {
	if s.currentSettings().GrenadeReset == GrenadeResetRound {
		s.aggregator.Reset()
	}
	return nil
}

// Toggle flips the player's opt-out and sends the acknowledgment. A failed
// save still acknowledges; the in-memory state already changed.
func (s *service) Toggle(ctx context.Context, input *ToggleInput) (*ToggleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Player.Identity == "" {
		return nil, ErrEmptyIdentity
	}

	enabled, saveErr := s.preferences.Toggle(ctx, input.Player.Identity)

	key := i18n.KeyDisabled
	if enabled {
		key = i18n.KeyEnabled
	}
	message := s.catalog.Sprintf(s.currentSettings().Locale, key)

	var errs []error
	if saveErr != nil {
		errs = append(errs, saveErr)
	}
	if err := s.host.PrintToChat(input.Player.Session, message); err != nil {
		errs = append(errs, fmt.Errorf("failed to acknowledge toggle: %w", err))
	}

	return &ToggleOutput{
		Enabled: enabled,
		Message: message,
	}, errors.Join(errs...)
}

// Register subscribes the event handlers to router
func (s *service) Register(router *events.Router) {
	router.Register(events.KindPlayerHurt, events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		hurt, ok := event.(*events.PlayerHurt)
		if !ok {
			return ErrUnexpectedEvent
		}
		return s.HandleHurt(ctx, hurt)
	}))

	router.Register(events.KindPlayerTeam, events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		team, ok := event.(*events.PlayerTeam)
		if !ok {
			return ErrUnexpectedEvent
		}
		return s.HandleTeamChange(ctx, team)
	}))

	router.Register(events.KindPlayerDisconnect, events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		disconnect, ok := event.(*events.PlayerDisconnect)
		if !ok {
			return ErrUnexpectedEvent
		}
		return s.HandleDisconnect(ctx, disconnect)
	}))

	router.Register(events.KindRoundStart, events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		round, ok := event.(*events.RoundStart)
		if !ok {
			return ErrUnexpectedEvent
		}
		return s.HandleRoundStart(ctx, round)
	}))
}

// Reset mirrors an unload: every registry is cleared and timers stopped
func (s *service) Reset() {
	s.teams.Reset()
	s.scheduler.Reset()
	s.aggregator.Reset()
	s.preferences.Reset()

	log.Printf("notification: state reset")
}
