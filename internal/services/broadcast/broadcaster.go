package broadcast

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/exkludera/showdamage/internal/host"
	"github.com/exkludera/showdamage/internal/services/scheduler"
)

// BroadcastError is a custom error type for broadcaster errors
type BroadcastError string

// Error implements the error interface
func (e BroadcastError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          BroadcastError = "config cannot be nil"
	ErrNilHost            BroadcastError = "host cannot be nil"
	ErrNilMessages        BroadcastError = "message source cannot be nil"
	ErrNonPositiveTimeout BroadcastError = "tick interval must be positive"
)

// MessageSource lists the messages currently visible
type MessageSource interface {
	Active() []scheduler.Message
}

// Config holds configuration for the broadcaster
type Config struct {
	Messages MessageSource
	Host     host.Host
}

// Broadcaster pushes every visible message to its player once per frame
type Broadcaster struct {
	messages MessageSource
	host     host.Host
}

// New creates a new broadcaster
func New(cfg *Config) (*Broadcaster, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Messages == nil {
		return nil, ErrNilMessages
	}

	if cfg.Host == nil {
		return nil, ErrNilHost
	}

	return &Broadcaster{
		messages: cfg.Messages,
		host:     cfg.Host,
	}, nil
}

// Tick renders each visible message. Idle sessions are skipped; nothing is
// sent to clear them.
func (b *Broadcaster) Tick(ctx context.Context) error {
	var errs []error
	for _, msg := range b.messages.Active() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := b.host.RenderOverlay(msg.Session, msg.Text); err != nil {
			errs = append(errs, fmt.Errorf("render overlay for %s: %w", msg.Session, err))
		}
	}

	return errors.Join(errs...)
}

// Run calls Tick every interval until ctx is done. It is for hosts without
// a frame hook of their own.
func (b *Broadcaster) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return ErrNonPositiveTimeout
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := b.Tick(ctx); err != nil && ctx.Err() == nil {
				log.Printf("broadcast: %v", err)
			}
		}
	}
}
