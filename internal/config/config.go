package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/exkludera/showdamage/internal/services/notification"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigError is a custom error type for configuration errors
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrNoAliases           ConfigError = "toggle command needs at least one alias"
	ErrInvalidDisplayTimer ConfigError = "display timer must be positive"
	ErrInvalidTickRate     ConfigError = "tick rate must be positive"
	ErrInvalidReset        ConfigError = "grenade reset must be never, round or life"
	ErrInvalidBackend      ConfigError = "preference backend must be file, redis or sqlite"
	ErrMissingPath         ConfigError = "preference backend needs a path"
	ErrMissingRedisAddr    ConfigError = "redis backend needs an address"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "SHOWDAMAGE_"

// Preference backends
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config holds all configuration values for the plugin
type Config struct {
	// Behaviour
	ToggleCommand        string  `yaml:"toggle_command" env:"TOGGLE_COMMAND"`
	DisplayDamage        bool    `yaml:"display_damage" env:"DISPLAY_DAMAGE"`
	DisplayGrenadeDamage bool    `yaml:"display_grenade_damage" env:"DISPLAY_GRENADE_DAMAGE"`
	DisplayTimer         float64 `yaml:"display_timer" env:"DISPLAY_TIMER"`
	GrenadeReset         string  `yaml:"grenade_reset" env:"GRENADE_RESET"`
	Locale               string  `yaml:"locale" env:"LOCALE"`

	// Preference storage
	PreferenceBackend string `yaml:"preference_backend" env:"PREFERENCE_BACKEND"`
	PreferencePath    string `yaml:"preference_path" env:"PREFERENCE_PATH"`
	RedisAddr         string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword     string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB           int    `yaml:"redis_db" env:"REDIS_DB"`
	SQLitePath        string `yaml:"sqlite_path" env:"SQLITE_PATH"`

	// Host
	TickRate time.Duration `yaml:"tick_rate" env:"TICK_RATE"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		ToggleCommand:        "damage, showdamage, damagedisplay",
		DisplayDamage:        true,
		DisplayGrenadeDamage: true,
		DisplayTimer:         5,
		GrenadeReset:         string(notification.GrenadeResetNever),
		Locale:               "en",
		PreferenceBackend:    BackendFile,
		PreferencePath:       "data/preferences.json",
		RedisAddr:            "localhost:6379",
		SQLitePath:           "data/preferences.db",
		TickRate:             16 * time.Millisecond,
	}
}

// Load builds the configuration from defaults, an optional .env file, the
// YAML file at path and SHOWDAMAGE_* environment overrides, in that order.
// An empty or missing path skips the YAML step.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values Load cannot type-check
func (c *Config) Validate() error {
	if len(c.ToggleAliases()) == 0 {
		return ErrNoAliases
	}

	// sub-nanosecond timers truncate to zero
	if c.DisplayDuration() <= 0 {
		return ErrInvalidDisplayTimer
	}

	if c.TickRate <= 0 {
		return ErrInvalidTickRate
	}

	if !notification.GrenadeReset(c.GrenadeReset).Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidReset, c.GrenadeReset)
	}

	switch c.PreferenceBackend {
	case BackendFile:
		if c.PreferencePath == "" {
			return ErrMissingPath
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return ErrMissingPath
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return ErrMissingRedisAddr
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.PreferenceBackend)
	}

	return nil
}

// ToggleAliases splits ToggleCommand on commas. Blank entries are dropped.
func (c *Config) ToggleAliases() []string {
	var aliases []string
	for _, alias := range strings.Split(c.ToggleCommand, ",") {
		alias = strings.TrimSpace(alias)
		if alias != "" {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}

// DisplayDuration is DisplayTimer as a duration
func (c *Config) DisplayDuration() time.Duration {
	return time.Duration(c.DisplayTimer * float64(time.Second))
}

// NotificationSettings converts the behaviour fields for the notification
// service
func (c *Config) NotificationSettings() notification.Settings {
	return notification.Settings{
		DisplayDamage:        c.DisplayDamage,
		DisplayGrenadeDamage: c.DisplayGrenadeDamage,
		DisplayDuration:      c.DisplayDuration(),
		GrenadeReset:         notification.GrenadeReset(c.GrenadeReset),
		Locale:               c.Locale,
	}
}

// RestartRequired lists the fields that differ between current and reloaded
// but only take effect on restart: the command aliases, the preference
// storage and the tick rate
func RestartRequired(current, reloaded *Config) []string {
	var fields []string
	if current.ToggleCommand != reloaded.ToggleCommand {
		fields = append(fields, "toggle_command")
	}
	if current.PreferenceBackend != reloaded.PreferenceBackend {
		fields = append(fields, "preference_backend")
	}
	if current.PreferencePath != reloaded.PreferencePath {
		fields = append(fields, "preference_path")
	}
	if current.RedisAddr != reloaded.RedisAddr {
		fields = append(fields, "redis_addr")
	}
	if current.RedisPassword != reloaded.RedisPassword {
		fields = append(fields, "redis_password")
	}
	if current.RedisDB != reloaded.RedisDB {
		fields = append(fields, "redis_db")
	}
	if current.SQLitePath != reloaded.SQLitePath {
		fields = append(fields, "sqlite_path")
	}
	if current.TickRate != reloaded.TickRate {
		fields = append(fields, "tick_rate")
	}
	return fields
}
