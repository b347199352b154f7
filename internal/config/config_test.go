package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/exkludera/showdamage/internal/services/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()

	path := filepath.Join(dir, "showdamage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []string{"damage", "showdamage", "damagedisplay"}, cfg.ToggleAliases())
	assert.Equal(t, 5*time.Second, cfg.DisplayDuration())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
toggle_command: "dmg ,  hits,"
display_damage: false
display_timer: 2.5
grenade_reset: round
locale: de
preference_backend: sqlite
sqlite_path: /tmp/prefs.db
tick_rate: 32ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"dmg", "hits"}, cfg.ToggleAliases())
	assert.False(t, cfg.DisplayDamage)
	assert.True(t, cfg.DisplayGrenadeDamage)
	assert.Equal(t, 2500*time.Millisecond, cfg.DisplayDuration())
	assert.Equal(t, "round", cfg.GrenadeReset)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, BackendSQLite, cfg.PreferenceBackend)
	assert.Equal(t, "/tmp/prefs.db", cfg.SQLitePath)
	assert.Equal(t, 32*time.Millisecond, cfg.TickRate)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "display_timer: 3\nlocale: de\n")

	t.Setenv("SHOWDAMAGE_DISPLAY_TIMER", "8")
	t.Setenv("SHOWDAMAGE_PREFERENCE_BACKEND", "redis")
	t.Setenv("SHOWDAMAGE_REDIS_ADDR", "cache:6379")
	t.Setenv("SHOWDAMAGE_REDIS_DB", "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8.0, cfg.DisplayTimer)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, BackendRedis, cfg.PreferenceBackend)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "display_timer: [oops\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("SHOWDAMAGE_DISPLAY_TIMER", "soon")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{
			name:   "defaults",
			modify: func(*Config) {},
		},
		{
			name:   "no aliases",
			modify: func(c *Config) { c.ToggleCommand = " , ," },
			err:    ErrNoAliases,
		},
		{
			name:   "zero timer",
			modify: func(c *Config) { c.DisplayTimer = 0 },
			err:    ErrInvalidDisplayTimer,
		},
		{
			name:   "sub-nanosecond timer",
			modify: func(c *Config) { c.DisplayTimer = 1e-10 },
			err:    ErrInvalidDisplayTimer,
		},
		{
			name:   "negative tick rate",
			modify: func(c *Config) { c.TickRate = -time.Millisecond },
			err:    ErrInvalidTickRate,
		},
		{
			name:   "unknown reset",
			modify: func(c *Config) { c.GrenadeReset = "match" },
			err:    ErrInvalidReset,
		},
		{
			name:   "unknown backend",
			modify: func(c *Config) { c.PreferenceBackend = "postgres" },
			err:    ErrInvalidBackend,
		},
		{
			name:   "file without path",
			modify: func(c *Config) { c.PreferencePath = "" },
			err:    ErrMissingPath,
		},
		{
			name: "sqlite without path",
			modify: func(c *Config) {
				c.PreferenceBackend = BackendSQLite
				c.SQLitePath = ""
			},
			err: ErrMissingPath,
		},
		{
			name: "redis without address",
			modify: func(c *Config) {
				c.PreferenceBackend = BackendRedis
				c.RedisAddr = ""
			},
			err: ErrMissingRedisAddr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNotificationSettings(t *testing.T) {
	cfg := Default()
	cfg.DisplayGrenadeDamage = false
	cfg.GrenadeReset = "life"
	cfg.Locale = "pt-BR"

	assert.Equal(t, notification.Settings{
		DisplayDamage:        true,
		DisplayGrenadeDamage: false,
		DisplayDuration:      5 * time.Second,
		GrenadeReset:         notification.GrenadeResetLife,
		Locale:               "pt-BR",
	}, cfg.NotificationSettings())
}

func TestLoadRejectsTruncatedTimer(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "display_timer: 0.0000000001\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidDisplayTimer)
}

func TestRestartRequired(t *testing.T) {
	current := Default()

	reloaded := Default()
	reloaded.DisplayTimer = 2
	reloaded.Locale = "de"
	reloaded.GrenadeReset = "round"
	assert.Empty(t, RestartRequired(current, reloaded))

	reloaded.ToggleCommand = "dmg"
	reloaded.PreferenceBackend = BackendSQLite
	reloaded.TickRate = 32 * time.Millisecond
	assert.Equal(t, []string{"toggle_command", "preference_backend", "tick_rate"}, RestartRequired(current, reloaded))
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "display_timer: 3\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config) { reloaded <- cfg })
	}()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	// an invalid edit is dropped
	require.NoError(t, os.WriteFile(path, []byte("display_timer: 0\n"), 0o644))
	time.Sleep(300 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("display_timer: 9\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 9.0, cfg.DisplayTimer)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after valid write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "cfg.yaml"), func(*Config) {})
	assert.Error(t, err)
}
