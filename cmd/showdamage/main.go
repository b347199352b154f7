package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/exkludera/showdamage/internal/common/clock"
	"github.com/exkludera/showdamage/internal/common/uuid"
	"github.com/exkludera/showdamage/internal/config"
	"github.com/exkludera/showdamage/internal/events"
	"github.com/exkludera/showdamage/internal/handlers/command"
	"github.com/exkludera/showdamage/internal/handlers/console"
	"github.com/exkludera/showdamage/internal/i18n"
	preferenceRepo "github.com/exkludera/showdamage/internal/repositories/preference"
	"github.com/exkludera/showdamage/internal/services/aggregator"
	"github.com/exkludera/showdamage/internal/services/broadcast"
	"github.com/exkludera/showdamage/internal/services/notification"
	"github.com/exkludera/showdamage/internal/services/preference"
	"github.com/exkludera/showdamage/internal/services/scheduler"
	"github.com/exkludera/showdamage/internal/services/team"
	"github.com/redis/go-redis/v9"
)

func main() {
	configPath := getEnv("SHOWDAMAGE_CONFIG", "showdamage.yaml")

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Initialize preference repository
	repo, closeRepo, err := newPreferenceRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to create preference repository: %v", err)
	}
	defer closeRepo()

	prefs, err := preference.New(&preference.Config{
		Repository: repo,
	})
	if err != nil {
		log.Fatalf("Failed to create preference store: %v", err)
	}

	loadCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	prefs.Load(loadCtx)
	cancel()
	log.Printf("Loaded %d damage opt-outs", prefs.Len())

	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		log.Fatalf("Failed to load message catalog: %v", err)
	}

	sched, err := scheduler.New(&scheduler.Config{
		Clock: &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create message scheduler: %v", err)
	}

	host, err := console.New(&console.Config{
		Output:        os.Stdout,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create console host: %v", err)
	}

	// Initialize notification service
	notificationSvc, err := notification.New(&notification.Config{
		Settings:    cfg.NotificationSettings(),
		Teams:       team.New(),
		Preferences: prefs,
		Aggregator:  aggregator.New(),
		Scheduler:   sched,
		Catalog:     catalog,
		Host:        host,
	})
	if err != nil {
		log.Fatalf("Failed to create notification service: %v", err)
	}

	commands, err := command.New(&command.Config{
		ToggleAliases: cfg.ToggleAliases(),
		Toggler:       notificationSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create command dispatcher: %v", err)
	}
	log.Printf("Toggle commands: %v", commands.Names())

	router := events.NewRouter()
	notificationSvc.Register(router)
	commands.Register(router)

	broadcaster, err := broadcast.New(&broadcast.Config{
		Messages: sched,
		Host:     host,
	})
	if err != nil {
		log.Fatalf("Failed to create broadcaster: %v", err)
	}

	var wg sync.WaitGroup
	runCtx, cancelRun := context.WithCancel(ctx)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := broadcaster.Run(runCtx, cfg.TickRate); err != nil {
			log.Printf("Broadcaster stopped: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := config.Watch(runCtx, configPath, func(reloaded *config.Config) {
			if fields := config.RestartRequired(cfg, reloaded); len(fields) > 0 {
				log.Printf("Changes to %v take effect after a restart", fields)
			}
			if err := notificationSvc.UpdateSettings(reloaded.NotificationSettings()); err != nil {
				log.Printf("Rejected reloaded settings: %v", err)
			}
		})
		if err != nil {
			log.Printf("Config watcher stopped: %v", err)
		}
	}()

	log.Println("ShowDamage is running. Reading events from stdin.")
	if err := host.Run(ctx, os.Stdin, router); err != nil {
		log.Printf("Error reading events: %v", err)
	}

	// flush whatever the last events scheduled before shutting down
	if err := broadcaster.Tick(context.Background()); err != nil {
		log.Printf("Error rendering final frame: %v", err)
	}

	cancelRun()
	wg.Wait()

	notificationSvc.Reset()
	log.Println("ShowDamage has been shut down")
}

func newPreferenceRepository(cfg *config.Config) (preferenceRepo.Repository, func(), error) {
	switch cfg.PreferenceBackend {
	case config.BackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		repo, err := preferenceRepo.NewRedis(&preferenceRepo.RedisConfig{
			RedisClient: redisClient,
		})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, err
		}
		return repo, closer("redis client", redisClient), nil

	case config.BackendSQLite:
		repo, err := preferenceRepo.NewSQLite(&preferenceRepo.SQLiteConfig{
			Path: cfg.SQLitePath,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, closer("sqlite database", repo), nil
	}

	repo, err := preferenceRepo.NewFile(&preferenceRepo.FileConfig{
		Path: cfg.PreferencePath,
	})
	if err != nil {
		return nil, nil, err
	}
	return repo, func() {}, nil
}

func closer(name string, c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Printf("Error closing %s: %v", name, err)
		}
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
