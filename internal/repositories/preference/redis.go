package preference

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	// defaultRedisKey is the hash holding identity -> flag
	defaultRedisKey = "showdamage:optout"
)

// RedisConfig holds configuration for the Redis preference repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Key of the hash, defaults to showdamage:optout
	Key string
}

// redisRepository implements the Repository interface using a Redis hash
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis creates a new Redis-backed preference repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = defaultRedisKey
	}

	return &redisRepository{
		client: cfg.RedisClient,
		key:    key,
	}, nil
}

// Load reads every field of the hash
func (r *redisRepository) Load(ctx context.Context) (*LoadOutput, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	optOuts := make(map[string]bool, len(fields))
	for identity, raw := range fields {
		flag, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", ErrMalformed, identity, err)
		}
		optOuts[identity] = flag
	}

	return &LoadOutput{OptOuts: optOuts}, nil
}

// Save replaces the hash in a single transaction
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil {
		return ErrNilInput
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key)

		if len(input.OptOuts) == 0 {
			return nil
		}

		values := make(map[string]interface{}, len(input.OptOuts))
		for identity, flag := range input.OptOuts {
			values[identity] = strconv.FormatBool(flag)
		}
		pipe.HSet(ctx, r.key, values)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	return nil
}
