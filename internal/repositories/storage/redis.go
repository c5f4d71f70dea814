package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// blobKeyPrefix namespaces registry blobs in Redis
const blobKeyPrefix = "ascentbot:blob:"

// RedisConfig holds configuration for the Redis blob repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed blob repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Save persists a blob to Redis
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	if err := r.client.Set(ctx, blobKeyPrefix+input.Key, input.Blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to save blob %s: %w", input.Key, err)
	}
	return nil
}

// Load reads a blob from Redis
func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.New("input and key cannot be empty")
	}

	blob, err := r.client.Get(ctx, blobKeyPrefix+input.Key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &LoadOutput{Found: false}, nil
		}
		return nil, fmt.Errorf("failed to load blob %s: %w", input.Key, err)
	}

	return &LoadOutput{Blob: blob, Found: true}, nil
}
