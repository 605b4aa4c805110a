package roll_history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/rolld/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	historyKeyPrefix = "roll_history:"

	// DefaultMaxEntries is how many rolls a channel keeps when Config.MaxEntries is zero
	DefaultMaxEntries = 25
)

// Config holds configuration for the Redis roll history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxEntries is the number of rolls kept per channel
	MaxEntries int

	// TTL expires a channel history after this long without rolls, zero keeps it forever
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxEntries int
	ttl        time.Duration
}

// NewRedis creates a new Redis-backed roll history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.MaxEntries < 0 {
		return nil, errors.New("max entries cannot be negative")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	maxEntries := cfg.MaxEntries
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxEntries: maxEntries,
		ttl:        cfg.TTL,
	}, nil
}

func historyKey(channelID string) string {
	return fmt.Sprintf("%s%s", historyKeyPrefix, channelID)
}

// SaveRoll pushes a roll onto its channel history and trims the list
func (r *redisRepository) SaveRoll(ctx context.Context, input *SaveRollInput) error {
	if input == nil || input.Roll == nil {
		return errors.New("input and roll cannot be nil")
	}

	if input.Roll.ChannelID == "" {
		return errors.New("roll channel ID cannot be empty")
	}

	// Marshal the roll to JSON
	rollJSON, err := json.Marshal(input.Roll)
	if err != nil {
		return fmt.Errorf("failed to marshal roll: %w", err)
	}

	key := historyKey(input.Roll.ChannelID)

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, rollJSON)
	pipe.LTrim(ctx, key, 0, int64(r.maxEntries-1))
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save roll: %w", err)
	}

	return nil
}

// GetRecentRolls reads the newest rolls of a channel
func (r *redisRepository) GetRecentRolls(ctx context.Context, input *GetRecentRollsInput) (*GetRecentRollsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 || limit > r.maxEntries {
		limit = r.maxEntries
	}

	// A user filter has to scan the whole list before applying the limit
	stop := int64(limit - 1)
	if input.UserID != "" {
		stop = -1
	}

	entries, err := r.client.LRange(ctx, historyKey(input.ChannelID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roll history: %w", err)
	}

	rolls := make([]*models.Roll, 0, len(entries))
	for _, entry := range entries {
		var roll models.Roll
		if err := json.Unmarshal([]byte(entry), &roll); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roll: %w", err)
		}

		if input.UserID != "" && roll.UserID != input.UserID {
			continue
		}

		rolls = append(rolls, &roll)
		if len(rolls) == limit {
			break
		}
	}

	return &GetRecentRollsOutput{
		Rolls: rolls,
	}, nil
}

// ClearHistory deletes a channel history
func (r *redisRepository) ClearHistory(ctx context.Context, input *ClearHistoryInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	if err := r.client.Del(ctx, historyKey(input.ChannelID)).Err(); err != nil {
		return fmt.Errorf("failed to clear roll history: %w", err)
	}

	return nil
}
