package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/DipakSrm/style-home-direct/models"
)

// RedisStore keeps each cart as a single JSON-encoded blob under one key.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func storeKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// Load hydrates the cart for sessionID. Absent or malformed data silently
// resets to the empty state; only transport failures surface as errors.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (models.CartState, error) {
	data, err := s.client.Get(ctx, storeKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Empty(), nil
	}
	if err != nil {
		return Empty(), fmt.Errorf("redis get failed: %w", err)
	}

	var state models.CartState
	if err := json.Unmarshal(data, &state); err != nil || state.Items == nil {
		s.logger.Warn().Str("session", sessionID).Msg("discarding malformed persisted cart")
		return Empty(), nil
	}
	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, state models.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := s.client.Set(ctx, storeKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, storeKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
