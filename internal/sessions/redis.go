package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/warblerhq/warbler/internal/logger"
)

// RedisStore keeps sessions in Redis as JSON under session:<uuid> keys with
// a rolling TTL.
type RedisStore struct {
	client *redis.Client
	exp    time.Duration // session lifetime, refreshed on every save
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, expiration time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s", id)
}

// Get loads a session by ID. Missing or expired sessions yield ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	key := sessionKey(id)

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Debugw(
			"session get",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// Save stores the session and resets its TTL.
func (s *RedisStore) Save(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	key := sessionKey(session.ID)
	err = s.client.Set(ctx, key, data, s.exp).Err()

	logger.Log.Debugw(
		"session save",
		"key", key,
		"error", err,
	)

	return err
}

// Delete removes the session.
func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	key := sessionKey(id)
	err := s.client.Del(ctx, key).Err()

	logger.Log.Debugw(
		"session delete",
		"key", key,
		"error", err,
	)

	return err
}
