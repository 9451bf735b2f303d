package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionPrefix = "session:"

// SessionData is what a session cookie resolves to.
type SessionData struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
}

// SessionStore keeps login sessions in Redis with a sliding TTL.
type SessionStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewSessionStore creates a session store; sessions expire after ttl without use.
func NewSessionStore(client redis.UniversalClient, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Dial connects to Redis and verifies the connection.
func Dial(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return client, nil
}

// Create stores data under a new random session ID and returns the ID.
func (s *SessionStore) Create(ctx context.Context, data SessionData) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := s.client.Set(ctx, sessionPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Get returns nil, nil when the session does not exist or has expired.
func (s *SessionStore) Get(ctx context.Context, id string) (*SessionData, error) {
	val, err := s.client.Get(ctx, sessionPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal(val, &data); err != nil {
		return nil, err
	}

	_ = s.client.Expire(ctx, sessionPrefix+id, s.ttl).Err()
	return &data, nil
}

// Delete ends a session. Unknown IDs are not an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionPrefix+id).Err()
}

// TTL is how long a session lives without use.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}
