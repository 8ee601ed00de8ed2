package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	redisTimeout     = 3 * time.Second
)

// Session is a signed-in browser of one user. Its ID is the jti of the access
// token; deleting the session revokes every token carrying it.
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionStore keeps sessions until they expire or are deleted
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, bool, error)
	Delete(ctx context.Context, id string) error
}

// MemorySessionStore keeps sessions in process memory
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemorySessionStore creates an empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Save stores or replaces a session
func (s *MemorySessionStore) Save(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

// Get returns a live session; expired sessions are dropped on read
func (s *MemorySessionStore) Get(_ context.Context, id string) (*Session, bool, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if session.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, false, nil
	}
	return &session, true, nil
}

// Delete removes a session; unknown ids are ignored
func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// RedisSessionStore keeps sessions in Redis with a TTL matching their expiry
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore builds a Redis-backed session store
func NewRedisSessionStore(addr, password string, db int) *RedisSessionStore {
	return &RedisSessionStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping checks that Redis is reachable
func (s *RedisSessionStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// Close releases the Redis connection pool
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}

// Save writes the session as JSON with the remaining lifetime as TTL
func (s *RedisSessionStore) Save(ctx context.Context, session *Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, payload, ttl).Err()
}

// Get resolves a session id
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*Session, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()
	payload, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, false, err
	}
	return &session, true, nil
}

// Delete removes a session
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

var (
	_ SessionStore = (*MemorySessionStore)(nil)
	_ SessionStore = (*RedisSessionStore)(nil)
)
