package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSnapshotNotFound is returned by Load when no snapshot exists for the
// session.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrRedisUnavailable wraps transport-level Redis failures.
var ErrRedisUnavailable = errors.New("redis unavailable")

// Store persists permission snapshots in Redis, one key per session ID.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStore creates a store. Keys are "<prefix>:aclsnap:<sessionID>". A
// zero or negative TTL stores snapshots without expiry.
func NewStore(client *redis.Client, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = "canvasacl"
	}
	return &Store{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *Store) key(sessionID string) string {
	return s.prefix + ":aclsnap:" + sessionID
}

// Save writes the snapshot, replacing any previous one for the session.
func (s *Store) Save(ctx context.Context, sessionID string, snap Snapshot) error {
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.key(sessionID), Encode(snap), ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Load reads and decodes the session's snapshot.
func (s *Store) Load(ctx context.Context, sessionID string) (Snapshot, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return Decode(data)
}

// Delete removes the session's snapshot. Deleting a missing snapshot is
// not an error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Refresh extends the snapshot's TTL without rewriting it. Returns
// ErrSnapshotNotFound when the key is gone and a no-op when the store has
// no TTL configured.
func (s *Store) Refresh(ctx context.Context, sessionID string) error {
	if s.ttl <= 0 {
		return nil
	}
	ok, err := s.client.Expire(ctx, s.key(sessionID), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if !ok {
		return ErrSnapshotNotFound
	}
	return nil
}
