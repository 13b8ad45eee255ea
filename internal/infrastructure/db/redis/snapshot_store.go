package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palette/auction-gateway/internal/core/domain"
)

const defaultSnapshotTTL = 30 * 24 * time.Hour

// SnapshotStore keeps serialized Identity snapshots in Redis so sessions
// survive gateway restarts. Key format: session:<session_key>. Entries expire
// after the configured TTL; every Save refreshes it.
type SnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotStore wraps the given client. A non-positive ttl falls back to
// the 30-day default.
func NewSnapshotStore(client *redis.Client, ttl time.Duration) *SnapshotStore {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &SnapshotStore{client: client, ttl: ttl}
}

func (s *SnapshotStore) Load(ctx context.Context, key string) (*domain.Identity, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &identity, nil
}

func (s *SnapshotStore) Save(ctx context.Context, key string, identity *domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key(key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) key(sessionKey string) string {
	return "session:" + sessionKey
}
