package ports

import (
	"context"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// SnapshotStore persists serialized Identity snapshots keyed by session key,
// so a session survives gateway restarts and browser reloads.
// Load returns domain.ErrSnapshotNotFound when no snapshot exists for the key.
type SnapshotStore interface {
	Load(ctx context.Context, key string) (*domain.Identity, error)
	Save(ctx context.Context, key string, identity *domain.Identity) error
	Delete(ctx context.Context, key string) error
}

// SessionService owns the per-session authentication state.
type SessionService interface {
	// Rehydrate loads the Session for key. A missing snapshot yields an
	// unauthenticated but Ready session, never an error.
	Rehydrate(ctx context.Context, key string) domain.Session
	Set(ctx context.Context, key string, identity *domain.Identity) error
	Clear(ctx context.Context, key string) error
}
