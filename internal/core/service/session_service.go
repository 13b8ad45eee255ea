package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

// SessionService is the single source of truth for "who is logged in" on a
// given session key, surviving gateway restarts through the snapshot store.
type SessionService struct {
	store  ports.SnapshotStore
	logger zerolog.Logger
}

func NewSessionService(store ports.SnapshotStore, logger zerolog.Logger) *SessionService {
	return &SessionService{store: store, logger: logger}
}

// Rehydrate restores the session for key from durable storage. The returned
// session is always Ready; a missing or unreadable snapshot yields an
// unauthenticated session rather than an error, so a corrupt entry can never
// lock a user out of the public area.
func (s *SessionService) Rehydrate(ctx context.Context, key string) domain.Session {
	identity, err := s.store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			s.logger.Warn().Err(err).Msg("session snapshot unreadable, treating as unauthenticated")
		}
		return domain.Session{Ready: true}
	}
	if identity != nil && !identity.Role.Valid() {
		s.logger.Warn().Str("role", string(identity.Role)).Msg("snapshot carries unknown role, discarding")
		return domain.Session{Ready: true}
	}
	return domain.Session{Identity: identity, Ready: true}
}

// Set replaces the current identity and writes the snapshot. The caller
// (AuthService) triggers role routing afterwards.
func (s *SessionService) Set(ctx context.Context, key string, identity *domain.Identity) error {
	if err := s.store.Save(ctx, key, identity); err != nil {
		return err
	}
	s.logger.Info().Str("username", identity.Username).Str("role", string(identity.Role)).Msg("session set")
	return nil
}

// Clear removes the identity and deletes the durable entry. Clearing an
// already-unauthenticated session is a no-op.
func (s *SessionService) Clear(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrSnapshotNotFound) {
		return err
	}
	s.logger.Info().Msg("session cleared")
	return nil
}
