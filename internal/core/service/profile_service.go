package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

type ProfileService struct {
	repo   ports.ProfileRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

// Get returns the stored profile for the identity's username. Before the
// first save there is nothing in the repository, so a default profile is
// derived from the identity instead.
func (s *ProfileService) Get(ctx context.Context, identity *domain.Identity) (*domain.Profile, error) {
	profile, err := s.repo.FindByUsername(ctx, identity.Username)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return &domain.Profile{
				Username: identity.Username,
				Name:     identity.Name,
				Email:    identity.Email,
			}, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, input ports.UpdateProfileInput) (*domain.Profile, error) {
	profile := &domain.Profile{
		Username: input.Username,
		Name:     input.Name,
		Email:    input.Email,
		Bio:      input.Bio,
		Phone:    input.Phone,
		Address:  input.Address,
	}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	s.logger.Info().Str("username", profile.Username).Msg("profile updated")
	return profile, nil
}
