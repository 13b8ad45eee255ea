package ports

import (
	"context"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// ProfileRepository persists editable account details keyed by username.
type ProfileRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	Username string
	Name     string
	Email    string
	Bio      string
	Phone    string
	Address  domain.Address
}

// ProfileService exposes the profile screens' read/update operations.
type ProfileService interface {
	// Get returns the stored profile, or a default one derived from the
	// identity when nothing has been saved yet.
	Get(ctx context.Context, identity *domain.Identity) (*domain.Profile, error)
	Update(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error)
}
