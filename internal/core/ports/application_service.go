package ports

import (
	"context"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// SubmitApplicationInput is a seller application as submitted by the form.
// Field-shape validation happens at the transport layer; the service enforces
// the business rules (category membership, background length, terms).
type SubmitApplicationInput struct {
	Username   string
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Category   string
	Background string
	AgreeTerms bool
}

// ApplicationService handles the become-a-seller flow.
type ApplicationService interface {
	Submit(ctx context.Context, input SubmitApplicationInput) (*domain.SellerApplication, error)
	Status(ctx context.Context, username string) (*domain.SellerApplication, error)
}
