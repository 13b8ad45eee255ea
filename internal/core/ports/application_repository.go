package ports

import (
	"context"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// ApplicationRepository persists seller applications.
// Create returns domain.ErrApplicationExists when the username already has one.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.SellerApplication) (*domain.SellerApplication, error)
	FindByUsername(ctx context.Context, username string) (*domain.SellerApplication, error)
}
