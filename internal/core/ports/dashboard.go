package ports

import (
	"context"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// DashboardRepository serves the aggregate blocks behind the role dashboards.
// These are display fixtures in development and real aggregates in production;
// the service layer does not care which.
type DashboardRepository interface {
	AdminOverview(ctx context.Context) (*domain.AdminOverview, error)
	ListingsBySeller(ctx context.Context, seller string) ([]domain.Listing, error)
	NotificationsBySeller(ctx context.Context, seller string) ([]domain.Notification, error)
	MarketSnapshot(ctx context.Context) (*domain.MarketSnapshot, error)
	CancelListing(ctx context.Context, seller, listingID string) error
}

// DashboardService assembles the role dashboards.
type DashboardService interface {
	AdminOverview(ctx context.Context) (*domain.AdminOverview, error)
	SellerOverview(ctx context.Context, seller string) (*domain.SellerOverview, error)
	CancelListing(ctx context.Context, seller, listingID string) error
}
