package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

type DashboardService struct {
	repo   ports.DashboardRepository
	logger zerolog.Logger
}

func NewDashboardService(repo ports.DashboardRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, logger: logger}
}

func (s *DashboardService) AdminOverview(ctx context.Context) (*domain.AdminOverview, error) {
	overview, err := s.repo.AdminOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}
	return overview, nil
}

// SellerOverview assembles the seller dashboard: the seller's own listings
// split by status, their notifications, and the platform market snapshot.
func (s *DashboardService) SellerOverview(ctx context.Context, seller string) (*domain.SellerOverview, error) {
	listings, err := s.repo.ListingsBySeller(ctx, seller)
	if err != nil {
		return nil, fmt.Errorf("seller listings: %w", err)
	}

	overview := &domain.SellerOverview{
		PendingItems: make([]domain.Listing, 0),
		ActiveItems:  make([]domain.Listing, 0),
	}
	for _, l := range listings {
		switch l.Status {
		case domain.ListingPending:
			overview.PendingItems = append(overview.PendingItems, l)
		case domain.ListingActive:
			overview.ActiveItems = append(overview.ActiveItems, l)
		}
	}

	notifications, err := s.repo.NotificationsBySeller(ctx, seller)
	if err != nil {
		return nil, fmt.Errorf("seller notifications: %w", err)
	}
	overview.Notifications = notifications

	market, err := s.repo.MarketSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("market snapshot: %w", err)
	}
	overview.Market = *market

	return overview, nil
}

func (s *DashboardService) CancelListing(ctx context.Context, seller, listingID string) error {
	if err := s.repo.CancelListing(ctx, seller, listingID); err != nil {
		return err
	}
	s.logger.Info().Str("seller", seller).Str("listing_id", listingID).Msg("listing cancelled")
	return nil
}
