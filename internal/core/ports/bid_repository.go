package ports

import (
	"context"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// BidRepository persists customer bids and their payment state.
type BidRepository interface {
	ListByBidder(ctx context.Context, bidder string) ([]domain.Bid, error)
	FindByID(ctx context.Context, id string) (*domain.Bid, error)
	Update(ctx context.Context, bid *domain.Bid) error
}
