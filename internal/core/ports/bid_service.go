package ports

import (
	"context"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// PayBidInput carries a settlement request for a winning bid.
type PayBidInput struct {
	BidID  string
	Bidder string
	Method string
}

// BidService exposes the customer bid/payment listing use cases.
type BidService interface {
	ListBids(ctx context.Context, bidder string) ([]domain.Bid, error)
	// PayBid settles an unpaid bid and returns the updated bid with its
	// payment details filled in. Settling a complete or failed bid returns
	// domain.ErrBidAlreadySettled.
	PayBid(ctx context.Context, input PayBidInput) (*domain.Bid, error)
}
