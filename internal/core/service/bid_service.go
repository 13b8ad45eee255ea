package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

type BidService struct {
	repo   ports.BidRepository
	logger zerolog.Logger
}

func NewBidService(repo ports.BidRepository, logger zerolog.Logger) *BidService {
	return &BidService{repo: repo, logger: logger}
}

// ListBids returns the bidder's bids, newest first ordering is left to the
// repository.
func (s *BidService) ListBids(ctx context.Context, bidder string) ([]domain.Bid, error) {
	bids, err := s.repo.ListByBidder(ctx, bidder)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	return bids, nil
}

// PayBid settles an unpaid bid. Only the winning bidder may settle their own
// bid; a bid that is already complete or failed is rejected.
func (s *BidService) PayBid(ctx context.Context, input ports.PayBidInput) (*domain.Bid, error) {
	bid, err := s.repo.FindByID(ctx, input.BidID)
	if err != nil {
		return nil, err
	}
	if bid.Bidder != input.Bidder {
		return nil, domain.ErrForbidden
	}
	if bid.PaymentStatus != domain.PaymentUnpaid {
		return nil, domain.ErrBidAlreadySettled
	}

	bid.PaymentStatus = domain.PaymentComplete
	bid.Payment = &domain.PaymentDetails{
		TransactionID: newTransactionID(),
		Method:        input.Method,
		PaidAt:        time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, bid); err != nil {
		return nil, fmt.Errorf("settle bid: %w", err)
	}

	s.logger.Info().
		Str("bid_id", bid.ID).
		Str("transaction_id", bid.Payment.TransactionID).
		Float64("amount", bid.Amount).
		Msg("bid settled")
	return bid, nil
}

// newTransactionID returns an id in the format TRX-XXXXXXXX.
func newTransactionID() string {
	id := uuid.NewString()
	return fmt.Sprintf("TRX-%s", id[:8])
}
