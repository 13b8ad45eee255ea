package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

type stubBidRepo struct {
	bids map[string]*domain.Bid
}

func newStubBidRepo(bids ...domain.Bid) *stubBidRepo {
	r := &stubBidRepo{bids: make(map[string]*domain.Bid)}
	for i := range bids {
		clone := bids[i]
		r.bids[clone.ID] = &clone
	}
	return r
}

func (r *stubBidRepo) ListByBidder(_ context.Context, bidder string) ([]domain.Bid, error) {
	out := make([]domain.Bid, 0)
	for _, b := range r.bids {
		if b.Bidder == bidder {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBidRepo) FindByID(_ context.Context, id string) (*domain.Bid, error) {
	b, ok := r.bids[id]
	if !ok {
		return nil, domain.ErrBidNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBidRepo) Update(_ context.Context, bid *domain.Bid) error {
	if _, ok := r.bids[bid.ID]; !ok {
		return domain.ErrBidNotFound
	}
	clone := *bid
	r.bids[bid.ID] = &clone
	return nil
}

func unpaidBid(id, bidder string) domain.Bid {
	return domain.Bid{
		ID:            id,
		AuctionID:     "a1",
		Bidder:        bidder,
		ItemTitle:     "Vintage Oil Painting",
		Amount:        1500,
		PlacedAt:      time.Date(2024, 2, 15, 14, 30, 0, 0, time.UTC),
		PaymentStatus: domain.PaymentUnpaid,
	}
}

func TestBidService_ListBids_FiltersByBidder(t *testing.T) {
	repo := newStubBidRepo(unpaidBid("1", "jane"), unpaidBid("2", "bob"))
	svc := NewBidService(repo, zerolog.Nop())

	bids, err := svc.ListBids(context.Background(), "jane")
	if err != nil {
		t.Fatalf("ListBids returned error: %v", err)
	}
	if len(bids) != 1 || bids[0].ID != "1" {
		t.Fatalf("unexpected bids: %+v", bids)
	}
}

func TestBidService_PayBid_Success(t *testing.T) {
	repo := newStubBidRepo(unpaidBid("1", "jane"))
	svc := NewBidService(repo, zerolog.Nop())

	bid, err := svc.PayBid(context.Background(), ports.PayBidInput{BidID: "1", Bidder: "jane", Method: "Credit Card"})
	if err != nil {
		t.Fatalf("PayBid returned error: %v", err)
	}
	if bid.PaymentStatus != domain.PaymentComplete {
		t.Fatalf("expected complete status, got %s", bid.PaymentStatus)
	}
	if bid.Payment == nil || !strings.HasPrefix(bid.Payment.TransactionID, "TRX-") {
		t.Fatalf("expected TRX transaction id, got %+v", bid.Payment)
	}
	if bid.Payment.Method != "Credit Card" {
		t.Fatalf("payment method not recorded: %+v", bid.Payment)
	}

	stored, _ := repo.FindByID(context.Background(), "1")
	if stored.PaymentStatus != domain.PaymentComplete {
		t.Fatalf("settlement not persisted: %+v", stored)
	}
}

func TestBidService_PayBid_WrongBidder(t *testing.T) {
	svc := NewBidService(newStubBidRepo(unpaidBid("1", "jane")), zerolog.Nop())

	if _, err := svc.PayBid(context.Background(), ports.PayBidInput{BidID: "1", Bidder: "bob", Method: "PayPal"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestBidService_PayBid_AlreadySettled(t *testing.T) {
	settled := unpaidBid("1", "jane")
	settled.PaymentStatus = domain.PaymentComplete
	svc := NewBidService(newStubBidRepo(settled), zerolog.Nop())

	if _, err := svc.PayBid(context.Background(), ports.PayBidInput{BidID: "1", Bidder: "jane", Method: "PayPal"}); !errors.Is(err, domain.ErrBidAlreadySettled) {
		t.Fatalf("expected ErrBidAlreadySettled, got %v", err)
	}
}

func TestBidService_PayBid_NotFound(t *testing.T) {
	svc := NewBidService(newStubBidRepo(), zerolog.Nop())

	if _, err := svc.PayBid(context.Background(), ports.PayBidInput{BidID: "missing", Bidder: "jane"}); !errors.Is(err, domain.ErrBidNotFound) {
		t.Fatalf("expected ErrBidNotFound, got %v", err)
	}
}
