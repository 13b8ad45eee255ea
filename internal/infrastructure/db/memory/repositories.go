// Package memory provides mutex-guarded in-memory repositories used in
// development mode and in tests. Dashboard data is fixture-backed even in
// production for now; see DESIGN.md.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// BidRepository holds bids per bidder, created lazily from the fixtures the
// first time a bidder is seen.
type BidRepository struct {
	mu   sync.Mutex
	bids map[string]*domain.Bid
	seen map[string]bool
}

func NewBidRepository() *BidRepository {
	return &BidRepository{
		bids: make(map[string]*domain.Bid),
		seen: make(map[string]bool),
	}
}

func (r *BidRepository) ensureSeeded(bidder string) {
	if r.seen[bidder] {
		return
	}
	r.seen[bidder] = true
	for _, bid := range FixtureBids(bidder) {
		clone := bid
		clone.ID = bidder + "-" + bid.ID
		r.bids[clone.ID] = &clone
	}
}

func (r *BidRepository) ListByBidder(_ context.Context, bidder string) ([]domain.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureSeeded(bidder)

	out := make([]domain.Bid, 0)
	for _, b := range r.bids {
		if b.Bidder == bidder {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlacedAt.After(out[j].PlacedAt) })
	return out, nil
}

func (r *BidRepository) FindByID(_ context.Context, id string) (*domain.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bids[id]
	if !ok {
		return nil, domain.ErrBidNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *BidRepository) Update(_ context.Context, bid *domain.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[bid.ID]; !ok {
		return domain.ErrBidNotFound
	}
	clone := *bid
	r.bids[bid.ID] = &clone
	return nil
}

// ApplicationRepository keeps one seller application per username.
type ApplicationRepository struct {
	mu   sync.Mutex
	apps map[string]*domain.SellerApplication
	next int
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{apps: make(map[string]*domain.SellerApplication), next: 1}
}

func (r *ApplicationRepository) Create(_ context.Context, app *domain.SellerApplication) (*domain.SellerApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.apps[app.Username]; exists {
		return nil, domain.ErrApplicationExists
	}
	clone := *app
	clone.ID = "app-" + strconv.Itoa(r.next)
	r.next++
	r.apps[app.Username] = &clone
	out := clone
	return &out, nil
}

func (r *ApplicationRepository) FindByUsername(_ context.Context, username string) (*domain.SellerApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[username]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	clone := *app
	return &clone, nil
}

// ProfileRepository keys profiles by username.
type ProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: make(map[string]*domain.Profile)}
}

func (r *ProfileRepository) FindByUsername(_ context.Context, username string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[username]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *ProfileRepository) Upsert(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *profile
	r.profiles[profile.Username] = &clone
	return nil
}

// DashboardRepository serves the fixture dashboard blocks and tracks listing
// cancellations per seller.
type DashboardRepository struct {
	mu       sync.Mutex
	listings map[string][]domain.Listing
}

func NewDashboardRepository() *DashboardRepository {
	return &DashboardRepository{listings: make(map[string][]domain.Listing)}
}

func (r *DashboardRepository) AdminOverview(_ context.Context) (*domain.AdminOverview, error) {
	overview := FixtureAdminOverview()
	return &overview, nil
}

func (r *DashboardRepository) ListingsBySeller(_ context.Context, seller string) ([]domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[seller]; !ok {
		r.listings[seller] = FixtureListings(seller)
	}
	out := make([]domain.Listing, len(r.listings[seller]))
	copy(out, r.listings[seller])
	return out, nil
}

func (r *DashboardRepository) NotificationsBySeller(_ context.Context, _ string) ([]domain.Notification, error) {
	return FixtureNotifications(), nil
}

func (r *DashboardRepository) MarketSnapshot(_ context.Context) (*domain.MarketSnapshot, error) {
	snapshot := FixtureMarketSnapshot()
	return &snapshot, nil
}

func (r *DashboardRepository) CancelListing(_ context.Context, seller, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listings, ok := r.listings[seller]
	if !ok {
		return domain.ErrListingNotFound
	}
	for i, l := range listings {
		if l.ID == listingID {
			r.listings[seller] = append(listings[:i], listings[i+1:]...)
			return nil
		}
	}
	return domain.ErrListingNotFound
}

