package domain

import (
	"errors"
	"time"
)

var ErrListingNotFound = errors.New("listing not found")

// AdminOverview aggregates the counters shown on the admin dashboard.
type AdminOverview struct {
	TotalUsers        int `json:"total_users" bson:"total_users"`
	NewUsersThisMonth int `json:"new_users_this_month" bson:"new_users_this_month"`
	ActiveUsers       int `json:"active_users" bson:"active_users"`
	InactiveUsers     int `json:"inactive_users" bson:"inactive_users"`

	TotalItems   int `json:"total_items" bson:"total_items"`
	PendingItems int `json:"pending_items" bson:"pending_items"`
	ActiveItems  int `json:"active_items" bson:"active_items"`
	SoldItems    int `json:"sold_items" bson:"sold_items"`

	TotalApplications    int `json:"total_seller_applications" bson:"total_seller_applications"`
	PendingApplications  int `json:"pending_seller_applications" bson:"pending_seller_applications"`
	ApprovedApplications int `json:"approved_seller_applications" bson:"approved_seller_applications"`
	RejectedApplications int `json:"rejected_seller_applications" bson:"rejected_seller_applications"`

	TotalAuctions     int `json:"total_auctions" bson:"total_auctions"`
	PendingAuctions   int `json:"pending_auctions" bson:"pending_auctions"`
	ActiveAuctions    int `json:"active_auctions" bson:"active_auctions"`
	CompletedAuctions int `json:"completed_auctions" bson:"completed_auctions"`
}

// ListingStatus is the lifecycle state of a seller's auction item.
type ListingStatus string

const (
	ListingPending ListingStatus = "PENDING"
	ListingActive  ListingStatus = "ACTIVE"
)

// Listing is an item a seller has put up for auction.
type Listing struct {
	ID         string        `json:"item_id" bson:"_id,omitempty"`
	Seller     string        `json:"seller" bson:"seller"`
	Name       string        `json:"name" bson:"name"`
	Category   string        `json:"category" bson:"category"`
	Status     ListingStatus `json:"status" bson:"status"`
	CurrentBid float64       `json:"current_bid,omitempty" bson:"current_bid,omitempty"`
	EndTime    *time.Time    `json:"end_time,omitempty" bson:"end_time,omitempty"`
}

// Notification is a short message surfaced on the seller dashboard.
type Notification struct {
	ID      string    `json:"id" bson:"_id,omitempty"`
	Message string    `json:"message" bson:"message"`
	SentAt  time.Time `json:"sent_at" bson:"sent_at"`
}

// CategoryTrend summarises bidding activity for one category.
type CategoryTrend struct {
	Name          string  `json:"name" bson:"name"`
	TotalListings int     `json:"total_listings,omitempty" bson:"total_listings,omitempty"`
	AverageBid    float64 `json:"average_bid,omitempty" bson:"average_bid,omitempty"`
	Growth        float64 `json:"growth,omitempty" bson:"growth,omitempty"`
	MonthlyBids   int     `json:"monthly_avg_bids,omitempty" bson:"monthly_avg_bids,omitempty"`
	BidIncrease   float64 `json:"avg_bid_increase,omitempty" bson:"avg_bid_increase,omitempty"`
}

// MarketSnapshot is the platform-wide market data block on the seller dashboard.
type MarketSnapshot struct {
	TopCategories       []CategoryTrend `json:"top_categories" bson:"top_categories"`
	BidTrends           []CategoryTrend `json:"bid_trends" bson:"bid_trends"`
	TotalActiveListings int             `json:"total_active_listings" bson:"total_active_listings"`
	TotalMonthlyBids    int             `json:"total_monthly_bids" bson:"total_monthly_bids"`
	AverageListingPrice float64         `json:"average_listing_price" bson:"average_listing_price"`
}

// SellerOverview is everything the seller dashboard renders for one seller.
type SellerOverview struct {
	PendingItems  []Listing      `json:"pending_items"`
	ActiveItems   []Listing      `json:"active_items"`
	Notifications []Notification `json:"notifications"`
	Market        MarketSnapshot `json:"market"`
}
