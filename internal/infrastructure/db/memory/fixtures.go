package memory

import (
	"time"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// Display fixtures for development and tests. In production the Mongo
// repositories replace the bid store; the dashboard blocks stay
// fixture-backed until the backend exposes real aggregates.

func date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

// FixtureBids returns the sample bid/payment list for the given bidder.
func FixtureBids(bidder string) []domain.Bid {
	return []domain.Bid{
		{
			ID: "1", AuctionID: "a1", Bidder: bidder,
			ItemTitle: "Vintage Oil Painting",
			ItemImage: "https://images.unsplash.com/photo-1578301978693-85fa9c0320b9?q=80&w=200",
			Amount:    1500, PlacedAt: date(2024, 2, 15, 14, 30),
			PaymentStatus: domain.PaymentUnpaid,
			DueDate:       datePtr(date(2024, 3, 1, 0, 0)),
		},
		{
			ID: "2", AuctionID: "a2", Bidder: bidder,
			ItemTitle: "Modern Sculpture",
			ItemImage: "https://images.unsplash.com/photo-1549887534-1541e9326642?q=80&w=200",
			Amount:    2200, PlacedAt: date(2024, 2, 14, 9, 15),
			PaymentStatus: domain.PaymentComplete,
			Payment: &domain.PaymentDetails{
				TransactionID: "TRX-001", Method: "Credit Card",
				PaidAt: date(2024, 2, 14, 10, 30),
			},
		},
		{
			ID: "3", AuctionID: "a3", Bidder: bidder,
			ItemTitle: "Abstract Art Collection",
			ItemImage: "https://images.unsplash.com/photo-1577720580479-7d839d829c73?q=80&w=200",
			Amount:    3500, PlacedAt: date(2024, 2, 10, 16, 45),
			PaymentStatus: domain.PaymentFailed,
			Payment: &domain.PaymentDetails{
				TransactionID: "TRX-002", Method: "Bank Transfer",
				PaidAt: date(2024, 2, 10, 17, 30), FailureReason: "Insufficient funds",
			},
		},
		{
			ID: "4", AuctionID: "a4", Bidder: bidder,
			ItemTitle: "Contemporary Photography Series",
			ItemImage: "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?q=80&w=200",
			Amount:    950, PlacedAt: date(2024, 2, 16, 11, 20),
			PaymentStatus: domain.PaymentUnpaid,
			DueDate:       datePtr(date(2024, 3, 2, 0, 0)),
		},
		{
			ID: "5", AuctionID: "a5", Bidder: bidder,
			ItemTitle: "Japanese Ceramic Collection",
			ItemImage: "https://images.unsplash.com/photo-1578301978018-3005759f48f7?q=80&w=200",
			Amount:    1800, PlacedAt: date(2024, 2, 13, 15, 45),
			PaymentStatus: domain.PaymentComplete,
			Payment: &domain.PaymentDetails{
				TransactionID: "TRX-003", Method: "PayPal",
				PaidAt: date(2024, 2, 13, 16, 30),
			},
		},
		{
			ID: "6", AuctionID: "a6", Bidder: bidder,
			ItemTitle: "Art Deco Furniture Set",
			ItemImage: "https://images.unsplash.com/photo-1579762715118-a6f1d4b934f1?q=80&w=200",
			Amount:    4200, PlacedAt: date(2024, 2, 11, 13, 15),
			PaymentStatus: domain.PaymentFailed,
			Payment: &domain.PaymentDetails{
				TransactionID: "TRX-004", Method: "Credit Card",
				PaidAt: date(2024, 2, 11, 14, 0), FailureReason: "Payment declined by bank",
			},
		},
		{
			ID: "7", AuctionID: "a7", Bidder: bidder,
			ItemTitle: "Minimalist Sculpture Collection",
			ItemImage: "https://images.unsplash.com/photo-1576020799627-aeac74d58d8d?q=80&w=200",
			Amount:    2800, PlacedAt: date(2024, 2, 15, 9, 30),
			PaymentStatus: domain.PaymentUnpaid,
			DueDate:       datePtr(date(2024, 3, 1, 0, 0)),
		},
		{
			ID: "8", AuctionID: "a8", Bidder: bidder,
			ItemTitle: "Vintage Movie Posters",
			ItemImage: "https://images.unsplash.com/photo-1577720580479-7d839d829c73?q=80&w=200",
			Amount:    1200, PlacedAt: date(2024, 2, 14, 16, 20),
			PaymentStatus: domain.PaymentComplete,
			Payment: &domain.PaymentDetails{
				TransactionID: "TRX-005", Method: "Bank Transfer",
				PaidAt: date(2024, 2, 14, 17, 15),
			},
		},
	}
}

// FixtureListings returns the sample pending/active items for a seller.
func FixtureListings(seller string) []domain.Listing {
	return []domain.Listing{
		{ID: "1", Seller: seller, Name: "Vintage Watch", Category: "Accessories", Status: domain.ListingPending},
		{ID: "2", Seller: seller, Name: "Rare Book Collection", Category: "Books", Status: domain.ListingPending},
		{ID: "3", Seller: seller, Name: "Antique Vase", Category: "Collectibles", Status: domain.ListingActive, CurrentBid: 250, EndTime: datePtr(date(2024, 4, 15, 18, 0))},
		{ID: "4", Seller: seller, Name: "Vintage Guitar", Category: "Music", Status: domain.ListingActive, CurrentBid: 1500, EndTime: datePtr(date(2024, 4, 20, 20, 0))},
	}
}

// FixtureNotifications returns the sample seller notifications.
func FixtureNotifications() []domain.Notification {
	return []domain.Notification{
		{ID: "1", Message: "New bid on Vintage Guitar", SentAt: date(2024, 4, 10, 14, 0)},
		{ID: "2", Message: "Auction for Antique Vase ending soon", SentAt: date(2024, 4, 10, 12, 0)},
	}
}

// FixtureMarketSnapshot returns the platform-wide market block.
func FixtureMarketSnapshot() domain.MarketSnapshot {
	return domain.MarketSnapshot{
		TopCategories: []domain.CategoryTrend{
			{Name: "Vintage Watches", TotalListings: 156, AverageBid: 1250, Growth: 18.5},
			{Name: "Collectible Art", TotalListings: 112, AverageBid: 3500, Growth: 22.3},
			{Name: "Classic Automobiles", TotalListings: 45, AverageBid: 25000, Growth: 15.7},
		},
		BidTrends: []domain.CategoryTrend{
			{Name: "Electronics", MonthlyBids: 78, BidIncrease: 12.4},
			{Name: "Vintage Memorabilia", MonthlyBids: 45, BidIncrease: 8.9},
		},
		TotalActiveListings: 1245,
		TotalMonthlyBids:    3678,
		AverageListingPrice: 1750,
	}
}

// FixtureAdminOverview returns the admin dashboard counters.
func FixtureAdminOverview() domain.AdminOverview {
	return domain.AdminOverview{
		TotalUsers: 1254, NewUsersThisMonth: 87, ActiveUsers: 976, InactiveUsers: 278,
		TotalItems: 678, PendingItems: 45, ActiveItems: 523, SoldItems: 110,
		TotalApplications: 62, PendingApplications: 24, ApprovedApplications: 35, RejectedApplications: 3,
		TotalAuctions: 213, PendingAuctions: 37, ActiveAuctions: 156, CompletedAuctions: 20,
	}
}
