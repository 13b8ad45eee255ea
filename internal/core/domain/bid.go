package domain

import (
	"errors"
	"time"
)

// PaymentStatus represents the settlement state of a winning bid.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentComplete PaymentStatus = "complete"
	PaymentFailed   PaymentStatus = "failed"
)

var ErrBidNotFound = errors.New("bid not found")
var ErrBidAlreadySettled = errors.New("bid already settled")

// PaymentDetails records the outcome of a settlement attempt.
type PaymentDetails struct {
	TransactionID string    `json:"transaction_id" bson:"transaction_id"`
	Method        string    `json:"payment_method" bson:"payment_method"`
	PaidAt        time.Time `json:"payment_date" bson:"payment_date"`
	FailureReason string    `json:"failure_reason,omitempty" bson:"failure_reason,omitempty"`
}

// Bid is a customer's bid on an auction item together with its payment state.
type Bid struct {
	ID            string          `json:"id" bson:"_id,omitempty"`
	AuctionID     string          `json:"auction_id" bson:"auction_id"`
	Bidder        string          `json:"bidder" bson:"bidder"`
	ItemTitle     string          `json:"item_title" bson:"item_title"`
	ItemImage     string          `json:"item_image" bson:"item_image"`
	Amount        float64         `json:"bid_amount" bson:"bid_amount"`
	PlacedAt      time.Time       `json:"bid_date" bson:"bid_date"`
	PaymentStatus PaymentStatus   `json:"payment_status" bson:"payment_status"`
	DueDate       *time.Time      `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Payment       *PaymentDetails `json:"payment_details,omitempty" bson:"payment_details,omitempty"`
}
