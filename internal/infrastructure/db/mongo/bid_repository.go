package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palette/auction-gateway/internal/core/domain"
)

const bidCollection = "bids"

type BidRepository struct {
	coll *mongo.Collection
}

func NewBidRepository(db *mongo.Database) *BidRepository {
	return &BidRepository{coll: db.Collection(bidCollection)}
}

func (r *BidRepository) ListByBidder(ctx context.Context, bidder string) ([]domain.Bid, error) {
	opts := options.Find().SetSort(bson.D{{Key: "bid_date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"bidder": bidder}, opts)
	if err != nil {
		return nil, fmt.Errorf("find bids: %w", err)
	}
	defer cursor.Close(ctx)

	bids := make([]domain.Bid, 0)
	for cursor.Next(ctx) {
		var doc bidDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode bid: %w", err)
		}
		bids = append(bids, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate bids: %w", err)
	}
	return bids, nil
}

func (r *BidRepository) FindByID(ctx context.Context, id string) (*domain.Bid, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBidNotFound
	}

	var doc bidDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBidNotFound
		}
		return nil, fmt.Errorf("find bid: %w", err)
	}
	bid := doc.toDomain()
	return &bid, nil
}

func (r *BidRepository) Update(ctx context.Context, bid *domain.Bid) error {
	oid, err := primitive.ObjectIDFromHex(bid.ID)
	if err != nil {
		return domain.ErrBidNotFound
	}

	update := bson.M{"$set": bson.M{
		"payment_status":  bid.PaymentStatus,
		"payment_details": bid.Payment,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update bid: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBidNotFound
	}
	return nil
}

// bidDoc mirrors domain.Bid with a Mongo ObjectID primary key.
type bidDoc struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty"`
	AuctionID     string                 `bson:"auction_id"`
	Bidder        string                 `bson:"bidder"`
	ItemTitle     string                 `bson:"item_title"`
	ItemImage     string                 `bson:"item_image"`
	Amount        float64                `bson:"bid_amount"`
	PlacedAt      primitive.DateTime     `bson:"bid_date"`
	PaymentStatus domain.PaymentStatus   `bson:"payment_status"`
	DueDate       *primitive.DateTime    `bson:"due_date,omitempty"`
	Payment       *domain.PaymentDetails `bson:"payment_details,omitempty"`
}

func (d bidDoc) toDomain() domain.Bid {
	bid := domain.Bid{
		ID:            d.ID.Hex(),
		AuctionID:     d.AuctionID,
		Bidder:        d.Bidder,
		ItemTitle:     d.ItemTitle,
		ItemImage:     d.ItemImage,
		Amount:        d.Amount,
		PlacedAt:      d.PlacedAt.Time().UTC(),
		PaymentStatus: d.PaymentStatus,
		Payment:       d.Payment,
	}
	if d.DueDate != nil {
		due := d.DueDate.Time().UTC()
		bid.DueDate = &due
	}
	return bid
}
