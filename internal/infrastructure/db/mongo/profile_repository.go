package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palette/auction-gateway/internal/core/domain"
)

const profileCollection = "profiles"

type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profileCollection)}
}

func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"username": profile.Username}, profile, opts); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
