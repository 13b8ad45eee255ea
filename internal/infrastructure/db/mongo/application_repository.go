package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/palette/auction-gateway/internal/core/domain"
)

const applicationCollection = "seller_applications"

// ApplicationRepository stores seller applications. The collection carries a
// unique index on username (see EnsureIndexes) so duplicate submissions are
// rejected at the database level.
type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationCollection)}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.SellerApplication) (*domain.SellerApplication, error) {
	doc := applicationDoc{
		Username:    app.Username,
		FirstName:   app.FirstName,
		LastName:    app.LastName,
		Email:       app.Email,
		Phone:       app.Phone,
		Category:    app.Category,
		Background:  app.Background,
		Status:      app.Status,
		SubmittedAt: primitive.NewDateTimeFromTime(app.SubmittedAt),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrApplicationExists
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ApplicationRepository) FindByUsername(ctx context.Context, username string) (*domain.SellerApplication, error) {
	var doc applicationDoc
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	app := doc.toDomain()
	return &app, nil
}

type applicationDoc struct {
	ID          primitive.ObjectID       `bson:"_id,omitempty"`
	Username    string                   `bson:"username"`
	FirstName   string                   `bson:"first_name"`
	LastName    string                   `bson:"last_name"`
	Email       string                   `bson:"email"`
	Phone       string                   `bson:"phone"`
	Category    string                   `bson:"category"`
	Background  string                   `bson:"background"`
	Status      domain.ApplicationStatus `bson:"status"`
	SubmittedAt primitive.DateTime       `bson:"submitted_at"`
}

func (d applicationDoc) toDomain() domain.SellerApplication {
	return domain.SellerApplication{
		ID:          d.ID.Hex(),
		Username:    d.Username,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Phone:       d.Phone,
		Category:    d.Category,
		Background:  d.Background,
		Status:      d.Status,
		SubmittedAt: d.SubmittedAt.Time().UTC(),
	}
}
