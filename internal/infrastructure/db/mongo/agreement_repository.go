package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

const agreementsCollection = "agreements"

type MongoAgreementRepository struct {
	coll *mongo.Collection
}

func NewAgreementRepository(db *mongo.Database) *MongoAgreementRepository {
	return &MongoAgreementRepository{coll: db.Collection(agreementsCollection)}
}

type mongoAgreement struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	FormID        string             `bson:"form_id,omitempty"`
	AgreementText string             `bson:"agreement_text"`
	Signature     string             `bson:"signature"`
	SignedAt      time.Time          `bson:"signed_at"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (ma mongoAgreement) toDomain() *domain.Agreement {
	return &domain.Agreement{
		ID:            ma.ID.Hex(),
		UserID:        ma.UserID,
		FormID:        ma.FormID,
		AgreementText: ma.AgreementText,
		Signature:     ma.Signature,
		SignedAt:      ma.SignedAt,
		CreatedAt:     ma.CreatedAt,
		UpdatedAt:     ma.UpdatedAt,
	}
}

func (r *MongoAgreementRepository) Create(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error) {
	doc := mongoAgreement{
		UserID:        a.UserID,
		FormID:        a.FormID,
		AgreementText: a.AgreementText,
		Signature:     a.Signature,
		SignedAt:      a.SignedAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert agreement: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoAgreementRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Agreement, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.D{{Key: "signed_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find agreements: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Agreement
	for cur.Next(ctx) {
		var ma mongoAgreement
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode agreement: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find agreements: %w", err)
	}
	return out, nil
}
