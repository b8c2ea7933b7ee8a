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

const documentsCollection = "user_documents"

type MongoDocumentRepository struct {
	coll *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *MongoDocumentRepository {
	return &MongoDocumentRepository{coll: db.Collection(documentsCollection)}
}

type mongoDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone"`
	NationalID   string             `bson:"national_id"`
	Photo        string             `bson:"photo,omitempty"`
	Signature    string             `bson:"signature,omitempty"`
	IsRegistered bool               `bson:"is_registered"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (md mongoDocument) toDomain() *domain.UserDocument {
	return &domain.UserDocument{
		ID:           md.ID.Hex(),
		Name:         md.Name,
		Email:        md.Email,
		Phone:        md.Phone,
		NationalID:   md.NationalID,
		Photo:        md.Photo,
		Signature:    md.Signature,
		IsRegistered: md.IsRegistered,
		CreatedAt:    md.CreatedAt,
		UpdatedAt:    md.UpdatedAt,
	}
}

func (r *MongoDocumentRepository) UpsertByEmail(ctx context.Context, doc *domain.UserDocument) (*domain.UserDocument, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":        doc.Name,
			"phone":       doc.Phone,
			"national_id": doc.NationalID,
			"photo":       doc.Photo,
			"signature":   doc.Signature,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{"created_at": now, "is_registered": false},
	}

	upsert := true
	after := options.After
	var md mongoDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"email": doc.Email},
		update,
		&options.FindOneAndUpdateOptions{Upsert: &upsert, ReturnDocument: &after},
	).Decode(&md)
	if err != nil {
		return nil, fmt.Errorf("upsert user document: %w", err)
	}
	return md.toDomain(), nil
}

func (r *MongoDocumentRepository) FindByEmail(ctx context.Context, email string) (*domain.UserDocument, error) {
	var md mongoDocument
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user document: %w", err)
	}
	return md.toDomain(), nil
}
