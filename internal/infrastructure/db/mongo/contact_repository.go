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

const contactsCollection = "contact_messages"

type MongoContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: db.Collection(contactsCollection)}
}

type mongoContact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mc mongoContact) toDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        mc.ID.Hex(),
		Name:      mc.Name,
		Email:     mc.Email,
		Phone:     mc.Phone,
		Message:   mc.Message,
		CreatedAt: mc.CreatedAt,
		UpdatedAt: mc.UpdatedAt,
	}
}

// UpsertByEmail replaces the message fields for an existing email or inserts a
// new document, mirroring a findOneAndUpdate with upsert.
func (r *MongoContactRepository) UpsertByEmail(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":       msg.Name,
			"phone":      msg.Phone,
			"message":    msg.Message,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	upsert := true
	after := options.After
	var mc mongoContact
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"email": msg.Email},
		update,
		&options.FindOneAndUpdateOptions{Upsert: &upsert, ReturnDocument: &after},
	).Decode(&mc)
	if err != nil {
		return nil, fmt.Errorf("upsert contact message: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *MongoContactRepository) FindAll(ctx context.Context) ([]*domain.ContactMessage, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.ContactMessage
	for cur.Next(ctx) {
		var mc mongoContact
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode contact message: %w", err)
		}
		out = append(out, mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return out, nil
}

func (r *MongoContactRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrContactNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}
