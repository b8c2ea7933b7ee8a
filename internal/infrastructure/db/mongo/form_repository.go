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

const formsCollection = "forms"

type MongoFormRepository struct {
	coll *mongo.Collection
}

func NewFormRepository(db *mongo.Database) *MongoFormRepository {
	return &MongoFormRepository{coll: db.Collection(formsCollection)}
}

type mongoForm struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Data        map[string]any     `bson:"data"`
	Submitted   bool               `bson:"submitted"`
	SubmittedAt *time.Time         `bson:"submitted_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mf mongoForm) toDomain() *domain.Form {
	return &domain.Form{
		ID:          mf.ID.Hex(),
		UserID:      mf.UserID,
		Data:        mf.Data,
		Submitted:   mf.Submitted,
		SubmittedAt: mf.SubmittedAt,
		CreatedAt:   mf.CreatedAt,
		UpdatedAt:   mf.UpdatedAt,
	}
}

func (r *MongoFormRepository) Create(ctx context.Context, form *domain.Form) (*domain.Form, error) {
	doc := mongoForm{
		UserID:    form.UserID,
		Data:      form.Data,
		CreatedAt: form.CreatedAt,
		UpdatedAt: form.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert form: %w", err)
	}

	created := *form
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoFormRepository) FindByID(ctx context.Context, id string) (*domain.Form, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFormNotFound
	}

	var mf mongoForm
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mf); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrFormNotFound
		}
		return nil, fmt.Errorf("find form: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *MongoFormRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Form, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *MongoFormRepository) FindAll(ctx context.Context) ([]*domain.Form, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoFormRepository) find(ctx context.Context, filter bson.M) ([]*domain.Form, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find forms: %w", err)
	}
	defer cur.Close(ctx)

	var forms []*domain.Form
	for cur.Next(ctx) {
		var mf mongoForm
		if err := cur.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode form: %w", err)
		}
		forms = append(forms, mf.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find forms: %w", err)
	}
	return forms, nil
}

func (r *MongoFormRepository) Update(ctx context.Context, form *domain.Form) (*domain.Form, error) {
	oid, err := primitive.ObjectIDFromHex(form.ID)
	if err != nil {
		return nil, domain.ErrFormNotFound
	}

	update := bson.M{"$set": bson.M{
		"data":         form.Data,
		"submitted":    form.Submitted,
		"submitted_at": form.SubmittedAt,
		"updated_at":   form.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update form: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrFormNotFound
	}
	return form, nil
}

func (r *MongoFormRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFormNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFormNotFound
	}
	return nil
}
