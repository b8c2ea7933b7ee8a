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

const usersCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone"`
	PasswordHash    string             `bson:"password_hash"`
	NationalID      string             `bson:"national_id"`
	Avatar          string             `bson:"avatar,omitempty"`
	AgreementSigned bool               `bson:"agreement_signed"`
	IsAdmin         bool               `bson:"is_admin"`
	IsBlocked       bool               `bson:"is_blocked"`
	LoginLogs       []time.Time        `bson:"login_logs,omitempty"`
	RefreshToken    string             `bson:"refresh_token,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		PasswordHash:    u.PasswordHash,
		NationalID:      u.NationalID,
		Avatar:          u.Avatar,
		AgreementSigned: u.AgreementSigned,
		IsAdmin:         u.IsAdmin,
		IsBlocked:       u.IsBlocked,
		LoginLogs:       u.LoginLogs,
		RefreshToken:    u.RefreshToken,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:              mu.ID.Hex(),
		Name:            mu.Name,
		Email:           mu.Email,
		Phone:           mu.Phone,
		PasswordHash:    mu.PasswordHash,
		NationalID:      mu.NationalID,
		Avatar:          mu.Avatar,
		AgreementSigned: mu.AgreementSigned,
		IsAdmin:         mu.IsAdmin,
		IsBlocked:       mu.IsBlocked,
		LoginLogs:       mu.LoginLogs,
		RefreshToken:    mu.RefreshToken,
		CreatedAt:       mu.CreatedAt,
		UpdatedAt:       mu.UpdatedAt,
	}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.coll.InsertOne(ctx, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := toMongoUser(user)
	doc.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}

	updated := *user
	updated.UpdatedAt = doc.UpdatedAt
	return &updated, nil
}

func (r *MongoUserRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) List(ctx context.Context, onlyNonAdmin bool) ([]*domain.User, error) {
	filter := bson.M{}
	if onlyNonAdmin {
		filter["is_admin"] = false
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, mu.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// AppendLoginLog pushes a single timestamp onto login_logs. The push is atomic
// at the document level, so concurrent logins may interleave but never lose
// entries.
func (r *MongoUserRepository) AppendLoginLog(ctx context.Context, id string, at time.Time) error {
	return r.updateByID(ctx, id, bson.M{
		"$push": bson.M{"login_logs": at},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *MongoUserRepository) SetBlocked(ctx context.Context, id string, blocked bool) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	after := options.After
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_blocked": blocked, "updated_at": time.Now().UTC()}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&mu)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("set blocked: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) SetAgreementSigned(ctx context.Context, id string) error {
	return r.updateByID(ctx, id, bson.M{
		"$set": bson.M{"agreement_signed": true, "updated_at": time.Now().UTC()},
	})
}

func (r *MongoUserRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	return r.updateByID(ctx, id, bson.M{
		"$set": bson.M{"refresh_token": token, "updated_at": time.Now().UTC()},
	})
}

func (r *MongoUserRepository) ClearRefreshToken(ctx context.Context, id string) error {
	return r.updateByID(ctx, id, bson.M{
		"$unset": bson.M{"refresh_token": 1},
	})
}

func (r *MongoUserRepository) updateByID(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
