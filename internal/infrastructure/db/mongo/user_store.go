package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/idaccess/identity-service/internal/core/domain"
	"github.com/idaccess/identity-service/internal/core/ports"
)

const usersCollection = "users"

// minPasswordLength is the store-level password policy. Rejections here are
// the "store validation detail" creation failures carry.
const minPasswordLength = 8

// MongoUserStore persists accounts with their role memberships embedded as a
// string array on the user document, so deleting a user removes the
// memberships with it.
type MongoUserStore struct {
	coll   *mongo.Collection
	hasher ports.Hasher
}

func NewUserStore(db *mongo.Database, hasher ports.Hasher) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection(usersCollection), hasher: hasher}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	Roles        []string           `bson:"roles"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    unixToTime(d.CreatedAt),
		UpdatedAt:    unixToTime(d.UpdatedAt),
	}
}

// Create hashes the password, enforces the password policy, and inserts the
// user with an empty role set. A duplicate username surfaces as
// domain.ErrUserExists via the unique index.
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if len(password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	doc := userDoc{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: hashed,
		Roles:        []string{},
		CreatedAt:    now.Unix(),
		UpdatedAt:    now.Unix(),
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, storeErr("insert user", err)
	}

	// fetch back to get the assigned id
	return s.FindByName(ctx, user.Username)
}

func (s *MongoUserStore) Update(ctx context.Context, user *domain.User) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"username": user.Username},
		bson.M{"$set": bson.M{
			"email":      user.Email,
			"updated_at": time.Now().UTC().Unix(),
		}},
	)
	if err != nil {
		return storeErr("update user", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *MongoUserStore) Delete(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeErr("delete user", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var doc userDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeErr("find user by id", err)
	}
	return doc.toDomain(), nil
}

func (s *MongoUserStore) FindByName(ctx context.Context, username string) (*domain.User, error) {
	var doc userDoc
	if err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeErr("find user by name", err)
	}
	return doc.toDomain(), nil
}

// RolesOf returns the user's memberships in document order.
func (s *MongoUserStore) RolesOf(ctx context.Context, user *domain.User) ([]string, error) {
	var doc userDoc
	if err := s.coll.FindOne(ctx, bson.M{"username": user.Username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeErr("read roles", err)
	}
	return doc.Roles, nil
}

func (s *MongoUserStore) UsersInRole(ctx context.Context, roleName string) ([]*domain.User, error) {
	cur, err := s.coll.Find(ctx, bson.M{"roles": roleName})
	if err != nil {
		return nil, storeErr("list users in role", err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storeErr("decode user", err)
		}
		users = append(users, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr("list users in role", err)
	}
	return users, nil
}

func (s *MongoUserStore) AddUserToRole(ctx context.Context, user *domain.User, roleName string) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"username": user.Username},
		bson.M{"$addToSet": bson.M{"roles": roleName}},
	)
	if err != nil {
		return storeErr("add user to role", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *MongoUserStore) RemoveUserFromRole(ctx context.Context, user *domain.User, roleName string) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"username": user.Username},
		bson.M{"$pull": bson.M{"roles": roleName}},
	)
	if err != nil {
		return storeErr("remove user from role", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
