package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/idaccess/identity-service/internal/core/domain"
)

const rolesCollection = "roles"

// MongoRoleStore persists roles. The unique index on name backs the
// uniqueness invariant.
type MongoRoleStore struct {
	coll *mongo.Collection
}

func NewRoleStore(db *mongo.Database) *MongoRoleStore {
	return &MongoRoleStore{coll: db.Collection(rolesCollection)}
}

type roleDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (s *MongoRoleStore) Exists(ctx context.Context, name string) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, storeErr("role exists", err)
	}
	return n > 0, nil
}

func (s *MongoRoleStore) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var doc roleDoc
	if err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, storeErr("find role", err)
	}
	return &domain.Role{ID: doc.ID.Hex(), Name: doc.Name}, nil
}

func (s *MongoRoleStore) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	res, err := s.coll.InsertOne(ctx, roleDoc{Name: role.Name})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateRole
		}
		return nil, storeErr("insert role", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return &domain.Role{ID: oid.Hex(), Name: role.Name}, nil
}
