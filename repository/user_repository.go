package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"careerlog-backend/models"
)

// UserRepository handles document-store operations for users.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

// Create inserts a user and fills in its generated id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return err
	}

	user.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// FindByEmail retrieves a user by email. Returns mongo.ErrNoDocuments when
// no user has the address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID retrieves a user by id.
func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	user := &models.User{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial update and refreshes updatedAt. It returns the
// number of matched documents and the new updatedAt value.
func (r *UserRepository) Update(ctx context.Context, id bson.ObjectID, fields bson.M) (int64, time.Time, error) {
	now := time.Now().UTC()
	fields["updatedAt"] = now

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, time.Time{}, err
	}

	return result.MatchedCount, now, nil
}

// Delete removes a user and returns the number of deleted documents.
func (r *UserRepository) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
