package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"careerlog-backend/apperr"
	"careerlog-backend/models"
)

// UserStore is the persistence surface the user service needs, satisfied by
// repository.UserRepository.
type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	Update(ctx context.Context, id bson.ObjectID, fields bson.M) (int64, time.Time, error)
	Delete(ctx context.Context, id bson.ObjectID) (int64, error)
}

// UserService handles business logic for user records. Every operation
// requires the path id to equal the caller id before any persistence access;
// a mismatch is an ownership violation, not a not-found.
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// UpdateUserRequest is a partial user update; nil fields are left unchanged.
type UpdateUserRequest struct {
	PhoneNumber *string `json:"phoneNumber"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Pfp         *string `json:"pfp"`
}

// Get retrieves the caller's own user record.
func (s *UserService) Get(ctx context.Context, id, callerID string) (*models.User, error) {
	objectID, err := s.authorize(id, callerID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}

	return user, nil
}

// Update applies a partial update to the caller's own user record and
// returns the new updatedAt.
func (s *UserService) Update(ctx context.Context, id, callerID string, req UpdateUserRequest) (time.Time, error) {
	objectID, err := s.authorize(id, callerID)
	if err != nil {
		return time.Time{}, err
	}

	fields := userUpdateFields(req)
	if len(fields) == 0 {
		return time.Time{}, apperr.Validation("No fields provided for update")
	}

	matched, updatedAt, err := s.users.Update(ctx, objectID, fields)
	if err != nil {
		return time.Time{}, err
	}
	if matched == 0 {
		return time.Time{}, apperr.NotFound("User not found")
	}

	return updatedAt, nil
}

// Delete removes the caller's own user record.
func (s *UserService) Delete(ctx context.Context, id, callerID string) error {
	objectID, err := s.authorize(id, callerID)
	if err != nil {
		return err
	}

	deleted, err := s.users.Delete(ctx, objectID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperr.NotFound("User not found")
	}

	return nil
}

func (s *UserService) authorize(id, callerID string) (bson.ObjectID, error) {
	if id != callerID {
		return bson.ObjectID{}, apperr.OwnershipViolation("Access to this user is forbidden")
	}

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, apperr.NotFound("Invalid user id")
	}

	return objectID, nil
}

func userUpdateFields(req UpdateUserRequest) bson.M {
	fields := bson.M{}
	if req.PhoneNumber != nil {
		fields["phoneNumber"] = *req.PhoneNumber
	}
	if req.FirstName != nil {
		fields["firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["lastName"] = *req.LastName
	}
	if req.Pfp != nil {
		fields["pfp"] = *req.Pfp
	}
	return fields
}
