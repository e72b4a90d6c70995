package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"careerlog-backend/models"
)

// AlertRepository handles document-store operations for alerts.
type AlertRepository struct {
	coll *mongo.Collection
}

// NewAlertRepository creates a new alert repository.
func NewAlertRepository(db *mongo.Database) *AlertRepository {
	return &AlertRepository{coll: db.Collection("alerts")}
}

// Create inserts an alert and fills in its generated id.
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	result, err := r.coll.InsertOne(ctx, alert)
	if err != nil {
		return err
	}

	alert.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// Find returns one page of alerts matching the filter.
func (r *AlertRepository) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Alert, error) {
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	alerts := []models.Alert{}
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// Count returns the number of alerts matching the filter.
func (r *AlertRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.coll.CountDocuments(ctx, filter)
}

// Update applies a partial update scoped to (id, owner) and refreshes
// updatedAt.
func (r *AlertRepository) Update(ctx context.Context, id bson.ObjectID, userID string, fields bson.M) (int64, time.Time, error) {
	now := time.Now().UTC()
	fields["updatedAt"] = now

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, bson.M{"$set": fields})
	if err != nil {
		return 0, time.Time{}, err
	}

	return result.MatchedCount, now, nil
}

// Delete removes an alert scoped to (id, owner).
func (r *AlertRepository) Delete(ctx context.Context, id bson.ObjectID, userID string) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
