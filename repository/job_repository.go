package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"careerlog-backend/models"
)

// JobRepository handles document-store operations for jobs.
type JobRepository struct {
	coll *mongo.Collection
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection("jobs")}
}

// Create inserts a job and fills in its generated id.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	result, err := r.coll.InsertOne(ctx, job)
	if err != nil {
		return err
	}

	job.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// Find returns one page of jobs matching the filter. Ties on the sort key
// resolve to store-native order.
func (r *JobRepository) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Job, error) {
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Count returns the number of jobs matching the filter.
func (r *JobRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.coll.CountDocuments(ctx, filter)
}

// FindByID retrieves a job scoped to its owner.
func (r *JobRepository) FindByID(ctx context.Context, id bson.ObjectID, userID string) (*models.Job, error) {
	job := &models.Job{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update applies a partial update scoped to (id, owner) and refreshes
// updatedAt. It returns the number of matched documents and the new
// updatedAt value.
func (r *JobRepository) Update(ctx context.Context, id bson.ObjectID, userID string, fields bson.M) (int64, time.Time, error) {
	now := time.Now().UTC()
	fields["updatedAt"] = now

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, bson.M{"$set": fields})
	if err != nil {
		return 0, time.Time{}, err
	}

	return result.MatchedCount, now, nil
}

// Delete removes a job scoped to (id, owner) and returns the number of
// deleted documents.
func (r *JobRepository) Delete(ctx context.Context, id bson.ObjectID, userID string) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountByStatus aggregates the caller's jobs grouped by status.
func (r *JobRepository) CountByStatus(ctx context.Context, userID string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userId": userID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
