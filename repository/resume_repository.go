package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"careerlog-backend/models"
)

// ResumeRepository handles the metadata records for stored resume files.
type ResumeRepository struct {
	coll *mongo.Collection
}

// NewResumeRepository creates a new resume file repository.
func NewResumeRepository(db *mongo.Database) *ResumeRepository {
	return &ResumeRepository{coll: db.Collection("resume_files")}
}

// Create inserts a resume file record and fills in its generated id.
func (r *ResumeRepository) Create(ctx context.Context, file *models.ResumeFile) error {
	result, err := r.coll.InsertOne(ctx, file)
	if err != nil {
		return err
	}

	file.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// FindByID retrieves a resume file record by id.
func (r *ResumeRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.ResumeFile, error) {
	file := &models.ResumeFile{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(file); err != nil {
		return nil, err
	}
	return file, nil
}

// Delete removes a resume file record.
func (r *ResumeRepository) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
