package service

import (
	"context"

	"careerlog-backend/models"
)

// JobCounter is the aggregation surface the analytics service needs,
// satisfied by repository.JobRepository.
type JobCounter interface {
	CountByStatus(ctx context.Context, userID string) (map[string]int64, error)
}

// AnalyticsService provides read-only aggregations over the caller's jobs.
type AnalyticsService struct {
	jobs JobCounter
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(jobs JobCounter) *AnalyticsService {
	return &AnalyticsService{jobs: jobs}
}

// StatusCounts returns the caller's job counts grouped into the fixed status
// buckets. Statuses outside the bucket set count toward the total only.
func (s *AnalyticsService) StatusCounts(ctx context.Context, userID string) (*models.StatusCounts, error) {
	rows, err := s.jobs.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := bucketCounts(rows)
	return &counts, nil
}

func bucketCounts(rows map[string]int64) models.StatusCounts {
	counts := models.StatusCounts{}
	for status, count := range rows {
		counts.Total += count

		switch status {
		case models.JobStatusApplied:
			counts.Applied = count
		case models.JobStatusInterviewing:
			counts.Interviewing = count
		case models.JobStatusOffer:
			counts.Offer = count
		case models.JobStatusDenied:
			counts.Denied = count
		case models.JobStatusRejected:
			counts.Rejected = count
		}
	}
	return counts
}
