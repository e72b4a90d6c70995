package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Job statuses recognized by the analytics breakdown. The status field itself
// is free-form; anything else only counts toward the total.
const (
	JobStatusApplied      = "applied"
	JobStatusInterviewing = "interviewing"
	JobStatusOffer        = "offer"
	JobStatusDenied       = "denied"
	JobStatusRejected     = "rejected"
)

// Job represents a tracked job application. The owner reference is the hex
// form of the user's document id.
type Job struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string        `bson:"userId" json:"userId"`
	JobID          *string       `bson:"jobId" json:"jobId"` // external posting id
	URL            string        `bson:"url" json:"url"`
	JobTitle       string        `bson:"jobTitle" json:"jobTitle"`
	Company        string        `bson:"company" json:"company"`
	SalaryTarget   float64       `bson:"salaryTarget" json:"salaryTarget"`
	SalaryRange    *string       `bson:"salaryRange" json:"salaryRange"`
	Status         string        `bson:"status" json:"status"`
	Resume         string        `bson:"resume" json:"resume"` // resume file id or opaque string
	Location       string        `bson:"location" json:"location"`
	EmploymentType string        `bson:"employmentType" json:"employmentType"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// StatusCounts is the per-status job breakdown. Both "denied" and "rejected"
// labels are carried; see DESIGN.md on the vocabulary drift.
type StatusCounts struct {
	Applied      int64 `json:"applied"`
	Interviewing int64 `json:"interviewing"`
	Offer        int64 `json:"offer"`
	Denied       int64 `json:"denied"`
	Rejected     int64 `json:"rejected"`
	Total        int64 `json:"total"`
}
