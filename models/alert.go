package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Alert represents a scheduled reminder. LastAlertAt stays nil until a
// delivery worker sends it; this service never does.
type Alert struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string        `bson:"userId" json:"userId"`
	ScheduledAlert time.Time     `bson:"scheduledAlert" json:"scheduledAlert"`
	SmsOrEmail     string        `bson:"smsOrEmail" json:"smsOrEmail"`
	Message        string        `bson:"message" json:"message"`
	LastAlertAt    *time.Time    `bson:"lastAlertAt" json:"lastAlertAt"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time     `bson:"updatedAt" json:"updatedAt"`
}
