package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ResumeFile is the metadata record for a stored resume binary. The bytes
// themselves live in the configured storage backend under StorageKey.
type ResumeFile struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string        `bson:"userId" json:"userId"`
	Filename    string        `bson:"filename" json:"filename"`
	ContentType string        `bson:"contentType" json:"contentType"`
	Size        int64         `bson:"size" json:"size"`
	StorageKey  string        `bson:"storageKey" json:"-"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}
