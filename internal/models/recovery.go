package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecoveryLog holds every entry for one user, oldest first.
type RecoveryLog struct {
	ID   primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	User string             `json:"user" bson:"user"`
	Logs []RecoveryEntry    `json:"logs" bson:"logs"`
}

// RecoveryEntry is one daily check-in.
type RecoveryEntry struct {
	Exercise  bool      `json:"exercise" bson:"exercise"`
	Medicine  bool      `json:"medicine" bson:"medicine"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
