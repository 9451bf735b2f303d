package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// HealthTip is reference data seeded outside the API.
type HealthTip struct {
	ID   primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Text string             `json:"tip" bson:"tip"`
}
