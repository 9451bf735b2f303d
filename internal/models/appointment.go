package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is a booking made from the patient dashboard. Duplicates are allowed.
type Appointment struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Symptoms  string             `json:"symptoms" bson:"symptoms"`
	Date      string             `json:"date" bson:"date"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
