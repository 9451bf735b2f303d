package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a login. Password is never serialized to clients.
type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Password string             `json:"-" bson:"password"`
	Role     string             `json:"role,omitempty" bson:"role,omitempty"`
}
