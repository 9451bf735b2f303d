package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rural-health-assistant/internal/models"
)

// FindUsersByName returns every user stored under name, oldest first. Names
// are not unique in existing data, so callers must check each candidate.
func (r *Repository) FindUsersByName(ctx context.Context, name string) ([]models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.db.Collection(usersCollection).Find(ctx, bson.M{"name": name}, opts)
	if err != nil {
		return nil, storageError("find users", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, storageError("decode users", err)
	}
	return users, nil
}

// SaveUser creates the user or replaces the password and role of an
// existing user with the same name.
func (r *Repository) SaveUser(ctx context.Context, user *models.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	set := bson.M{"password": user.Password}
	if user.Role != "" {
		set["role"] = user.Role
	}

	_, err := r.db.Collection(usersCollection).UpdateOne(ctx,
		bson.M{"name": user.Name},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return storageError("save user", err)
	}
	return nil
}
