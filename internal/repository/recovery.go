package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rural-health-assistant/internal/models"
)

// AppendRecoveryEntry pushes entry onto the user's log, creating the log on
// first use. The push and the upsert are a single atomic update.
func (r *Repository) AppendRecoveryEntry(ctx context.Context, user string, entry models.RecoveryEntry) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err := r.db.Collection(recoveryCollection).UpdateOne(ctx,
		bson.M{"user": user},
		bson.M{"$push": bson.M{"logs": entry}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return storageError("append recovery entry", err)
	}
	return nil
}

// ListRecoveryEntries returns the user's entries oldest first; an unknown
// user has an empty log.
func (r *Repository) ListRecoveryEntries(ctx context.Context, user string) ([]models.RecoveryEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc models.RecoveryLog
	err := r.db.Collection(recoveryCollection).FindOne(ctx, bson.M{"user": user}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []models.RecoveryEntry{}, nil
	}
	if err != nil {
		return nil, storageError("find recovery log", err)
	}

	if doc.Logs == nil {
		return []models.RecoveryEntry{}, nil
	}
	return doc.Logs, nil
}
