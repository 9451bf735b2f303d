package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	appointmentsCollection = "appointments"
	recoveryCollection     = "recoveryLogs"
	tipsCollection         = "healthTips"
	usersCollection        = "users"
)

// ErrStorageUnavailable wraps every failure reported by the document store.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Repository maps API operations onto single document-store calls. Each call
// runs under its own timeout derived from the caller's context.
type Repository struct {
	db      *mongo.Database
	timeout time.Duration
}

// NewRepository runs every call against db with the given per-call timeout.
func NewRepository(db *mongo.Database, timeout time.Duration) *Repository {
	return &Repository{db: db, timeout: timeout}
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}

// Ping checks that the store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.Client().Ping(ctx, nil); err != nil {
		return storageError("ping", err)
	}
	return nil
}
