package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rural-health-assistant/internal/models"
)

// CreateAppointment stores a booking and fills in its ID and CreatedAt.
func (r *Repository) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Collection(appointmentsCollection).InsertOne(ctx, appointment)
	if err != nil {
		return storageError("insert appointment", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		appointment.ID = id
	}
	return nil
}

// ListAppointments returns every booking in insertion order.
func (r *Repository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := r.db.Collection(appointmentsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, storageError("find appointments", err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, storageError("decode appointments", err)
	}
	return appointments, nil
}
