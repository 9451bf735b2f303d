package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rural-health-assistant/internal/models"
)

// ListTips returns the text of every non-empty tip.
func (r *Repository) ListTips(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	filter := bson.M{"tip": bson.M{"$exists": true, "$nin": bson.A{nil, ""}}}
	cursor, err := r.db.Collection(tipsCollection).Find(ctx, filter)
	if err != nil {
		return nil, storageError("find tips", err)
	}
	defer cursor.Close(ctx)

	var docs []models.HealthTip
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storageError("decode tips", err)
	}

	tips := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.Text != "" {
			tips = append(tips, d.Text)
		}
	}
	return tips, nil
}

// UpsertTip inserts text unless an identical tip already exists.
func (r *Repository) UpsertTip(ctx context.Context, text string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.Collection(tipsCollection).UpdateOne(ctx,
		bson.M{"tip": text},
		bson.M{"$setOnInsert": bson.M{"tip": text}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return storageError("upsert tip", err)
	}
	return nil
}
