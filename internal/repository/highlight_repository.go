package repository

import (
	"context"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HighlightEntryRepository struct handles database operations related to highlight entries
type HighlightEntryRepository struct {
	collection *mongo.Collection
}

// NewHighlightEntryRepository creates a new instance of HighlightEntryRepository
func NewHighlightEntryRepository(db *mongo.Database) *HighlightEntryRepository {
	return &HighlightEntryRepository{
		collection: db.Collection("highlight_entries"),
	}
}

// UpsertEntry writes the full highlight entry document keyed by its id
func (r *HighlightEntryRepository) UpsertEntry(ctx context.Context, entry *models.HighlightEntry) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"id": entry.ID},
		bson.M{"$set": entry},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logger.Log.WithError(err).WithField("entry_id", entry.ID).Error("Failed to upsert highlight entry")
		return err
	}

	logger.Log.WithField("entry_id", entry.ID).Info("Highlight entry upserted successfully")
	return nil
}

// BulkUpsertEntries applies an unordered batch of upserts, one per entry.
func (r *HighlightEntryRepository) BulkUpsertEntries(ctx context.Context, entries []models.HighlightEntry) (*models.BulkResult, error) {
	ops := make([]mongo.WriteModel, 0, len(entries))
	for i := range entries {
		entry := entries[i]
		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"id": entry.ID}).
			SetUpdate(bson.M{"$set": entry}).
			SetUpsert(true))
	}

	result, err := r.collection.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	if err != nil {
		logger.Log.WithError(err).WithField("count", len(entries)).Error("Failed to bulk upsert highlight entries")
		return nil, err
	}

	return &models.BulkResult{
		Matched:  result.MatchedCount,
		Modified: result.ModifiedCount,
		Upserted: result.UpsertedCount,
	}, nil
}

// GetAllEntries fetches all highlight entries in natural store order
func (r *HighlightEntryRepository) GetAllEntries(ctx context.Context) ([]models.HighlightEntry, error) {
	var entries []models.HighlightEntry

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch highlight entries")
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var entry models.HighlightEntry
		if err := cursor.Decode(&entry); err != nil {
			logger.Log.WithError(err).Error("Failed to decode highlight entry")
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
