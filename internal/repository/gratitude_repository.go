package repository

import (
	"context"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GratitudeEntryRepository struct handles database operations related to gratitude entries
type GratitudeEntryRepository struct {
	collection *mongo.Collection
}

// NewGratitudeEntryRepository creates a new instance of GratitudeEntryRepository
func NewGratitudeEntryRepository(db *mongo.Database) *GratitudeEntryRepository {
	return &GratitudeEntryRepository{
		collection: db.Collection("gratitude_entries"),
	}
}

// BulkUpsertEntries applies an unordered batch of upserts, one per entry.
func (r *GratitudeEntryRepository) BulkUpsertEntries(ctx context.Context, entries []models.GratitudeEntry) (*models.BulkResult, error) {
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
		logger.Log.WithError(err).WithField("count", len(entries)).Error("Failed to bulk upsert gratitude entries")
		return nil, err
	}

	return &models.BulkResult{
		Matched:  result.MatchedCount,
		Modified: result.ModifiedCount,
		Upserted: result.UpsertedCount,
	}, nil
}

// GetAllEntries fetches all gratitude entries in natural store order
func (r *GratitudeEntryRepository) GetAllEntries(ctx context.Context) ([]models.GratitudeEntry, error) {
	var entries []models.GratitudeEntry

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch gratitude entries")
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var entry models.GratitudeEntry
		if err := cursor.Decode(&entry); err != nil {
			logger.Log.WithError(err).Error("Failed to decode gratitude entry")
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
