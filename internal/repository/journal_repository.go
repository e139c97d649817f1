package repository

import (
	"context"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JournalEntryRepository struct handles database operations related to journal entries
type JournalEntryRepository struct {
	collection *mongo.Collection
}

// NewJournalEntryRepository creates a new instance of JournalEntryRepository
func NewJournalEntryRepository(db *mongo.Database) *JournalEntryRepository {
	return &JournalEntryRepository{
		collection: db.Collection("journal_entries"),
	}
}

// UpsertEntry writes the full journal entry document keyed by its id
func (r *JournalEntryRepository) UpsertEntry(ctx context.Context, entry *models.JournalEntry) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"id": entry.ID},
		bson.M{"$set": entry},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logger.Log.WithError(err).WithField("entry_id", entry.ID).Error("Failed to upsert journal entry")
		return err
	}

	logger.Log.WithField("entry_id", entry.ID).Info("Journal entry upserted successfully")
	return nil
}

// BulkUpsertEntries applies an unordered batch of upserts, one per entry.
func (r *JournalEntryRepository) BulkUpsertEntries(ctx context.Context, entries []models.JournalEntry) (*models.BulkResult, error) {
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
		logger.Log.WithError(err).WithField("count", len(entries)).Error("Failed to bulk upsert journal entries")
		return nil, err
	}

	return &models.BulkResult{
		Matched:  result.MatchedCount,
		Modified: result.ModifiedCount,
		Upserted: result.UpsertedCount,
	}, nil
}

// GetAllEntries fetches all journal entries in natural store order
func (r *JournalEntryRepository) GetAllEntries(ctx context.Context) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch journal entries")
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var entry models.JournalEntry
		if err := cursor.Decode(&entry); err != nil {
			logger.Log.WithError(err).Error("Failed to decode journal entry")
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
