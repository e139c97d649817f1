package repository

import (
	"context"
	"errors"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HabitRepository struct handles database operations related to habits
type HabitRepository struct {
	collection *mongo.Collection
}

// NewHabitRepository creates a new instance of HabitRepository
func NewHabitRepository(db *mongo.Database) *HabitRepository {
	return &HabitRepository{
		collection: db.Collection("habits"),
	}
}

// GetHabitByID fetches a habit by its client-facing id
func (r *HabitRepository) GetHabitByID(ctx context.Context, id string) (*models.Habit, error) {
	var habit models.Habit

	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&habit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		logger.Log.WithError(err).WithField("habit_id", id).Error("Failed to find habit by ID")
		return nil, err
	}

	return &habit, nil
}

// UpsertHabit writes the full habit document keyed by its id
func (r *HabitRepository) UpsertHabit(ctx context.Context, habit *models.Habit) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"id": habit.ID},
		bson.M{"$set": habit},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logger.Log.WithError(err).WithField("habit_id", habit.ID).Error("Failed to upsert habit")
		return err
	}

	logger.Log.WithField("habit_id", habit.ID).Info("Habit upserted successfully")
	return nil
}

// UpdateCompletion persists the completion state of a habit as a partial update,
// leaving all other fields untouched.
func (r *HabitRepository) UpdateCompletion(ctx context.Context, id string, completed bool, completions map[string]bool, streak int) error {
	update := bson.M{
		"$set": bson.M{
			"completed":         completed,
			"completionsByDate": completions,
			"streak":            streak,
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		logger.Log.WithError(err).WithField("habit_id", id).Error("Failed to update habit completion")
		return err
	}

	return nil
}

// SetCompletedFlag updates only the completed flag of a habit.
func (r *HabitRepository) SetCompletedFlag(ctx context.Context, id string, completed bool) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"completed": completed}})
	if err != nil {
		logger.Log.WithError(err).WithField("habit_id", id).Error("Failed to update completed flag")
		return err
	}
	return nil
}

// BulkUpsertHabits applies an unordered batch of upserts, one per habit.
// A failing item does not block the remaining items from applying.
func (r *HabitRepository) BulkUpsertHabits(ctx context.Context, habits []models.Habit) (*models.BulkResult, error) {
	ops := make([]mongo.WriteModel, 0, len(habits))
	for i := range habits {
		habit := habits[i]
		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"id": habit.ID}).
			SetUpdate(bson.M{"$set": habit}).
			SetUpsert(true))
	}

	result, err := r.collection.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	if err != nil {
		logger.Log.WithError(err).WithField("count", len(habits)).Error("Failed to bulk upsert habits")
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"matched":  result.MatchedCount,
		"modified": result.ModifiedCount,
		"upserted": result.UpsertedCount,
	}).Info("Habits bulk upserted successfully")

	return &models.BulkResult{
		Matched:  result.MatchedCount,
		Modified: result.ModifiedCount,
		Upserted: result.UpsertedCount,
	}, nil
}

// GetAllHabits fetches all habits in natural store order
func (r *HabitRepository) GetAllHabits(ctx context.Context) ([]models.Habit, error) {
	var habits []models.Habit

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch all habits")
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var habit models.Habit
		if err := cursor.Decode(&habit); err != nil {
			logger.Log.WithError(err).Error("Failed to decode habit")
			return nil, err
		}
		habits = append(habits, habit)
	}

	return habits, nil
}
