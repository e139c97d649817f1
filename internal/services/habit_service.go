package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/internal/streak"
	"github.com/google/uuid"
)

// HabitStore is the slice of the habit repository the service consumes.
type HabitStore interface {
	GetHabitByID(ctx context.Context, id string) (*models.Habit, error)
	UpsertHabit(ctx context.Context, habit *models.Habit) error
	UpdateCompletion(ctx context.Context, id string, completed bool, completions map[string]bool, streak int) error
	BulkUpsertHabits(ctx context.Context, habits []models.Habit) (*models.BulkResult, error)
	GetAllHabits(ctx context.Context) ([]models.Habit, error)
}

type HabitService struct {
	repo HabitStore
}

func NewHabitService(repo HabitStore) *HabitService {
	return &HabitService{repo: repo}
}

// HabitInput carries the fields of a habit document as submitted by a client.
// CreatedAt is the raw wire string; it is normalized here.
type HabitInput struct {
	ID                string
	Name              string
	Completed         bool
	Streak            int
	CreatedAt         string
	CompletionsByDate map[string]bool
	Notify            bool
	NotifyTime        *string
	NotificationID    *string
}

// CompletionResult is the minimal state returned after marking a completion.
type CompletionResult struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Streak    int    `json:"streak"`
	Completed bool   `json:"completed"`
}

func (in HabitInput) toHabit() models.Habit {
	completions := in.CompletionsByDate
	if completions == nil {
		completions = map[string]bool{}
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	return models.Habit{
		ID:                id,
		Name:              in.Name,
		Completed:         in.Completed,
		Streak:            in.Streak,
		CreatedAt:         parseTimestamp(in.CreatedAt),
		CompletionsByDate: completions,
		Notify:            in.Notify,
		NotifyTime:        in.NotifyTime,
		NotificationID:    in.NotificationID,
	}
}

// UpsertHabit normalizes the submitted fields and writes the full document.
// The caller-supplied streak is stored as-is; this path exists for client
// sync and does not recompute anything.
func (s *HabitService) UpsertHabit(ctx context.Context, input HabitInput) (*models.Habit, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("habit must have a name")
	}

	habit := input.toHabit()
	if err := s.repo.UpsertHabit(ctx, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

// CompleteHabit marks the habit completed for the given date and recomputes
// its streak relative to that date. date is an optional "YYYY-MM-DD" string;
// anything missing or malformed falls back to the current UTC day. The streak
// reference is the submitted date, not today, so marking a past day reports
// the streak as of that day.
func (s *HabitService) CompleteHabit(ctx context.Context, id, date string) (*CompletionResult, error) {
	dateKey := time.Now().UTC().Format(streak.DateLayout)
	if date != "" {
		if _, err := time.ParseInLocation(streak.DateLayout, date, time.UTC); err == nil {
			dateKey = date
		}
	}

	habit, err := s.repo.GetHabitByID(ctx, id)
	if err != nil {
		return nil, err
	}

	completions := habit.CompletionsByDate
	if completions == nil {
		completions = map[string]bool{}
	}
	completions[dateKey] = true

	current := streak.ComputeForKey(completions, dateKey)

	if err := s.repo.UpdateCompletion(ctx, id, true, completions, current); err != nil {
		return nil, err
	}

	return &CompletionResult{
		ID:        id,
		Date:      dateKey,
		Streak:    current,
		Completed: true,
	}, nil
}

// BulkUpsertHabits applies a client sync batch as one unordered bulk write.
// An empty batch returns zero counts without touching the store.
func (s *HabitService) BulkUpsertHabits(ctx context.Context, inputs []HabitInput) (*models.BulkResult, error) {
	if len(inputs) == 0 {
		return &models.BulkResult{}, nil
	}

	habits := make([]models.Habit, 0, len(inputs))
	for _, input := range inputs {
		habits = append(habits, input.toHabit())
	}

	return s.repo.BulkUpsertHabits(ctx, habits)
}

// GetAllHabits returns every habit in natural store order.
func (s *HabitService) GetAllHabits(ctx context.Context) ([]models.Habit, error) {
	return s.repo.GetAllHabits(ctx)
}
