package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/internal/streak"
	"github.com/sirupsen/logrus"
)

// RolloverStore is the slice of the habit repository the rollover needs.
type RolloverStore interface {
	GetAllHabits(ctx context.Context) ([]models.Habit, error)
	SetCompletedFlag(ctx context.Context, id string, completed bool) error
}

// CompletionRollover re-derives each habit's completed flag at the start of
// a new UTC day. The flag mirrors "completed today"; once the day changes it
// goes stale until the next completion write, so a daily pass brings it back
// in line with the completion map. Completion maps and streaks are never
// touched here.
type CompletionRollover struct {
	Repo RolloverStore
}

// NewCompletionRollover creates a new instance of CompletionRollover
func NewCompletionRollover(repo RolloverStore) *CompletionRollover {
	return &CompletionRollover{Repo: repo}
}

// Run rolls every habit's completed flag over to the current UTC day.
func (j *CompletionRollover) Run(ctx context.Context) error {
	return j.RunForDay(ctx, time.Now().UTC().Format(streak.DateLayout))
}

// RunForDay rolls the completed flags over to the given "YYYY-MM-DD" day.
// A failing habit is logged and skipped; the remaining habits still apply.
func (j *CompletionRollover) RunForDay(ctx context.Context, dayKey string) error {
	habits, err := j.Repo.GetAllHabits(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch habits: %v", err)
	}

	updated := 0
	for _, habit := range habits {
		want := habit.CompletionsByDate[dayKey]
		if habit.Completed == want {
			continue
		}
		if err := j.Repo.SetCompletedFlag(ctx, habit.ID, want); err != nil {
			logrus.WithError(err).WithField("habit_id", habit.ID).Error("Failed to roll over completed flag")
			continue
		}
		updated++
	}

	logrus.WithFields(logrus.Fields{
		"day":     dayKey,
		"updated": updated,
	}).Info("Completion rollover finished")

	return nil
}
