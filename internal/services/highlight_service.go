package services

import (
	"context"
	"fmt"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/google/uuid"
)

// HighlightEntryStore is the slice of the highlight repository the service consumes.
type HighlightEntryStore interface {
	UpsertEntry(ctx context.Context, entry *models.HighlightEntry) error
	BulkUpsertEntries(ctx context.Context, entries []models.HighlightEntry) (*models.BulkResult, error)
	GetAllEntries(ctx context.Context) ([]models.HighlightEntry, error)
}

type HighlightEntryService struct {
	repo HighlightEntryStore
}

func NewHighlightEntryService(repo HighlightEntryStore) *HighlightEntryService {
	return &HighlightEntryService{repo: repo}
}

// HighlightEntryInput carries submitted highlight entry fields with the raw
// timestamp string.
type HighlightEntryInput struct {
	ID        string
	Highlight string
	Reason    *string
	Mood      *string
	Timestamp string
}

func (in HighlightEntryInput) toEntry() models.HighlightEntry {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	return models.HighlightEntry{
		ID:        id,
		Highlight: in.Highlight,
		Reason:    in.Reason,
		Mood:      in.Mood,
		Timestamp: parseTimestamp(in.Timestamp),
	}
}

// UpsertEntry normalizes and writes a single highlight entry.
func (s *HighlightEntryService) UpsertEntry(ctx context.Context, input HighlightEntryInput) (*models.HighlightEntry, error) {
	if input.Highlight == "" {
		return nil, fmt.Errorf("highlight entry must have a highlight")
	}

	entry := input.toEntry()
	if err := s.repo.UpsertEntry(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// BulkUpsertEntries applies a sync batch as one unordered bulk write.
func (s *HighlightEntryService) BulkUpsertEntries(ctx context.Context, inputs []HighlightEntryInput) (*models.BulkResult, error) {
	if len(inputs) == 0 {
		return &models.BulkResult{}, nil
	}

	entries := make([]models.HighlightEntry, 0, len(inputs))
	for _, input := range inputs {
		entries = append(entries, input.toEntry())
	}

	return s.repo.BulkUpsertEntries(ctx, entries)
}

// GetAllEntries returns every highlight entry in natural store order.
func (s *HighlightEntryService) GetAllEntries(ctx context.Context) ([]models.HighlightEntry, error) {
	return s.repo.GetAllEntries(ctx)
}
