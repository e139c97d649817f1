package services

import (
	"context"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/google/uuid"
)

// GratitudeEntryStore is the slice of the gratitude repository the service consumes.
type GratitudeEntryStore interface {
	BulkUpsertEntries(ctx context.Context, entries []models.GratitudeEntry) (*models.BulkResult, error)
	GetAllEntries(ctx context.Context) ([]models.GratitudeEntry, error)
}

// GratitudeEntryService only supports bulk sync and listing; the client never
// submits gratitude entries one at a time.
type GratitudeEntryService struct {
	repo GratitudeEntryStore
}

func NewGratitudeEntryService(repo GratitudeEntryStore) *GratitudeEntryService {
	return &GratitudeEntryService{repo: repo}
}

// GratitudeEntryInput carries submitted gratitude entry fields with the raw
// timestamp string.
type GratitudeEntryInput struct {
	ID        string
	Items     []string
	Timestamp string
}

func (in GratitudeEntryInput) toEntry() models.GratitudeEntry {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	items := in.Items
	if items == nil {
		items = []string{}
	}

	return models.GratitudeEntry{
		ID:        id,
		Items:     items,
		Timestamp: parseTimestamp(in.Timestamp),
	}
}

// BulkUpsertEntries applies a sync batch as one unordered bulk write.
func (s *GratitudeEntryService) BulkUpsertEntries(ctx context.Context, inputs []GratitudeEntryInput) (*models.BulkResult, error) {
	if len(inputs) == 0 {
		return &models.BulkResult{}, nil
	}

	entries := make([]models.GratitudeEntry, 0, len(inputs))
	for _, input := range inputs {
		entries = append(entries, input.toEntry())
	}

	return s.repo.BulkUpsertEntries(ctx, entries)
}

// GetAllEntries returns every gratitude entry in natural store order.
func (s *GratitudeEntryService) GetAllEntries(ctx context.Context) ([]models.GratitudeEntry, error) {
	return s.repo.GetAllEntries(ctx)
}
