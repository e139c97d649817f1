package services

import (
	"context"
	"fmt"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/google/uuid"
)

// JournalEntryStore is the slice of the journal repository the service consumes.
type JournalEntryStore interface {
	UpsertEntry(ctx context.Context, entry *models.JournalEntry) error
	BulkUpsertEntries(ctx context.Context, entries []models.JournalEntry) (*models.BulkResult, error)
	GetAllEntries(ctx context.Context) ([]models.JournalEntry, error)
}

type JournalEntryService struct {
	repo JournalEntryStore
}

func NewJournalEntryService(repo JournalEntryStore) *JournalEntryService {
	return &JournalEntryService{repo: repo}
}

// JournalEntryInput carries submitted journal entry fields with the raw
// timestamp string.
type JournalEntryInput struct {
	ID        string
	Title     *string
	Content   string
	Mood      *string
	Tags      []string
	Timestamp string
}

func (in JournalEntryInput) toEntry() models.JournalEntry {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.JournalEntry{
		ID:        id,
		Title:     in.Title,
		Content:   in.Content,
		Mood:      in.Mood,
		Tags:      tags,
		Timestamp: parseTimestamp(in.Timestamp),
	}
}

// UpsertEntry normalizes and writes a single journal entry.
func (s *JournalEntryService) UpsertEntry(ctx context.Context, input JournalEntryInput) (*models.JournalEntry, error) {
	if input.Content == "" {
		return nil, fmt.Errorf("journal entry must have content")
	}

	entry := input.toEntry()
	if err := s.repo.UpsertEntry(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// BulkUpsertEntries applies a sync batch as one unordered bulk write.
func (s *JournalEntryService) BulkUpsertEntries(ctx context.Context, inputs []JournalEntryInput) (*models.BulkResult, error) {
	if len(inputs) == 0 {
		return &models.BulkResult{}, nil
	}

	entries := make([]models.JournalEntry, 0, len(inputs))
	for _, input := range inputs {
		entries = append(entries, input.toEntry())
	}

	return s.repo.BulkUpsertEntries(ctx, entries)
}

// GetAllEntries returns every journal entry in natural store order.
func (s *JournalEntryService) GetAllEntries(ctx context.Context) ([]models.JournalEntry, error) {
	return s.repo.GetAllEntries(ctx)
}
