package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/internal/services"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJournalStore struct {
	entries map[string]models.JournalEntry
	order   []string
}

func newFakeJournalStore() *fakeJournalStore {
	return &fakeJournalStore{entries: map[string]models.JournalEntry{}}
}

func (f *fakeJournalStore) UpsertEntry(_ context.Context, entry *models.JournalEntry) error {
	if _, ok := f.entries[entry.ID]; !ok {
		f.order = append(f.order, entry.ID)
	}
	f.entries[entry.ID] = *entry
	return nil
}

func (f *fakeJournalStore) BulkUpsertEntries(_ context.Context, entries []models.JournalEntry) (*models.BulkResult, error) {
	result := &models.BulkResult{}
	for _, entry := range entries {
		if _, ok := f.entries[entry.ID]; ok {
			result.Matched++
			result.Modified++
		} else {
			result.Upserted++
			f.order = append(f.order, entry.ID)
		}
		f.entries[entry.ID] = entry
	}
	return result, nil
}

func (f *fakeJournalStore) GetAllEntries(_ context.Context) ([]models.JournalEntry, error) {
	entries := make([]models.JournalEntry, 0, len(f.order))
	for _, id := range f.order {
		entries = append(entries, f.entries[id])
	}
	return entries, nil
}

func newJournalRouter(store *fakeJournalStore) *mux.Router {
	handler := NewJournalEntryHandler(services.NewJournalEntryService(store))

	router := mux.NewRouter()
	router.HandleFunc("/journal-entries/upsert", handler.UpsertEntryHandler).Methods("POST")
	router.HandleFunc("/journal-entries/bulk", handler.BulkUpsertEntriesHandler).Methods("POST")
	router.HandleFunc("/journal-entries", handler.GetEntriesHandler).Methods("GET")
	return router
}

func TestUpsertJournalEntryHandler(t *testing.T) {
	router := newJournalRouter(newFakeJournalStore())

	body := `{"content":"Long day.","mood":"tired","timestamp":"2024-01-10T22:00:00Z"}`
	rec := doRequest(router, "POST", "/journal-entries/upsert", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, "Long day.", resp["content"])
	assert.Equal(t, "tired", resp["mood"])
	assert.Nil(t, resp["title"])
	assert.Equal(t, []interface{}{}, resp["tags"])
	assert.Equal(t, "2024-01-10T22:00:00Z", resp["timestamp"])
}

func TestUpsertJournalEntryHandlerRequiresContent(t *testing.T) {
	rec := doRequest(newJournalRouter(newFakeJournalStore()), "POST", "/journal-entries/upsert", `{"mood":"ok"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournalEntriesBulkAndList(t *testing.T) {
	router := newJournalRouter(newFakeJournalStore())

	body := `[
		{"id":"a","content":"one","timestamp":"2024-01-01T09:00:00Z"},
		{"id":"b","content":"two","tags":["work"],"timestamp":"2024-01-02T09:00:00Z"}
	]`
	rec := doRequest(router, "POST", "/journal-entries/bulk", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var counts models.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	assert.EqualValues(t, 2, counts.Upserted)

	rec = doRequest(router, "GET", "/journal-entries", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "a", listed[0]["id"])
	assert.Equal(t, "2024-01-01T09:00:00Z", listed[0]["timestamp"])
	assert.Equal(t, []interface{}{"work"}, listed[1]["tags"])
}
