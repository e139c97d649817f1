package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/internal/services"
	"github.com/sirupsen/logrus"
)

type JournalEntryHandler struct {
	Service *services.JournalEntryService
}

func NewJournalEntryHandler(service *services.JournalEntryService) *JournalEntryHandler {
	return &JournalEntryHandler{Service: service}
}

type journalEntryRequest struct {
	ID        string   `json:"id"`
	Title     *string  `json:"title"`
	Content   string   `json:"content"`
	Mood      *string  `json:"mood"`
	Tags      []string `json:"tags"`
	Timestamp string   `json:"timestamp"`
}

type journalEntryResponse struct {
	ID        string   `json:"id"`
	Title     *string  `json:"title"`
	Content   string   `json:"content"`
	Mood      *string  `json:"mood"`
	Tags      []string `json:"tags"`
	Timestamp string   `json:"timestamp"`
}

func (r journalEntryRequest) toInput() services.JournalEntryInput {
	return services.JournalEntryInput{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Mood:      r.Mood,
		Tags:      r.Tags,
		Timestamp: r.Timestamp,
	}
}

func renderJournalEntry(e *models.JournalEntry) journalEntryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	return journalEntryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		Mood:      e.Mood,
		Tags:      tags,
		Timestamp: isoUTC(e.Timestamp),
	}
}

// UpsertEntryHandler handles POST /journal-entries/upsert
func (h *JournalEntryHandler) UpsertEntryHandler(w http.ResponseWriter, r *http.Request) {
	var req journalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Content == "" {
		http.Error(w, "Journal entry content is required", http.StatusBadRequest)
		return
	}

	entry, err := h.Service.UpsertEntry(r.Context(), req.toInput())
	if err != nil {
		logrus.WithError(err).Error("Failed to upsert journal entry")
		http.Error(w, "Failed to upsert journal entry", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, renderJournalEntry(entry))
}

// BulkUpsertEntriesHandler handles POST /journal-entries/bulk
func (h *JournalEntryHandler) BulkUpsertEntriesHandler(w http.ResponseWriter, r *http.Request) {
	var reqs []journalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	inputs := make([]services.JournalEntryInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, req.toInput())
	}

	result, err := h.Service.BulkUpsertEntries(r.Context(), inputs)
	if err != nil {
		logrus.WithError(err).Error("Failed to bulk upsert journal entries")
		http.Error(w, "Failed to bulk upsert journal entries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetEntriesHandler handles GET /journal-entries
func (h *JournalEntryHandler) GetEntriesHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.GetAllEntries(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch journal entries")
		http.Error(w, "Failed to fetch journal entries", http.StatusInternalServerError)
		return
	}

	resp := make([]journalEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, renderJournalEntry(&entries[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}
