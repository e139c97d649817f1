package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/internal/services"
	"github.com/sirupsen/logrus"
)

type HighlightEntryHandler struct {
	Service *services.HighlightEntryService
}

func NewHighlightEntryHandler(service *services.HighlightEntryService) *HighlightEntryHandler {
	return &HighlightEntryHandler{Service: service}
}

type highlightEntryRequest struct {
	ID        string  `json:"id"`
	Highlight string  `json:"highlight"`
	Reason    *string `json:"reason"`
	Mood      *string `json:"mood"`
	Timestamp string  `json:"timestamp"`
}

type highlightEntryResponse struct {
	ID        string  `json:"id"`
	Highlight string  `json:"highlight"`
	Reason    *string `json:"reason"`
	Mood      *string `json:"mood"`
	Timestamp string  `json:"timestamp"`
}

func (r highlightEntryRequest) toInput() services.HighlightEntryInput {
	return services.HighlightEntryInput{
		ID:        r.ID,
		Highlight: r.Highlight,
		Reason:    r.Reason,
		Mood:      r.Mood,
		Timestamp: r.Timestamp,
	}
}

func renderHighlightEntry(e *models.HighlightEntry) highlightEntryResponse {
	return highlightEntryResponse{
		ID:        e.ID,
		Highlight: e.Highlight,
		Reason:    e.Reason,
		Mood:      e.Mood,
		Timestamp: isoUTC(e.Timestamp),
	}
}

// UpsertEntryHandler handles POST /highlight-entries/upsert
func (h *HighlightEntryHandler) UpsertEntryHandler(w http.ResponseWriter, r *http.Request) {
	var req highlightEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Highlight == "" {
		http.Error(w, "Highlight is required", http.StatusBadRequest)
		return
	}

	entry, err := h.Service.UpsertEntry(r.Context(), req.toInput())
	if err != nil {
		logrus.WithError(err).Error("Failed to upsert highlight entry")
		http.Error(w, "Failed to upsert highlight entry", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, renderHighlightEntry(entry))
}

// BulkUpsertEntriesHandler handles POST /highlight-entries/bulk
func (h *HighlightEntryHandler) BulkUpsertEntriesHandler(w http.ResponseWriter, r *http.Request) {
	var reqs []highlightEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	inputs := make([]services.HighlightEntryInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, req.toInput())
	}

	result, err := h.Service.BulkUpsertEntries(r.Context(), inputs)
	if err != nil {
		logrus.WithError(err).Error("Failed to bulk upsert highlight entries")
		http.Error(w, "Failed to bulk upsert highlight entries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetEntriesHandler handles GET /highlight-entries
func (h *HighlightEntryHandler) GetEntriesHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.GetAllEntries(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch highlight entries")
		http.Error(w, "Failed to fetch highlight entries", http.StatusInternalServerError)
		return
	}

	resp := make([]highlightEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, renderHighlightEntry(&entries[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}
