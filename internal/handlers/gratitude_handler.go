package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// GratitudeEntryHandler exposes bulk sync and listing only; there is no
// single-entry upsert route for gratitude entries.
type GratitudeEntryHandler struct {
	Service *services.GratitudeEntryService
}

func NewGratitudeEntryHandler(service *services.GratitudeEntryService) *GratitudeEntryHandler {
	return &GratitudeEntryHandler{Service: service}
}

type gratitudeEntryRequest struct {
	ID        string   `json:"id"`
	Items     []string `json:"items"`
	Timestamp string   `json:"timestamp"`
}

type gratitudeEntryResponse struct {
	ID        string   `json:"id"`
	Items     []string `json:"items"`
	Timestamp string   `json:"timestamp"`
}

func renderGratitudeEntry(e *models.GratitudeEntry) gratitudeEntryResponse {
	items := e.Items
	if items == nil {
		items = []string{}
	}

	return gratitudeEntryResponse{
		ID:        e.ID,
		Items:     items,
		Timestamp: isoUTC(e.Timestamp),
	}
}

// BulkUpsertEntriesHandler handles POST /gratitude-entries/bulk
func (h *GratitudeEntryHandler) BulkUpsertEntriesHandler(w http.ResponseWriter, r *http.Request) {
	var reqs []gratitudeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	inputs := make([]services.GratitudeEntryInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, services.GratitudeEntryInput{
			ID:        req.ID,
			Items:     req.Items,
			Timestamp: req.Timestamp,
		})
	}

	result, err := h.Service.BulkUpsertEntries(r.Context(), inputs)
	if err != nil {
		logrus.WithError(err).Error("Failed to bulk upsert gratitude entries")
		http.Error(w, "Failed to bulk upsert gratitude entries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetEntriesHandler handles GET /gratitude-entries
func (h *GratitudeEntryHandler) GetEntriesHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.GetAllEntries(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch gratitude entries")
		http.Error(w, "Failed to fetch gratitude entries", http.StatusInternalServerError)
		return
	}

	resp := make([]gratitudeEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, renderGratitudeEntry(&entries[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}
