package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/internal/repository"
	"github.com/bekzat-s/journal-backend/internal/services"
	"github.com/sirupsen/logrus"
)

type HabitHandler struct {
	Service *services.HabitService
}

func NewHabitHandler(service *services.HabitService) *HabitHandler {
	return &HabitHandler{Service: service}
}

// habitRequest is the wire shape of a habit document. Every field except
// name is optional on the upsert path; bulk items carry all fields.
type habitRequest struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Completed         bool            `json:"completed"`
	Streak            int             `json:"streak"`
	CreatedAt         string          `json:"createdAt"`
	CompletionsByDate map[string]bool `json:"completionsByDate"`
	Notify            bool            `json:"notify"`
	NotifyTime        *string         `json:"notifyTime"`
	NotificationID    *string         `json:"notificationId"`
}

type habitResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Completed         bool            `json:"completed"`
	Streak            int             `json:"streak"`
	CreatedAt         string          `json:"createdAt"`
	CompletionsByDate map[string]bool `json:"completionsByDate"`
	Notify            bool            `json:"notify"`
	NotifyTime        *string         `json:"notifyTime"`
	NotificationID    *string         `json:"notificationId"`
}

type habitCompleteRequest struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

func (r habitRequest) toInput() services.HabitInput {
	return services.HabitInput{
		ID:                r.ID,
		Name:              r.Name,
		Completed:         r.Completed,
		Streak:            r.Streak,
		CreatedAt:         r.CreatedAt,
		CompletionsByDate: r.CompletionsByDate,
		Notify:            r.Notify,
		NotifyTime:        r.NotifyTime,
		NotificationID:    r.NotificationID,
	}
}

func renderHabit(h *models.Habit) habitResponse {
	completions := h.CompletionsByDate
	if completions == nil {
		completions = map[string]bool{}
	}

	return habitResponse{
		ID:                h.ID,
		Name:              h.Name,
		Completed:         h.Completed,
		Streak:            h.Streak,
		CreatedAt:         isoUTC(h.CreatedAt),
		CompletionsByDate: completions,
		Notify:            h.Notify,
		NotifyTime:        h.NotifyTime,
		NotificationID:    h.NotificationID,
	}
}

// UpsertHabitHandler handles POST /habits/upsert
func (h *HabitHandler) UpsertHabitHandler(w http.ResponseWriter, r *http.Request) {
	var req habitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Name == "" {
		http.Error(w, "Habit name is required", http.StatusBadRequest)
		return
	}

	habit, err := h.Service.UpsertHabit(r.Context(), req.toInput())
	if err != nil {
		logrus.WithError(err).Error("Failed to upsert habit")
		http.Error(w, "Failed to upsert habit", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, renderHabit(habit))
}

// CompleteHabitHandler handles POST /habits/complete
func (h *HabitHandler) CompleteHabitHandler(w http.ResponseWriter, r *http.Request) {
	var req habitCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.ID == "" {
		http.Error(w, "Habit id is required", http.StatusBadRequest)
		return
	}

	result, err := h.Service.CompleteHabit(r.Context(), req.ID, req.Date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Habit not found", http.StatusNotFound)
			return
		}
		logrus.WithError(err).WithField("habit_id", req.ID).Error("Failed to complete habit")
		http.Error(w, "Failed to complete habit", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// BulkUpsertHabitsHandler handles POST /habits/bulk
func (h *HabitHandler) BulkUpsertHabitsHandler(w http.ResponseWriter, r *http.Request) {
	var reqs []habitRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	inputs := make([]services.HabitInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, req.toInput())
	}

	result, err := h.Service.BulkUpsertHabits(r.Context(), inputs)
	if err != nil {
		logrus.WithError(err).Error("Failed to bulk upsert habits")
		http.Error(w, "Failed to bulk upsert habits", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetHabitsHandler handles GET /habits
func (h *HabitHandler) GetHabitsHandler(w http.ResponseWriter, r *http.Request) {
	habits, err := h.Service.GetAllHabits(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch habits")
		http.Error(w, "Failed to fetch habits", http.StatusInternalServerError)
		return
	}

	resp := make([]habitResponse, 0, len(habits))
	for i := range habits {
		resp = append(resp, renderHabit(&habits[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}
