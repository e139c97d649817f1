package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bekzat-s/journal-backend/internal/models"
	"github.com/bekzat-s/journal-backend/internal/repository"
	"github.com/bekzat-s/journal-backend/internal/services"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHabitStore struct {
	habits map[string]models.Habit
	order  []string
	writes int
}

func newFakeHabitStore() *fakeHabitStore {
	return &fakeHabitStore{habits: map[string]models.Habit{}}
}

func (f *fakeHabitStore) GetHabitByID(_ context.Context, id string) (*models.Habit, error) {
	habit, ok := f.habits[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &habit, nil
}

func (f *fakeHabitStore) UpsertHabit(_ context.Context, habit *models.Habit) error {
	if _, ok := f.habits[habit.ID]; !ok {
		f.order = append(f.order, habit.ID)
	}
	f.habits[habit.ID] = *habit
	f.writes++
	return nil
}

func (f *fakeHabitStore) UpdateCompletion(_ context.Context, id string, completed bool, completions map[string]bool, streak int) error {
	habit := f.habits[id]
	habit.Completed = completed
	habit.CompletionsByDate = completions
	habit.Streak = streak
	f.habits[id] = habit
	f.writes++
	return nil
}

func (f *fakeHabitStore) BulkUpsertHabits(_ context.Context, habits []models.Habit) (*models.BulkResult, error) {
	result := &models.BulkResult{}
	for _, habit := range habits {
		if _, ok := f.habits[habit.ID]; ok {
			result.Matched++
			result.Modified++
		} else {
			result.Upserted++
			f.order = append(f.order, habit.ID)
		}
		f.habits[habit.ID] = habit
		f.writes++
	}
	return result, nil
}

func (f *fakeHabitStore) GetAllHabits(_ context.Context) ([]models.Habit, error) {
	habits := make([]models.Habit, 0, len(f.order))
	for _, id := range f.order {
		habits = append(habits, f.habits[id])
	}
	return habits, nil
}

func newHabitRouter(store *fakeHabitStore) *mux.Router {
	handler := NewHabitHandler(services.NewHabitService(store))

	router := mux.NewRouter()
	router.HandleFunc("/habits/upsert", handler.UpsertHabitHandler).Methods("POST")
	router.HandleFunc("/habits/bulk", handler.BulkUpsertHabitsHandler).Methods("POST")
	router.HandleFunc("/habits/complete", handler.CompleteHabitHandler).Methods("POST")
	router.HandleFunc("/habits", handler.GetHabitsHandler).Methods("GET")
	return router
}

func doRequest(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpsertHabitHandler(t *testing.T) {
	router := newHabitRouter(newFakeHabitStore())

	rec := doRequest(router, "POST", "/habits/upsert", `{"name":"Read","createdAt":"2024-01-10T08:30:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, "Read", resp["name"])
	assert.Equal(t, "2024-01-10T08:30:00Z", resp["createdAt"])
	assert.Equal(t, map[string]interface{}{}, resp["completionsByDate"])
}

func TestUpsertHabitHandlerRejectsMissingName(t *testing.T) {
	store := newFakeHabitStore()
	router := newHabitRouter(store)

	rec := doRequest(router, "POST", "/habits/upsert", `{"streak":3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.writes)
}

func TestUpsertHabitHandlerRejectsBadJSON(t *testing.T) {
	rec := doRequest(newHabitRouter(newFakeHabitStore()), "POST", "/habits/upsert", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteHabitHandler(t *testing.T) {
	store := newFakeHabitStore()
	store.habits["habit-1"] = models.Habit{ID: "habit-1", Name: "Read"}
	store.order = append(store.order, "habit-1")
	router := newHabitRouter(store)

	rec := doRequest(router, "POST", "/habits/complete", `{"id":"habit-1","date":"2024-01-10"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID        string `json:"id"`
		Date      string `json:"date"`
		Streak    int    `json:"streak"`
		Completed bool   `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "habit-1", resp.ID)
	assert.Equal(t, "2024-01-10", resp.Date)
	assert.Equal(t, 1, resp.Streak)
	assert.True(t, resp.Completed)
}

func TestCompleteHabitHandlerNotFound(t *testing.T) {
	store := newFakeHabitStore()
	router := newHabitRouter(store)

	rec := doRequest(router, "POST", "/habits/complete", `{"id":"missing"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, store.writes)
}

func TestCompleteHabitHandlerRequiresID(t *testing.T) {
	rec := doRequest(newHabitRouter(newFakeHabitStore()), "POST", "/habits/complete", `{"date":"2024-01-10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulkUpsertHabitsHandler(t *testing.T) {
	router := newHabitRouter(newFakeHabitStore())

	rec := doRequest(router, "POST", "/habits/bulk", `[]`)
	require.Equal(t, http.StatusOK, rec.Code)

	var counts models.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	assert.Equal(t, models.BulkResult{}, counts)

	body := `[
		{"id":"a","name":"Read","completed":false,"streak":0,"createdAt":"2024-01-01T00:00:00Z","completionsByDate":{}},
		{"id":"b","name":"Run","completed":true,"streak":2,"createdAt":"2024-01-02T00:00:00Z","completionsByDate":{"2024-01-02":true}}
	]`
	rec = doRequest(router, "POST", "/habits/bulk", body)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	assert.EqualValues(t, 2, counts.Upserted)
	assert.EqualValues(t, 0, counts.Matched)
}

func TestGetHabitsHandler(t *testing.T) {
	store := newFakeHabitStore()
	// Stored times may carry a non-UTC zone depending on how the driver
	// decodes them; output must still be UTC with a Z suffix.
	loc := time.FixedZone("UTC+5", 5*3600)
	store.habits["habit-1"] = models.Habit{
		ID:        "habit-1",
		Name:      "Read",
		CreatedAt: time.Date(2024, 1, 10, 13, 30, 0, 0, loc),
	}
	store.order = append(store.order, "habit-1")
	router := newHabitRouter(store)

	rec := doRequest(router, "GET", "/habits", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)

	assert.Equal(t, "2024-01-10T08:30:00Z", resp[0]["createdAt"])
	assert.Equal(t, map[string]interface{}{}, resp[0]["completionsByDate"])
}

func TestGetHabitsHandlerEmptyStore(t *testing.T) {
	rec := doRequest(newHabitRouter(newFakeHabitStore()), "GET", "/habits", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
