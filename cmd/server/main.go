package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bekzat-s/journal-backend/internal/config"
	"github.com/bekzat-s/journal-backend/internal/database"
	"github.com/bekzat-s/journal-backend/internal/handlers"
	"github.com/bekzat-s/journal-backend/internal/jobs"
	"github.com/bekzat-s/journal-backend/internal/repository"
	cronjobs "github.com/bekzat-s/journal-backend/internal/scheduler"
	"github.com/bekzat-s/journal-backend/internal/services"
	"github.com/bekzat-s/journal-backend/pkg/logger"
	"github.com/bekzat-s/journal-backend/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	habitRepo := repository.NewHabitRepository(db)
	journalRepo := repository.NewJournalEntryRepository(db)
	gratitudeRepo := repository.NewGratitudeEntryRepository(db)
	highlightRepo := repository.NewHighlightEntryRepository(db)

	// --- Services ---
	habitService := services.NewHabitService(habitRepo)
	journalService := services.NewJournalEntryService(journalRepo)
	gratitudeService := services.NewGratitudeEntryService(gratitudeRepo)
	highlightService := services.NewHighlightEntryService(highlightRepo)

	// --- Handlers ---
	habitHandler := handlers.NewHabitHandler(habitService)
	journalHandler := handlers.NewJournalEntryHandler(journalService)
	gratitudeHandler := handlers.NewGratitudeEntryHandler(gratitudeService)
	highlightHandler := handlers.NewHighlightEntryHandler(highlightService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	router.HandleFunc("/health", handlers.HealthHandler).Methods("GET")

	// Habit routes
	router.HandleFunc("/habits/upsert", habitHandler.UpsertHabitHandler).Methods("POST")
	router.HandleFunc("/habits/bulk", habitHandler.BulkUpsertHabitsHandler).Methods("POST")
	router.HandleFunc("/habits/complete", habitHandler.CompleteHabitHandler).Methods("POST")
	router.HandleFunc("/habits", habitHandler.GetHabitsHandler).Methods("GET")

	// Journal entry routes
	router.HandleFunc("/journal-entries/upsert", journalHandler.UpsertEntryHandler).Methods("POST")
	router.HandleFunc("/journal-entries/bulk", journalHandler.BulkUpsertEntriesHandler).Methods("POST")
	router.HandleFunc("/journal-entries", journalHandler.GetEntriesHandler).Methods("GET")

	// Gratitude entry routes (bulk sync only, no single upsert)
	router.HandleFunc("/gratitude-entries/bulk", gratitudeHandler.BulkUpsertEntriesHandler).Methods("POST")
	router.HandleFunc("/gratitude-entries", gratitudeHandler.GetEntriesHandler).Methods("GET")

	// Highlight entry routes
	router.HandleFunc("/highlight-entries/upsert", highlightHandler.UpsertEntryHandler).Methods("POST")
	router.HandleFunc("/highlight-entries/bulk", highlightHandler.BulkUpsertEntriesHandler).Methods("POST")
	router.HandleFunc("/highlight-entries", highlightHandler.GetEntriesHandler).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Roll the completed flags over at UTC midnight
	rollover := jobs.NewCompletionRollover(habitRepo)
	cronjobs.StartRolloverCronJob(rollover)

	// The mobile client talks to the API directly, so CORS stays permissive
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
