package main

import (
	"context"
	"log"
	"net/http"

	"lifeupdate/api/internal/auth"
	"lifeupdate/api/internal/config"
	"lifeupdate/api/internal/db"
	"lifeupdate/api/internal/handlers"
	"lifeupdate/api/internal/llm"
	"lifeupdate/api/internal/repositories"
	"lifeupdate/api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Database connection + schema
	ctx := context.Background()
	database, err := db.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	if err := database.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(database)
	contactRepo := repositories.NewContactRepository(database)
	interactionRepo := repositories.NewInteractionRepository(database)
	journalRepo := repositories.NewJournalRepository(database)

	// Initialize services
	importer := services.NewImportService(contactRepo)
	summaries := services.NewSummaryService(journalRepo, llm.NewGemini(cfg.GeminiAPIKey))

	// Initialize handlers
	sessions := auth.NewSessionStore(0)
	authHandler := handlers.NewAuthHandler(userRepo, sessions)

	mux := handlers.NewMux(handlers.Handlers{
		Auth:         authHandler,
		Contacts:     handlers.NewContactsHandler(contactRepo, importer),
		Interactions: handlers.NewInteractionsHandler(interactionRepo),
		Journal:      handlers.NewJournalHandler(journalRepo),
		Summary:      handlers.NewSummaryHandler(summaries),
	})

	// CORS middleware for the frontend
	handler := corsMiddleware(mux)

	log.Println("Go API listening on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}

// corsMiddleware adds CORS headers; credentials are allowed because auth
// rides on the session cookie.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
