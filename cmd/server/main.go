package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"ehr-dashboard-api/internal/agent"
	"ehr-dashboard-api/internal/clinicalai"
	"ehr-dashboard-api/internal/clinicalnotes"
	"ehr-dashboard-api/internal/config"
	documentation "ehr-dashboard-api/internal/documentation"
	"ehr-dashboard-api/internal/messaging"
	"ehr-dashboard-api/internal/platform/auth"
	"ehr-dashboard-api/internal/platform/datastore"
	"ehr-dashboard-api/internal/platform/metrics"
	"ehr-dashboard-api/internal/platform/middleware"
	"ehr-dashboard-api/internal/tasks"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.IsDev() {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// 1. Clients
	aiClient := agent.NewOpenAIClient(agent.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.AIModel,
		Timeout: cfg.AITimeout,
	})

	store := datastore.NewClient(cfg.DatastoreURL, cfg.DatastoreServiceKey)

	// 2. Handlers
	clinicalAIHandler := clinicalai.NewHandler(aiClient, log)
	clinicalNotesHandler := clinicalnotes.NewHandler(aiClient, log)
	documentationHandler := documentation.NewHandler(aiClient, log)
	messagingHandler := messaging.NewHandler(store, log)
	tasksHandler := tasks.NewHandler(store, log)

	// 3. Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(metrics.Middleware)
	r.Use(chimw.Recoverer)
	r.Use(corsMiddleware(cfg.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
			clinicalai.RegisterRoutes(r, clinicalAIHandler)
			clinicalnotes.RegisterRoutes(r, clinicalNotesHandler)
			documentation.RegisterRoutes(r, documentationHandler)
		})
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(cfg.DatastoreJWTSecret))
			messaging.RegisterRoutes(r, messagingHandler)
			tasks.RegisterRoutes(r, tasksHandler)
		})
	})

	r.Handle("/metrics", metrics.Handler())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowed[origin] || allowed["*"] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
