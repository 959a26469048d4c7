package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"backend-go/internal/aggregator"
	"backend-go/internal/api"
	"backend-go/internal/config"
	"backend-go/internal/construction"
	"backend-go/internal/dictionary"
	"backend-go/internal/fusion"
	"backend-go/internal/hub"
	"backend-go/internal/journal"
	"backend-go/internal/worker"
)

const eventBatchSize = 10
const processingTimeout = 2 * time.Second
const aggregateSaveInterval = 30 * time.Second

func main() {
	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dict, err := dictionary.Load(cfg.WordsPath, cfg.FrequenciesPath)
	if err != nil {
		log.Fatalf("dictionary: %v", err)
	}
	log.Printf("📚 Dictionary loaded: %d words (frequency data: %v)", dict.Size(), dict.HasFrequencyData())

	fusionTracker := fusion.NewTracker(dict)

	journalTracker, err := journal.NewTracker(dict, cfg.SessionID, cfg.EventLogPath, eventBatchSize)
	if err != nil {
		log.Fatalf("journal: %v", err)
	}
	defer journalTracker.Close()

	aggregate := aggregator.New(cfg.AggregatePath)
	aggregate.Load()

	// The 30s tick both rewrites the aggregate file and flushes any
	// journal events still sitting below the batch threshold, so a
	// slow-moving game still reaches disk between snapshots.
	stopPeriodicSave := make(chan struct{})
	go func() {
		ticker := time.NewTicker(aggregateSaveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := journalTracker.Flush(); err != nil {
					log.Printf("⚠️  journal flush: %v", err)
				}
				if err := aggregate.Save(); err != nil {
					log.Printf("⚠️  aggregate save: %v", err)
				}
			case <-stopPeriodicSave:
				return
			}
		}
	}()

	scoring := construction.ScoringConfig{
		FreqFloor:    cfg.FreqFloor,
		WeightFreq:   cfg.WeightFreq,
		WeightLength: cfg.WeightLength,
		Strategy:     cfg.Strategy,
	}
	engine := construction.NewEngine(dict, scoring)

	observers := hub.New()
	queue := worker.New(processingTimeout)

	handler := api.NewHandler(dict, fusionTracker, engine, journalTracker, aggregate, observers, queue, cfg.DefinitionsPath, cfg.EventLogPath)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:3001", "http://localhost:3002", "http://127.0.0.1:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Classroom tile-word backend is running"))
	})

	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Starting Go Backend on http://localhost:%s", cfg.Port)
		log.Printf("📡 CORS enabled for: http://localhost:3000")
		log.Printf("🔌 Observer channel: ws://localhost:%s/receive-data", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("🛑 Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  shutdown: %v", err)
	}

	close(stopPeriodicSave)
	if err := journalTracker.Flush(); err != nil {
		log.Printf("⚠️  journal flush: %v", err)
	}
	if err := aggregate.Save(); err != nil {
		log.Printf("⚠️  aggregate save: %v", err)
	}
	log.Printf("✅ Server stopped")
}
