package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/place-of-your-own/artworks/internal/agents"
	"github.com/place-of-your-own/artworks/internal/auth"
	"github.com/place-of-your-own/artworks/internal/coach"
	"github.com/place-of-your-own/artworks/internal/config"
	"github.com/place-of-your-own/artworks/internal/database"
	"github.com/place-of-your-own/artworks/internal/events"
	"github.com/place-of-your-own/artworks/internal/handlers"
	"github.com/place-of-your-own/artworks/internal/llm"
	"github.com/place-of-your-own/artworks/internal/pipeline"
	"github.com/place-of-your-own/artworks/internal/sourcing"
	"github.com/place-of-your-own/artworks/internal/storage"
	"github.com/place-of-your-own/artworks/migrations"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Msg("Starting Artworks API")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := migrations.Run(db.SQLDB()); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	storageClient, err := storage.NewClient(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3Bucket,
		cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3UseSSL, cfg.S3PublicURL,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage client")
	}

	artworkRepo := database.NewArtworkRepository(db)
	llmClient := llm.NewClient(cfg.GeminiAPIKey, cfg.GeminiModelImage, cfg.GeminiAPIEndpoint)
	sourcingClient := sourcing.NewClient(cfg.PexelsAPIKey, cfg.ExternalCallTimeout)

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicPipeline)
		defer producer.Close()
	}

	orchestrator := newOrchestrator(cfg, sourcingClient, llmClient, storageClient, artworkRepo, producer)

	coachResponder := coach.NewResponder(coachModel(cfg))

	h := handlers.NewHandler(
		orchestrator,
		artworkRepo,
		storageClient,
		coachResponder,
		handlers.Capabilities{
			GeminiConfigured:   cfg.GeminiAPIKey != "",
			DatabaseConfigured: cfg.DatabaseURL != "",
			StorageConfigured:  cfg.S3AccessKey != "" && cfg.S3SecretKey != "",
			PexelsConfigured:   cfg.PexelsAPIKey != "",
		},
	)

	authService := auth.NewService(cfg.AdminAPIKeyHash)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Health(); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	api := r.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/pipeline", h.PipelineInfo).Methods("GET")
	api.HandleFunc("/artwork", h.ListArtwork).Methods("GET")
	api.HandleFunc("/artwork/image", h.DownloadArtwork).Methods("GET")
	api.HandleFunc("/coach", h.Coach).Methods("POST")
	api.HandleFunc("/coach/ws", h.CoachWS).Methods("GET")
	api.HandleFunc("/realtors", h.ListRealtors).Methods("GET")

	admin := r.PathPrefix("/v1").Subrouter()
	admin.Use(authService.Middleware)
	admin.HandleFunc("/pipeline", h.RunPipeline).Methods("POST")
	admin.HandleFunc("/artwork", h.UpdateArtwork).Methods("PATCH")
	admin.HandleFunc("/artwork", h.DeleteArtwork).Methods("DELETE")

	srv := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Pipeline runs execute within the request; give writes room for
		// the two collaborator calls plus storage.
		WriteTimeout: 3*cfg.ExternalCallTimeout + 30*time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down API...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("API exited")
}

// newOrchestrator wires the three agents. The producer is optional; a typed
// nil must not reach the orchestrator's interface field.
func newOrchestrator(
	cfg *config.Config,
	sourcingClient *sourcing.Client,
	llmClient *llm.Client,
	storageClient *storage.Client,
	artworkRepo *database.ArtworkRepository,
	producer *events.Producer,
) *pipeline.Orchestrator {
	sourcingAgent := agents.NewSourcingAgent(sourcingClient)
	generationAgent := agents.NewGenerationAgent(llmClient)
	storageAgent := agents.NewStorageAgent(storageClient, artworkRepo)

	if producer == nil {
		return pipeline.NewOrchestrator(
			sourcingAgent, generationAgent, storageAgent, nil,
			cfg.ExternalCallTimeout, cfg.DefaultSourcedCount, cfg.DefaultGeneratedCount,
		)
	}
	return pipeline.NewOrchestrator(
		sourcingAgent, generationAgent, storageAgent, producer,
		cfg.ExternalCallTimeout, cfg.DefaultSourcedCount, cfg.DefaultGeneratedCount,
	)
}

// coachModel initializes the optional Gemini model for the coach's general
// branch. Returns nil (rule-based only) when disabled or initialization fails.
func coachModel(cfg *config.Config) llms.Model {
	if !cfg.CoachLLMEnabled || cfg.GeminiAPIKey == "" {
		return nil
	}
	model, err := googleai.New(context.Background(),
		googleai.WithAPIKey(cfg.GeminiAPIKey),
		googleai.WithDefaultModel(cfg.GeminiModelCoach),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize coach model, using rule-based replies only")
		return nil
	}
	return model
}
