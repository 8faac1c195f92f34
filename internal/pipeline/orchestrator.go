package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/place-of-your-own/artworks/internal/agents"
	"github.com/place-of-your-own/artworks/internal/llm"
	"github.com/place-of-your-own/artworks/internal/models"
	"github.com/place-of-your-own/artworks/internal/sourcing"
)

// ErrInvalidRequest marks caller errors (missing theme or issue date).
// Handlers map it to 400; anything else from Run is a 500.
var ErrInvalidRequest = errors.New("invalid pipeline request")

// eventPublisher publishes the final stats of a run. Optional; best-effort.
type eventPublisher interface {
	PublishPipelineResult(ctx context.Context, theme string, issueDate time.Time, stats *models.PipelineStats) error
}

// Orchestrator coordinates the monthly art pipeline: sourcing and generation
// fan out concurrently, results are normalized into one storage batch, and
// the run is summarized as PipelineStats.
type Orchestrator struct {
	sourcing   agents.SourcingAgent
	generation agents.GenerationAgent
	storage    agents.StorageAgent
	events     eventPublisher // nil disables event publishing

	callTimeout      time.Duration
	defaultSourced   int
	defaultGenerated int
}

// NewOrchestrator creates a pipeline orchestrator. events may be nil.
func NewOrchestrator(
	sourcingAgent agents.SourcingAgent,
	generationAgent agents.GenerationAgent,
	storageAgent agents.StorageAgent,
	events eventPublisher,
	callTimeout time.Duration,
	defaultSourced, defaultGenerated int,
) *Orchestrator {
	if callTimeout <= 0 {
		callTimeout = 45 * time.Second
	}
	if defaultSourced <= 0 {
		defaultSourced = 5
	}
	if defaultGenerated <= 0 {
		defaultGenerated = 5
	}
	return &Orchestrator{
		sourcing:         sourcingAgent,
		generation:       generationAgent,
		storage:          storageAgent,
		events:           events,
		callTimeout:      callTimeout,
		defaultSourced:   defaultSourced,
		defaultGenerated: defaultGenerated,
	}
}

// Run executes one pipeline run. Item-level failures (one bad generation
// call, one broken sourced URL, one failed upload) are tallied in the stats;
// only a structural failure returns an error. The accounting invariant holds
// on every non-error return: Stored+Failed == GeneratedProduced+SourcedFetched.
func (o *Orchestrator) Run(ctx context.Context, req *models.RunRequest) (stats *models.PipelineStats, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Pipeline run panicked")
			stats = nil
			err = fmt.Errorf("pipeline panic: %v", r)
		}
	}()

	issueDate, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	sourcedCount := req.SourcedCount
	if sourcedCount <= 0 {
		sourcedCount = o.defaultSourced
	}
	generatedCount := req.GeneratedCount
	if generatedCount <= 0 {
		generatedCount = o.defaultGenerated
	}

	log.Info().
		Str("theme", req.Theme).
		Str("issue_date", req.IssueDate).
		Int("sourced_count", sourcedCount).
		Int("generated_count", generatedCount).
		Msg("Starting art pipeline run")

	// Fan out sourcing and generation; join both before normalizing. Each
	// call is bounded by the per-call timeout, and a timeout surfaces as
	// that collaborator's empty result, not a run failure. A panic inside
	// a spawned goroutine is not visible to this function's recover, so
	// each closure recovers on its own and the panic is joined as a run
	// error after the wait.
	var (
		wg            sync.WaitGroup
		sourced       []sourcing.Image
		generated     []llm.GeneratedImage
		sourcingErr   error
		generationErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("Sourcing collaborator panicked")
				sourcingErr = fmt.Errorf("sourcing panic: %v", r)
			}
		}()
		callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
		defer cancel()
		sourced = o.sourcing.Source(callCtx, req.Theme, sourcedCount)
	}()
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("Generation collaborator panicked")
				generationErr = fmt.Errorf("generation panic: %v", r)
			}
		}()
		callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
		defer cancel()
		generated = o.generation.Generate(callCtx, req.Theme, generatedCount)
	}()
	wg.Wait()

	if sourcingErr != nil {
		return nil, sourcingErr
	}
	if generationErr != nil {
		return nil, generationErr
	}

	log.Info().
		Int("sourced", len(sourced)).
		Int("generated", len(generated)).
		Msg("Collaborators complete")

	// Normalize: generated payloads as-is, sourced references fetched.
	// A failed fetch drops that single item.
	toStore := make([]models.StorableImage, 0, len(generated)+len(sourced))

	for _, img := range generated {
		toStore = append(toStore, models.StorableImage{
			Data:      img.Data,
			Prompt:    img.Prompt,
			Source:    models.SourceGenerated,
			Theme:     req.Theme,
			IssueDate: issueDate,
		})
	}

	sourcedFetched := 0
	for _, ref := range sourced {
		data, fetchErr := o.fetchSourced(ctx, ref.RemoteURL)
		if fetchErr != nil {
			log.Warn().
				Err(fetchErr).
				Str("url", ref.RemoteURL).
				Msg("Failed to fetch sourced image, dropping")
			continue
		}
		sourcedFetched++
		toStore = append(toStore, models.StorableImage{
			Data:      data,
			Prompt:    ref.Caption,
			Source:    models.SourceSourced,
			Theme:     req.Theme,
			IssueDate: issueDate,
		})
	}

	stored, failed := o.storage.Store(ctx, toStore)

	stats = &models.PipelineStats{
		SourcedFetched:    sourcedFetched,
		GeneratedProduced: len(generated),
		Stored:            stored,
		Failed:            failed,
	}

	log.Info().
		Int("sourced_fetched", stats.SourcedFetched).
		Int("generated_produced", stats.GeneratedProduced).
		Int("stored", stats.Stored).
		Int("failed", stats.Failed).
		Msg("Pipeline run complete")

	o.publishResult(ctx, req.Theme, issueDate, stats)

	return stats, nil
}

func (o *Orchestrator) fetchSourced(ctx context.Context, remoteURL string) ([]byte, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()
	return o.sourcing.Fetch(callCtx, remoteURL)
}

// publishResult emits the run's stats to the event stream; failures are
// logged only, a run never fails on account of its completion event.
func (o *Orchestrator) publishResult(ctx context.Context, theme string, issueDate time.Time, stats *models.PipelineStats) {
	if o.events == nil {
		return
	}
	if err := o.events.PublishPipelineResult(ctx, theme, issueDate, stats); err != nil {
		log.Warn().Err(err).Str("theme", theme).Msg("Failed to publish pipeline event")
	}
}

func validateRequest(req *models.RunRequest) (time.Time, error) {
	if req == nil || req.Theme == "" {
		return time.Time{}, fmt.Errorf("%w: theme is required", ErrInvalidRequest)
	}
	if req.IssueDate == "" {
		return time.Time{}, fmt.Errorf("%w: issueDate is required", ErrInvalidRequest)
	}
	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: issueDate must be an ISO date: %v", ErrInvalidRequest, err)
	}
	return issueDate, nil
}
