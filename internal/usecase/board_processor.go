package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/internal/domain/repository"
	"departure-board-service/pkg/logger"
	"departure-board-service/pkg/metrics"
	"departure-board-service/pkg/utils"

	"github.com/google/uuid"
)

// BoardProcessor runs one fetch, aggregate and publish cycle
type BoardProcessor struct {
	feedRepo    repository.FeedRepository
	builder     *BoardBuilder
	router      SinkRouter
	metrics     *metrics.Metrics
	logger      logger.Logger
	airportCode string
	language    entity.Language
	location    *time.Location
	now         func() time.Time
}

// NewBoardProcessor creates a new board processor
func NewBoardProcessor(
	feedRepo repository.FeedRepository,
	builder *BoardBuilder,
	router SinkRouter,
	metrics *metrics.Metrics,
	logger logger.Logger,
	airportCode string,
	opts BoardOptions,
) *BoardProcessor {
	location := opts.Location
	if location == nil {
		location = time.UTC
	}
	return &BoardProcessor{
		feedRepo:    feedRepo,
		builder:     builder,
		router:      router,
		metrics:     metrics,
		logger:      logger,
		airportCode: airportCode,
		language:    opts.Language,
		location:    location,
		now:         time.Now,
	}
}

// Run fetches the current departures, builds the board and publishes it.
// When the fetch fails an error board is published instead so the page
// never keeps showing stale rows silently.
func (bp *BoardProcessor) Run(ctx context.Context) (*entity.Board, error) {
	start := bp.now()
	runID := uuid.NewString()
	log := bp.logger.With("run_id", runID, "airport", bp.airportCode)
	defer func() {
		bp.metrics.ProcessingTime.Observe(bp.now().Sub(start).Seconds())
	}()

	log.Info("Starting board run")

	board := &entity.Board{
		RunID:       runID,
		AirportCode: bp.airportCode,
		Language:    bp.language,
		GeneratedAt: start.UTC(),
		UpdatedAt:   utils.FormatUpdated(start, bp.location),
	}

	records, err := bp.feedRepo.FetchDepartures(ctx, bp.airportCode)
	if err != nil {
		log.Error("Failed to fetch departures", "error", err)
		bp.metrics.ErrorsCount.WithLabelValues("fetch").Inc()
		bp.metrics.BoardRuns.WithLabelValues("fetch_failed").Inc()

		board.Error = &entity.BoardError{
			Title:  "Departure data unavailable",
			Detail: publicFetchDetail(err),
		}
		if pubErr := bp.router.Publish(ctx, board); pubErr != nil {
			log.Error("Failed to publish error board", "error", pubErr)
		}
		return board, fmt.Errorf("fetch departures: %w", err)
	}

	bp.metrics.RecordsFetched.Add(float64(len(records)))
	log.Info("Fetched departures", "records", len(records))

	rows, stats := bp.builder.Build(records)
	for reason, n := range stats.Skipped {
		bp.metrics.RecordsSkipped.WithLabelValues(reason).Add(float64(n))
	}
	board.Rows = rows

	if err := bp.router.Publish(ctx, board); err != nil {
		log.Error("Failed to publish board", "error", err)
		bp.metrics.ErrorsCount.WithLabelValues("publish").Inc()
		bp.metrics.BoardRuns.WithLabelValues("publish_failed").Inc()
		return board, fmt.Errorf("publish board: %w", err)
	}

	bp.metrics.DeparturesPublished.Set(float64(len(rows)))
	bp.metrics.BoardRuns.WithLabelValues("success").Inc()
	log.Info("Board published",
		"departures", stats.Departures,
		"records", stats.Records,
		"skipped", stats.SkippedTotal())

	return board, nil
}

// publicFetchDetail is the detail shown on an error board. The raw error
// only goes to the log; upstream text is not safe to publish.
func publicFetchDetail(err error) string {
	var status interface{ StatusSummary() string }
	if errors.As(err, &status) {
		return status.StatusSummary()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Departure feed timed out"
	}
	return "Departure feed could not be reached"
}
