package usecase

import (
	"time"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/pkg/logger"
	"departure-board-service/pkg/utils"
)

// BoardOptions controls how departures are displayed
type BoardOptions struct {
	Location       *time.Location
	Language       entity.Language
	DelayThreshold time.Duration
}

// BuildStats summarizes one aggregation pass
type BuildStats struct {
	Records    int            `json:"records"`
	Accepted   int            `json:"accepted"`
	Skipped    map[string]int `json:"skipped,omitempty"`
	Departures int            `json:"departures"`
}

// SkippedTotal returns the number of rejected records
func (s BuildStats) SkippedTotal() int {
	total := 0
	for _, n := range s.Skipped {
		total += n
	}
	return total
}

// BoardBuilder turns a batch of raw feed records into ordered board rows
type BoardBuilder struct {
	parser     *utils.FeedParser
	localizer  *DestinationLocalizer
	classifier *StatusClassifier
	location   *time.Location
	logger     logger.Logger
}

// NewBoardBuilder creates a new board builder
func NewBoardBuilder(table *entity.LocalizationTable, opts BoardOptions, logger logger.Logger) *BoardBuilder {
	location := opts.Location
	if location == nil {
		location = time.UTC
	}
	return &BoardBuilder{
		parser:     utils.NewFeedParser(),
		localizer:  NewDestinationLocalizer(table),
		classifier: NewStatusClassifier(RemarkLabelsFor(opts.Language), opts.DelayThreshold, location),
		location:   location,
		logger:     logger,
	}
}

// Build runs one pass over records. Malformed records are logged, counted
// and skipped; they never abort the pass.
func (b *BoardBuilder) Build(records []entity.FeedRecord) ([]entity.BoardRow, BuildStats) {
	stats := BuildStats{Records: len(records)}
	aggregator := NewFlightAggregator(b.localizer, b.classifier, b.location)

	for i, rec := range records {
		obs, err := b.parser.ParseObservation(rec)
		if err != nil {
			reason := utils.SkipReason(err)
			if stats.Skipped == nil {
				stats.Skipped = make(map[string]int)
			}
			stats.Skipped[reason]++
			b.logger.Warn("Skipping malformed feed record", "index", i, "reason", reason, "error", err)
			continue
		}

		stats.Accepted++
		aggregator.Add(obs)
	}

	rows := PresentFlights(aggregator.Finalize())
	stats.Departures = len(rows)

	b.logger.Debug("Aggregated departures",
		"records", stats.Records,
		"accepted", stats.Accepted,
		"departures", stats.Departures)

	return rows, stats
}
