package usecase

import (
	"context"

	"departure-board-service/internal/domain/entity"
)

// BoardSink receives every finished board
type BoardSink interface {
	// Name identifies the sink in logs and metrics
	Name() string

	// Publish writes the board; it must not modify it
	Publish(ctx context.Context, board *entity.Board) error
}

// SinkRouter fans a finished board out to the registered sinks
type SinkRouter interface {
	// Register adds a sink
	Register(sink BoardSink)

	// Publish sends board to every sink and returns the first failure
	Publish(ctx context.Context, board *entity.Board) error
}
