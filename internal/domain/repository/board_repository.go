package repository

import (
	"context"

	"departure-board-service/internal/domain/entity"
)

// BoardRepository keeps the latest published board per departure airport.
// It replaces the previous board rather than keeping history.
type BoardRepository interface {
	SaveLatest(ctx context.Context, board *entity.Board) error
	FindLatest(ctx context.Context, airportCode string) (*entity.Board, error)
}
