package sink

import (
	"context"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/internal/domain/repository"
	"departure-board-service/pkg/logger"
)

// BoardStoreSink saves each successful board as the latest snapshot for
// its airport. Error boards are not stored so the last good board stays
// available.
type BoardStoreSink struct {
	repo   repository.BoardRepository
	logger logger.Logger
}

// NewBoardStoreSink creates a new board store sink
func NewBoardStoreSink(repo repository.BoardRepository, logger logger.Logger) *BoardStoreSink {
	return &BoardStoreSink{repo: repo, logger: logger}
}

func (s *BoardStoreSink) Name() string { return "mongodb" }

// Publish upserts board unless it is an error board
func (s *BoardStoreSink) Publish(ctx context.Context, board *entity.Board) error {
	if board.Failed() {
		s.logger.Debug("Not storing error board", "airport", board.AirportCode)
		return nil
	}
	return s.repo.SaveLatest(ctx, board)
}
