package repository

import (
	"context"

	"departure-board-service/internal/domain/entity"
)

// FeedRepository defines the interface for fetching raw departure records
type FeedRepository interface {
	FetchDepartures(ctx context.Context, airportCode string) ([]entity.FeedRecord, error)
}
