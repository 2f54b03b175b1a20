package repository

import (
	"context"

	"departure-board-service/internal/domain/entity"
)

// DestinationRepository defines the interface for localization data storage
type DestinationRepository interface {
	ListAll(ctx context.Context) ([]entity.Destination, error)
	Upsert(ctx context.Context, destination *entity.Destination) error
}
