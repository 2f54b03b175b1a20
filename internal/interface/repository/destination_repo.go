package repository

import (
	"context"
	"time"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDestinationRepository implements the DestinationRepository interface
type GormDestinationRepository struct {
	db *gorm.DB
}

// NewGormDestinationRepository creates a new GORM destination repository
func NewGormDestinationRepository(db *gorm.DB) repository.DestinationRepository {
	return &GormDestinationRepository{
		db: db,
	}
}

// DestinationName GORM model for database mapping
type DestinationName struct {
	ID            uint   `gorm:"primaryKey"`
	CanonicalName string `gorm:"column:canonical_name;uniqueIndex;not null"`
	NameJa        string `gorm:"column:name_ja"`
	NameEn        string `gorm:"column:name_en"`
	NameZh        string `gorm:"column:name_zh"`
	MultiAirport  bool   `gorm:"column:multi_airport"`
	SuppressCode  bool   `gorm:"column:suppress_code"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default table name
func (DestinationName) TableName() string {
	return "m_destination_names"
}

// ListAll returns every stored destination ordered by id
func (r *GormDestinationRepository) ListAll(ctx context.Context) ([]entity.Destination, error) {
	var rows []DestinationName
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	// Convert GORM models to domain entities
	destinations := make([]entity.Destination, 0, len(rows))
	for _, row := range rows {
		destinations = append(destinations, entity.Destination{
			ID:            row.ID,
			CanonicalName: row.CanonicalName,
			Names: entity.DestinationNames{
				Ja: row.NameJa,
				En: row.NameEn,
				Zh: row.NameZh,
			},
			MultiAirport: row.MultiAirport,
			SuppressCode: row.SuppressCode,
		})
	}
	return destinations, nil
}

// Upsert inserts a destination or updates the row with the same canonical
// name
func (r *GormDestinationRepository) Upsert(ctx context.Context, d *entity.Destination) error {
	row := DestinationName{
		CanonicalName: d.CanonicalName,
		NameJa:        d.Names.Ja,
		NameEn:        d.Names.En,
		NameZh:        d.Names.Zh,
		MultiAirport:  d.MultiAirport,
		SuppressCode:  d.SuppressCode,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "canonical_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"name_ja", "name_en", "name_zh", "multi_airport", "suppress_code", "updated_at"}),
	}).Create(&row)
	if result.Error != nil {
		return result.Error
	}

	d.ID = row.ID
	return nil
}
