package usecase

import (
	"fmt"

	"departure-board-service/internal/domain/entity"
)

// DestinationLocalizer resolves a departure's destination into display
// strings for every supported language
type DestinationLocalizer struct {
	table *entity.LocalizationTable
}

// NewDestinationLocalizer creates a localizer over an immutable table
func NewDestinationLocalizer(table *entity.LocalizationTable) *DestinationLocalizer {
	return &DestinationLocalizer{table: table}
}

// Localize looks the base name up in the table, falling back to the base
// name itself, and appends the arrival code for multi-airport cities.
func (l *DestinationLocalizer) Localize(obs entity.FlightObservation) entity.DestinationNames {
	base := obs.DestinationBaseName()

	names, ok := l.table.Lookup(base)
	if !ok {
		names = entity.SameForAll(base)
	}

	code := obs.ArrivalAirportCode
	if code == "" || !l.table.IsMultiAirport(base) || l.table.SuppressesCode(base) {
		return names
	}

	return names.Map(func(name string) string {
		return fmt.Sprintf("%s (%s)", name, code)
	})
}
