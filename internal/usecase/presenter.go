package usecase

import (
	"sort"
	"strings"

	"departure-board-service/internal/domain/entity"
)

// CodeshareSeparator joins codeshare numbers in the output row
const CodeshareSeparator = ", "

// PresentFlights orders finalized aggregates by scheduled time and turns
// them into board rows. Departures with the same scheduled time keep their
// creation order.
func PresentFlights(flights []*entity.AggregatedFlight) []entity.BoardRow {
	ordered := make([]*entity.AggregatedFlight, len(flights))
	copy(ordered, flights)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].SortKey.Equal(ordered[j].SortKey) {
			return ordered[i].SortKey.Before(ordered[j].SortKey)
		}
		return ordered[i].Sequence < ordered[j].Sequence
	})

	rows := make([]entity.BoardRow, 0, len(ordered))
	for _, f := range ordered {
		rows = append(rows, entity.BoardRow{
			ScheduledTime:    f.ScheduledTime,
			ChangedTime:      f.ChangedTime,
			Destination:      f.Destination,
			FlightNumber:     f.OperatingFlightNumber,
			CodeshareFlights: strings.Join(f.CodeshareList(), CodeshareSeparator),
			Remark:           f.Remark,
			RemarkCategory:   f.RemarkCategory,
		})
	}
	return rows
}
