package usecase

import (
	"time"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/pkg/utils"
)

// BuildAggregationKey returns the key identifying obs's physical departure
func BuildAggregationKey(obs entity.FlightObservation) entity.AggregationKey {
	return entity.AggregationKey{
		ScheduledDeparture: obs.ScheduledRaw,
		ArrivalAirportCode: obs.ArrivalAirportCode,
	}
}

// FlightAggregator folds observations into one aggregate per physical
// departure. It is meant for a single batch and is not safe for concurrent
// use.
type FlightAggregator struct {
	localizer  *DestinationLocalizer
	classifier *StatusClassifier
	location   *time.Location

	flights map[entity.AggregationKey]*entity.AggregatedFlight
	// order keeps aggregates in creation order for tie-breaking
	order []*entity.AggregatedFlight
}

// NewFlightAggregator creates an empty aggregator
func NewFlightAggregator(localizer *DestinationLocalizer, classifier *StatusClassifier, location *time.Location) *FlightAggregator {
	if location == nil {
		location = time.UTC
	}
	return &FlightAggregator{
		localizer:  localizer,
		classifier: classifier,
		location:   location,
		flights:    make(map[entity.AggregationKey]*entity.AggregatedFlight),
	}
}

// Add folds one observation in. It reports whether a new departure was
// created.
func (a *FlightAggregator) Add(obs entity.FlightObservation) bool {
	key := BuildAggregationKey(obs)

	if flight, ok := a.flights[key]; ok {
		flight.Merge(obs)
		return false
	}

	flight := entity.NewAggregatedFlight(key, len(a.order), obs)
	flight.Destination = a.localizer.Localize(obs)
	flight.ScheduledTime = utils.FormatClock(obs.Scheduled, a.location)

	status := a.classifier.Classify(obs)
	flight.Remark = status.Remark
	flight.RemarkCategory = status.Category
	flight.ChangedTime = status.ChangedTime

	a.flights[key] = flight
	a.order = append(a.order, flight)
	return true
}

// Finalize resolves every outstanding operating number and returns the
// aggregates in creation order
func (a *FlightAggregator) Finalize() []*entity.AggregatedFlight {
	for _, flight := range a.order {
		flight.Finalize()
	}
	return a.order
}

// Len returns the number of distinct departures seen so far
func (a *FlightAggregator) Len() int {
	return len(a.order)
}
