// internal/domain/entity/aggregated_flight.go
package entity

import (
	"sort"
	"time"
)

// PlaceholderFlightNumber marks an aggregate whose operating carrier has not
// been seen yet
const PlaceholderFlightNumber = "TBD"

// AggregationKey identifies one physical departure
type AggregationKey struct {
	ScheduledDeparture string
	ArrivalAirportCode string
}

// AggregatedFlight is one physical departure built up from all of its
// marketed flight-number observations within a batch.
//
// Destination, times and remark are set once when the aggregate is created;
// Merge only ever touches the flight-number fields.
type AggregatedFlight struct {
	Key      AggregationKey
	Sequence int

	OperatingFlightNumber string
	Codeshares            map[string]struct{}

	Destination    DestinationNames
	ScheduledTime  string
	ChangedTime    string
	Remark         string
	RemarkCategory RemarkCategory

	// SortKey is the scheduled UTC time; it does not leave the usecase layer.
	SortKey time.Time
}

// NewAggregatedFlight starts an aggregate from the flight-number side of its
// first observation. The caller fills in destination, times and remark.
func NewAggregatedFlight(key AggregationKey, seq int, obs FlightObservation) *AggregatedFlight {
	f := &AggregatedFlight{
		Key:                   key,
		Sequence:              seq,
		OperatingFlightNumber: PlaceholderFlightNumber,
		Codeshares:            make(map[string]struct{}),
		SortKey:               obs.Scheduled.UTC(),
	}
	if obs.IsOperatingCarrier {
		f.OperatingFlightNumber = obs.MarketedFlightNumber
	} else {
		f.AddCodeshare(obs.MarketedFlightNumber)
	}
	return f
}

// HasOperatingFlight reports whether the operating number is resolved
func (f *AggregatedFlight) HasOperatingFlight() bool {
	return f.OperatingFlightNumber != PlaceholderFlightNumber
}

// AddCodeshare records number unless it is the operating number
func (f *AggregatedFlight) AddCodeshare(number string) {
	if number == "" || number == f.OperatingFlightNumber {
		return
	}
	f.Codeshares[number] = struct{}{}
}

// Merge folds a later observation of the same departure into the aggregate
func (f *AggregatedFlight) Merge(obs FlightObservation) {
	number := obs.MarketedFlightNumber
	if obs.IsOperatingCarrier && !f.HasOperatingFlight() {
		f.OperatingFlightNumber = number
		delete(f.Codeshares, number)
	}
	f.AddCodeshare(number)
}

// Finalize resolves a still-missing operating number to the smallest
// collected codeshare and makes sure the operating number is not listed as
// its own codeshare.
func (f *AggregatedFlight) Finalize() {
	if !f.HasOperatingFlight() {
		if numbers := f.CodeshareList(); len(numbers) > 0 {
			f.OperatingFlightNumber = numbers[0]
		}
	}
	delete(f.Codeshares, f.OperatingFlightNumber)
}

// CodeshareList returns the codeshare numbers in ascending order
func (f *AggregatedFlight) CodeshareList() []string {
	numbers := make([]string, 0, len(f.Codeshares))
	for n := range f.Codeshares {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}
