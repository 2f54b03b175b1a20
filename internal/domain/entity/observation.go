package entity

import "time"

// StatusCode is the normalized flight_status value of a feed record
type StatusCode string

const (
	StatusScheduled StatusCode = "scheduled"
	StatusActive    StatusCode = "active"
	StatusLanded    StatusCode = "landed"
	StatusCancelled StatusCode = "cancelled"
	StatusDelayed   StatusCode = "delayed"
	StatusIncident  StatusCode = "incident"
	StatusDiverted  StatusCode = "diverted"
	StatusUnknown   StatusCode = "unknown"
)

// FlightObservation is the canonical form of one feed record. It only lives
// for the duration of a single batch.
type FlightObservation struct {
	// ScheduledRaw is the feed-native scheduled string, used verbatim in the
	// aggregation key.
	ScheduledRaw         string
	Scheduled            time.Time
	Estimated            *time.Time
	ArrivalAirportCode   string
	ArrivalCityName      string
	ArrivalAirportName   string
	MarketedFlightNumber string
	IsOperatingCarrier   bool
	Status               StatusCode
}

// DestinationBaseName prefers the city and falls back to the airport name
func (o FlightObservation) DestinationBaseName() string {
	if o.ArrivalCityName != "" {
		return o.ArrivalCityName
	}
	return o.ArrivalAirportName
}
