package utils

import "errors"

// Constants
const (
	CLOCK_LAYOUT   = "15:04"
	UPDATED_LAYOUT = "2006-01-02 15:04"
)

// Reasons a feed record is rejected. Each one maps to a skip reason label.
var (
	ErrMissingFlightNumber = errors.New("missing flight.iata")
	ErrMissingScheduled    = errors.New("missing departure.scheduled")
	ErrInvalidScheduled    = errors.New("unparsable departure.scheduled")
	ErrInvalidEstimated    = errors.New("unparsable departure.estimated")
	ErrMissingDestination  = errors.New("missing arrival.city and arrival.airport")
	ErrMissingStatus       = errors.New("missing flight_status")
)

// SkipReason returns a short metric-friendly label for a rejection error
func SkipReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingFlightNumber):
		return "flight_number"
	case errors.Is(err, ErrMissingScheduled), errors.Is(err, ErrInvalidScheduled):
		return "scheduled"
	case errors.Is(err, ErrInvalidEstimated):
		return "estimated"
	case errors.Is(err, ErrMissingDestination):
		return "destination"
	case errors.Is(err, ErrMissingStatus):
		return "status"
	default:
		return "other"
	}
}
