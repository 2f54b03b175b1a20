package utils

import (
	"fmt"
	"strings"

	"departure-board-service/internal/domain/entity"
)

// FeedParser turns raw feed records into flight observations
type FeedParser struct{}

// NewFeedParser creates a new feed parser
func NewFeedParser() *FeedParser {
	return &FeedParser{}
}

// ParseObservation validates and normalizes one feed record. It never
// panics on partial data; a record missing a required field returns one of
// the Err* values above, wrapped.
func (p *FeedParser) ParseObservation(rec entity.FeedRecord) (entity.FlightObservation, error) {
	var obs entity.FlightObservation

	number, err := NormalizeFlightNumber(rec.Flight.IATA)
	if err != nil {
		return obs, err
	}

	scheduledRaw := strings.TrimSpace(rec.Departure.Scheduled)
	if scheduledRaw == "" {
		return obs, fmt.Errorf("%s: %w", number, ErrMissingScheduled)
	}
	scheduled, err := ParseFeedTime(scheduledRaw)
	if err != nil {
		return obs, fmt.Errorf("%s: %w: %q", number, ErrInvalidScheduled, scheduledRaw)
	}

	status := NormalizeStatus(rec.FlightStatus)
	if status == "" {
		return obs, fmt.Errorf("%s: %w", number, ErrMissingStatus)
	}

	city := strings.TrimSpace(rec.Arrival.City)
	airport := strings.TrimSpace(rec.Arrival.Airport)
	if city == "" && airport == "" {
		return obs, fmt.Errorf("%s: %w", number, ErrMissingDestination)
	}

	obs = entity.FlightObservation{
		ScheduledRaw:         scheduledRaw,
		Scheduled:            scheduled,
		ArrivalAirportCode:   strings.ToUpper(strings.TrimSpace(rec.Arrival.IATA)),
		ArrivalCityName:      city,
		ArrivalAirportName:   airport,
		MarketedFlightNumber: number,
		IsOperatingCarrier:   rec.Flight.Codeshared == nil,
		Status:               status,
	}

	if estimatedRaw := strings.TrimSpace(rec.Departure.Estimated); estimatedRaw != "" {
		estimated, err := ParseFeedTime(estimatedRaw)
		if err != nil {
			return entity.FlightObservation{}, fmt.Errorf("%s: %w: %q", number, ErrInvalidEstimated, estimatedRaw)
		}
		obs.Estimated = &estimated
	}

	return obs, nil
}

// NormalizeFlightNumber trims and uppercases a marketed number. Any other
// character is kept as the feed sent it.
func NormalizeFlightNumber(raw string) (string, error) {
	number := strings.ToUpper(strings.TrimSpace(raw))
	if number == "" {
		return "", ErrMissingFlightNumber
	}
	return number, nil
}

// NormalizeStatus maps a flight_status value onto the known status codes.
// It returns "" for an empty value and StatusUnknown for anything else
// unrecognized.
func NormalizeStatus(raw string) entity.StatusCode {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return ""
	case "canceled":
		return entity.StatusCancelled
	}

	switch status := entity.StatusCode(s); status {
	case entity.StatusScheduled, entity.StatusActive, entity.StatusLanded,
		entity.StatusCancelled, entity.StatusDelayed, entity.StatusIncident,
		entity.StatusDiverted:
		return status
	default:
		return entity.StatusUnknown
	}
}
