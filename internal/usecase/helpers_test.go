package usecase

import (
	"time"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/pkg/logger"
)

var jst = time.FixedZone("JST", 9*60*60)

func testTable() *entity.LocalizationTable {
	return entity.NewLocalizationTable([]entity.Destination{
		{CanonicalName: "Sapporo", Names: entity.DestinationNames{Ja: "札幌", En: "Sapporo", Zh: "札幌"}, MultiAirport: true, SuppressCode: true},
		{CanonicalName: "Osaka", Names: entity.DestinationNames{Ja: "大阪", En: "Osaka", Zh: "大阪"}, MultiAirport: true, SuppressCode: true},
		{CanonicalName: "Seoul", Names: entity.DestinationNames{Ja: "ソウル", En: "Seoul", Zh: "首尔"}, MultiAirport: true},
		{CanonicalName: "Fukuoka", Names: entity.DestinationNames{Ja: "福岡", En: "Fukuoka", Zh: "福冈"}},
	})
}

func testBuilder() *BoardBuilder {
	return NewBoardBuilder(testTable(), BoardOptions{
		Location:       jst,
		Language:       entity.LangEn,
		DelayThreshold: 5 * time.Minute,
	}, logger.NewNopLogger())
}

type recordOpt func(*entity.FeedRecord)

func codeshare() recordOpt {
	return func(r *entity.FeedRecord) {
		r.Flight.Codeshared = &entity.FeedCodeshare{FlightIATA: "XX1"}
	}
}

func estimated(ts string) recordOpt {
	return func(r *entity.FeedRecord) { r.Departure.Estimated = ts }
}

func status(s string) recordOpt {
	return func(r *entity.FeedRecord) { r.FlightStatus = s }
}

func city(name string) recordOpt {
	return func(r *entity.FeedRecord) { r.Arrival.City = name }
}

// record builds an operating, scheduled feed record to Fukuoka unless opts
// say otherwise
func record(number, scheduled, arrival string, opts ...recordOpt) entity.FeedRecord {
	r := entity.FeedRecord{
		FlightStatus: "scheduled",
		Departure:    entity.FeedEndpoint{IATA: "HND", Scheduled: scheduled},
		Arrival:      entity.FeedEndpoint{IATA: arrival, City: "Fukuoka", Airport: "Fukuoka"},
		Flight:       entity.FeedFlight{IATA: number},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
