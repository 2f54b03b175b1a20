package usecase

import (
	"testing"

	"departure-board-service/internal/domain/entity"
)

func TestDestinationLocalizer_Localize(t *testing.T) {
	localizer := NewDestinationLocalizer(testTable())

	tests := []struct {
		name string
		obs  entity.FlightObservation
		want entity.DestinationNames
	}{
		{
			name: "single airport city",
			obs:  entity.FlightObservation{ArrivalCityName: "Fukuoka", ArrivalAirportCode: "FUK"},
			want: entity.DestinationNames{Ja: "福岡", En: "Fukuoka", Zh: "福冈"},
		},
		{
			name: "multi airport city gets code",
			obs:  entity.FlightObservation{ArrivalCityName: "Seoul", ArrivalAirportCode: "GMP"},
			want: entity.DestinationNames{Ja: "ソウル (GMP)", En: "Seoul (GMP)", Zh: "首尔 (GMP)"},
		},
		{
			name: "suppressed multi airport city",
			obs:  entity.FlightObservation{ArrivalCityName: "Osaka", ArrivalAirportCode: "ITM"},
			want: entity.DestinationNames{Ja: "大阪", En: "Osaka", Zh: "大阪"},
		},
		{
			name: "case insensitive lookup",
			obs:  entity.FlightObservation{ArrivalCityName: "  seoul ", ArrivalAirportCode: "ICN"},
			want: entity.DestinationNames{Ja: "ソウル (ICN)", En: "Seoul (ICN)", Zh: "首尔 (ICN)"},
		},
		{
			name: "multi airport city without code",
			obs:  entity.FlightObservation{ArrivalCityName: "Seoul"},
			want: entity.DestinationNames{Ja: "ソウル", En: "Seoul", Zh: "首尔"},
		},
		{
			name: "unknown name passes through",
			obs:  entity.FlightObservation{ArrivalCityName: "Ulaanbaatar", ArrivalAirportCode: "UBN"},
			want: entity.SameForAll("Ulaanbaatar"),
		},
		{
			name: "airport name fallback",
			obs:  entity.FlightObservation{ArrivalAirportName: "Fukuoka", ArrivalAirportCode: "FUK"},
			want: entity.DestinationNames{Ja: "福岡", En: "Fukuoka", Zh: "福冈"},
		},
	}

	for _, test := range tests {
		got := localizer.Localize(test.obs)
		if got != test.want {
			t.Errorf("%s - expected %+v, got %+v", test.name, test.want, got)
		}
	}
}

func TestDestinationLocalizer_EmptyTable(t *testing.T) {
	localizer := NewDestinationLocalizer(entity.NewLocalizationTable())
	got := localizer.Localize(entity.FlightObservation{ArrivalCityName: "Seoul", ArrivalAirportCode: "ICN"})
	if got != entity.SameForAll("Seoul") {
		t.Errorf("Expected raw name, got %+v", got)
	}
}
