// internal/domain/entity/feed_record.go
package entity

// FeedRecord is one element of the aviation feed's "data" array. Each record
// describes a single marketed flight number, so one physical departure shows
// up once per codeshare.
type FeedRecord struct {
	FlightDate   string       `json:"flight_date"`
	FlightStatus string       `json:"flight_status"`
	Departure    FeedEndpoint `json:"departure"`
	Arrival      FeedEndpoint `json:"arrival"`
	Airline      FeedAirline  `json:"airline"`
	Flight       FeedFlight   `json:"flight"`
}

// FeedEndpoint holds either side of a feed record
type FeedEndpoint struct {
	Airport   string `json:"airport"`
	City      string `json:"city,omitempty"`
	Timezone  string `json:"timezone"`
	IATA      string `json:"iata"`
	ICAO      string `json:"icao"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Delay     *int   `json:"delay"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated"`
	Actual    string `json:"actual"`
}

type FeedAirline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
}

// FeedFlight carries the marketed number. Codeshared is non-nil when the
// record is sold by a carrier other than the operator.
type FeedFlight struct {
	Number     string         `json:"number"`
	IATA       string         `json:"iata"`
	ICAO       string         `json:"icao"`
	Codeshared *FeedCodeshare `json:"codeshared"`
}

type FeedCodeshare struct {
	AirlineName  string `json:"airline_name"`
	AirlineIATA  string `json:"airline_iata"`
	AirlineICAO  string `json:"airline_icao"`
	FlightNumber string `json:"flight_number"`
	FlightIATA   string `json:"flight_iata"`
	FlightICAO   string `json:"flight_icao"`
}

// FeedPage is one paged response of the flights endpoint
type FeedPage struct {
	Pagination FeedPagination `json:"pagination"`
	Data       []FeedRecord   `json:"data"`
	Error      *FeedAPIError  `json:"error,omitempty"`
}

type FeedPagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

// FeedAPIError is the error envelope the feed returns alongside non-2xx codes
type FeedAPIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
