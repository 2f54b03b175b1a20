package entity

import "time"

// BoardRow is one presentation record handed to renderers and sinks
type BoardRow struct {
	ScheduledTime    string           `json:"scheduledTime" bson:"scheduledTime"`
	ChangedTime      string           `json:"changedTime" bson:"changedTime"`
	Destination      DestinationNames `json:"destination" bson:"destination"`
	FlightNumber     string           `json:"flightNumber" bson:"flightNumber"`
	CodeshareFlights string           `json:"codeshareFlights" bson:"codeshareFlights"`
	Remark           string           `json:"remark" bson:"remark"`
	RemarkCategory   RemarkCategory   `json:"remarkCategory" bson:"remarkCategory"`
}

// BoardError describes why a board could not be built this cycle
type BoardError struct {
	Title  string `json:"title" bson:"title"`
	Detail string `json:"detail" bson:"detail"`
}

// Board is the finished, immutable output of one batch
type Board struct {
	RunID       string      `json:"runId" bson:"runId"`
	AirportCode string      `json:"airport" bson:"_id"`
	Language    Language    `json:"language" bson:"language"`
	GeneratedAt time.Time   `json:"generatedAt" bson:"generatedAt"`
	UpdatedAt   string      `json:"updatedAt" bson:"updatedAt"`
	Rows        []BoardRow  `json:"flights" bson:"flights"`
	Error       *BoardError `json:"error,omitempty" bson:"error,omitempty"`
}

// IsEmpty reports whether the board has no rows to show
func (b *Board) IsEmpty() bool {
	return len(b.Rows) == 0
}

// Failed reports whether the board carries a fetch error instead of rows
func (b *Board) Failed() bool {
	return b.Error != nil
}
