package service

import "time"

// ConversionResult is the outcome of one conversion.
type ConversionResult struct {
	From      string
	To        string
	Amount    float64
	Rate      float64
	Result    float64
	FetchedAt time.Time
	Stale     bool
	// DayChangePct is the rate's change against the previous day, in percent.
	// Nil when yesterday's rate could not be obtained.
	DayChangePct *float64
}

// SeriesPoint is one day's rate for a currency pair.
type SeriesPoint struct {
	Day  time.Time
	Rate float64
}
