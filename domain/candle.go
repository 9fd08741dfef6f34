package domain

import "time"

// Candle is one OHLC bar. Timestamp is unix seconds of the bar open time.
// A candle sequence is treated as an immutable snapshot: timestamps are
// assumed unique and non-decreasing, values are never validated or mutated.
type Candle struct {
	Timestamp int64   `json:"t" bson:"t"`
	Open      float64 `json:"o" bson:"o"`
	High      float64 `json:"h" bson:"h"`
	Low       float64 `json:"l" bson:"l"`
	Close     float64 `json:"c" bson:"c"`
}

func (c Candle) Time() time.Time {
	return time.Unix(c.Timestamp, 0).UTC()
}
