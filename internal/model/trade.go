package model

import "time"

// Trading sessions a trade can be attributed to.
const (
	SessionLondon    = "London"
	SessionNewYork   = "New York"
	SessionAsia      = "Asia"
	SessionFrankfurt = "Frankfurt"
)

// Trade positions. Position may be empty when the user did not record one.
const (
	PositionLong  = "long"
	PositionShort = "short"
)

// TradeLog represents a single recorded trade with its outcome metadata.
// Result, RR and Risk are always stored as plain numbers: percent signs and
// "1:" prefixes are stripped on input and re-added only for display.
type TradeLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Pair      string    `json:"pair"`
	Date      time.Time `json:"date"`
	Session   string    `json:"session"`
	Position  string    `json:"position,omitempty"`
	Result    float64   `json:"result"`
	RR        float64   `json:"rr"`
	Risk      float64   `json:"risk"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
