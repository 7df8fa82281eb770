package model

import "time"

// CalendarDay is one cell of the 42-cell month grid. Date is the cell's true
// calendar date, so selecting an other-month cell resolves to an exact date
// rather than a heuristic.
type CalendarDay struct {
	Date           time.Time `json:"date"`
	DayOfMonth     int       `json:"dayOfMonth"`
	Percentage     float64   `json:"percentage"`
	TradeCount     int       `json:"tradeCount"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
	IsOtherMonth   bool      `json:"isOtherMonth"`
	IsToday        bool      `json:"isToday"`
	IsFutureDay    bool      `json:"isFutureDay"`
}

// MonthGrid is the assembled month view: exactly 42 cells spanning the
// displayed month plus leading/trailing days of the adjacent months.
type MonthGrid struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}
