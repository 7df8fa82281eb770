package model

// DaySummary is the derived aggregate of all trades on one calendar day for
// one user. Computed fresh per request, never persisted. Days with no trades
// are simply absent from a month's summary list.
type DaySummary struct {
	Day         int     `json:"day"`
	TotalResult float64 `json:"totalResult"`
	TradeCount  int     `json:"tradeCount"`
}

// MonthData is the per-month reduction used by the year view: the sum of
// results over the month's non-future days plus the matching trade count.
type MonthData struct {
	Month           int     `json:"month"`
	TotalPercentage float64 `json:"totalPercentage"`
	TradeCount      int     `json:"tradeCount"`
	IsFuture        bool    `json:"isFuture"`
}

// YearSummary carries the 12 MonthData cells plus year-level totals.
type YearSummary struct {
	Year            int         `json:"year"`
	Months          []MonthData `json:"months"`
	ProfitMonths    int         `json:"profitMonths"`
	LossMonths      int         `json:"lossMonths"`
	NeutralMonths   int         `json:"neutralMonths"`
	TotalPercentage float64     `json:"totalPercentage"`
	TotalTrades     int         `json:"totalTrades"`
}
