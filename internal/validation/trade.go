package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/tradevault/journal-backend/internal/api/request"
	"github.com/tradevault/journal-backend/internal/model"
)

// ValidSession contains the allowed trading session values.
var ValidSession = map[string]bool{
	model.SessionLondon:    true,
	model.SessionNewYork:   true,
	model.SessionAsia:      true,
	model.SessionFrankfurt: true,
}

// ValidPosition contains the allowed position values. Position is optional.
var ValidPosition = map[string]bool{
	model.PositionLong:  true,
	model.PositionShort: true,
}

// TradeValues is the cleaned, typed result of validating a trade request.
// Pair is uppercased and the numeric fields are plain numbers with display
// decoration already stripped.
type TradeValues struct {
	Pair     string
	Date     time.Time
	Session  string
	Position string
	Result   float64
	RR       float64
	Risk     float64
	Note     string
}

// ValidateTradeRequest validates a trade create/update request and returns
// the cleaned field values.
//
// Required fields:
//   - pair: non-empty instrument symbol (stored uppercase)
//   - date: YYYY-MM-DD, or RFC 3339 when the client supplies a time of day
//   - session: one of: London, New York, Asia, Frankfurt
//   - result, rr, risk: numbers, optionally decorated ("12.5%", "1:3")
//
// Optional fields:
//   - position: long or short if provided
//   - note: free text, defaults to empty
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateTradeRequest(req request.CreateTradeRequest) (TradeValues, error) {
	errors := make(map[string]string)
	var values TradeValues

	if strings.TrimSpace(req.Pair) == "" {
		errors["pair"] = "pair is required"
	} else {
		values.Pair = strings.ToUpper(strings.TrimSpace(req.Pair))
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else {
		date, err := ParseTradeDate(req.Date)
		if err != nil {
			errors["date"] = err.Error()
		} else {
			values.Date = date
		}
	}

	if strings.TrimSpace(req.Session) == "" {
		errors["session"] = "session is required"
	} else if !ValidSession[req.Session] {
		errors["session"] = fmt.Sprintf("invalid session: %s", req.Session)
	} else {
		values.Session = req.Session
	}

	if req.Position != "" {
		if !ValidPosition[req.Position] {
			errors["position"] = fmt.Sprintf("invalid position: %s", req.Position)
		} else {
			values.Position = req.Position
		}
	}

	if v, err := ParseMetric("result", string(req.Result), MetricPercent); err != nil {
		errors["result"] = err.(*MetricError).Reason
	} else {
		values.Result = v
	}

	if v, err := ParseMetric("rr", string(req.RR), MetricRatio); err != nil {
		errors["rr"] = err.(*MetricError).Reason
	} else {
		values.RR = v
	}

	if v, err := ParseMetric("risk", string(req.Risk), MetricPercent); err != nil {
		errors["risk"] = err.(*MetricError).Reason
	} else {
		values.Risk = v
	}

	values.Note = req.Note

	if len(errors) > 0 {
		return TradeValues{}, &Error{Fields: errors}
	}

	return values, nil
}

// ParseTradeDate parses a trade date in "2006-01-02" or RFC 3339 format and
// normalizes it to UTC.
func ParseTradeDate(str string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", str)
	if err != nil {
		date, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, str)
		}
	}
	return date.UTC(), nil
}
