package request

import "encoding/json"

// RawNumber captures a JSON field that clients send either as a number or as
// a decorated string ("12.5%", "1:3"). The raw text is kept verbatim;
// validation.ParseMetric owns the grammar that turns it into a number.
type RawNumber string

// UnmarshalJSON accepts a JSON string, number, or null.
func (n *RawNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = RawNumber(s)
		return nil
	}
	*n = RawNumber(b)
	return nil
}

// CreateTradeRequest is the body of POST /api/trades.
type CreateTradeRequest struct {
	Pair     string    `json:"pair"`
	Date     string    `json:"date"`
	Session  string    `json:"session"`
	Position string    `json:"position,omitempty"`
	Result   RawNumber `json:"result"`
	RR       RawNumber `json:"rr"`
	Risk     RawNumber `json:"risk"`
	Note     string    `json:"note,omitempty"`
}

// UpdateTradeRequest is the body of PUT /api/trades/{uuid}. Updates are full
// field replacements, so the shape matches CreateTradeRequest.
type UpdateTradeRequest = CreateTradeRequest
