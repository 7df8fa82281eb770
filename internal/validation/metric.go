package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MetricKind selects the input grammar for ParseMetric.
type MetricKind int

const (
	// MetricPercent accepts a signed decimal with an optional trailing "%",
	// e.g. "12.5%", "-1", "0.75 %". Used for result and risk fields.
	MetricPercent MetricKind = iota

	// MetricRatio accepts an unsigned decimal with an optional "1:" prefix,
	// e.g. "1:3", "2.5". Used for the risk-reward field.
	MetricRatio
)

// MetricError is the typed failure result of ParseMetric.
type MetricError struct {
	Field  string
	Input  string
	Reason string
}

func (e *MetricError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q: %s", e.Field, e.Input, e.Reason)
}

// ParseMetric parses a trade metric from its raw user-supplied text.
//
// Input grammar (after trimming surrounding whitespace):
//
//	percent := sign? digits ("." digits)? ws? "%"?
//	ratio   := ("1" ws? ":" ws?)? digits ("." digits)?
//
// Display decoration ("%" suffix, "1:" prefix) is accepted and stripped here;
// persisted values are always plain numbers. This is the single place where
// that stripping happens.
func ParseMetric(field, raw string, kind MetricKind) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &MetricError{Field: field, Input: raw, Reason: "value is required"}
	}

	switch kind {
	case MetricPercent:
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	case MetricRatio:
		if rest, ok := strings.CutPrefix(s, "1"); ok {
			rest = strings.TrimSpace(rest)
			if after, hasColon := strings.CutPrefix(rest, ":"); hasColon {
				s = strings.TrimSpace(after)
			}
		}
		if strings.HasPrefix(s, "-") {
			return 0, &MetricError{Field: field, Input: raw, Reason: "ratio cannot be negative"}
		}
	}

	if s == "" {
		return 0, &MetricError{Field: field, Input: raw, Reason: "no numeric value"}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &MetricError{Field: field, Input: raw, Reason: "not a number"}
	}
	// ParseFloat also accepts "NaN" and "Inf"; a single NaN row poisons every
	// SUM over it and breaks JSON encoding of the aggregates.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &MetricError{Field: field, Input: raw, Reason: "not a finite number"}
	}
	return v, nil
}
