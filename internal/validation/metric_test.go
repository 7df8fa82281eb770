package validation

import (
	"errors"
	"testing"
)

func TestParseMetric(t *testing.T) {
	t.Run("parses percent values with and without decoration", func(t *testing.T) {
		cases := []struct {
			input string
			want  float64
		}{
			{"12.5%", 12.5},
			{"12.5", 12.5},
			{"-1", -1},
			{"-0.75%", -0.75},
			{" 2.25 % ", 2.25},
			{"0", 0},
		}

		for _, tc := range cases {
			got, err := ParseMetric("result", tc.input, MetricPercent)
			if err != nil {
				t.Errorf("ParseMetric(%q) returned error: %v", tc.input, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ParseMetric(%q) = %v, want %v", tc.input, got, tc.want)
			}
		}
	})

	t.Run("parses ratio values with and without 1: prefix", func(t *testing.T) {
		cases := []struct {
			input string
			want  float64
		}{
			{"1:3", 3},
			{"1 : 2.5", 2.5},
			{"3", 3},
			{"1.5", 1.5},
			{"15", 15},
		}

		for _, tc := range cases {
			got, err := ParseMetric("rr", tc.input, MetricRatio)
			if err != nil {
				t.Errorf("ParseMetric(%q) returned error: %v", tc.input, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ParseMetric(%q) = %v, want %v", tc.input, got, tc.want)
			}
		}
	})

	t.Run("rejects empty and non-numeric input", func(t *testing.T) {
		for _, input := range []string{"", "   ", "abc", "%", "1:", "12.5.6"} {
			if _, err := ParseMetric("result", input, MetricPercent); err == nil {
				t.Errorf("ParseMetric(%q) expected error, got nil", input)
			}
		}
	})

	t.Run("rejects non-finite values", func(t *testing.T) {
		for _, input := range []string{"NaN", "nan", "nan%", "Inf", "+inf", "-Inf", "1:inf"} {
			for _, kind := range []MetricKind{MetricPercent, MetricRatio} {
				if _, err := ParseMetric("result", input, kind); err == nil {
					t.Errorf("ParseMetric(%q, kind %d) expected error, got nil", input, kind)
				}
			}
		}
	})

	t.Run("rejects negative ratios", func(t *testing.T) {
		_, err := ParseMetric("rr", "-3", MetricRatio)
		if err == nil {
			t.Fatal("Expected error for negative ratio")
		}
	})

	t.Run("failure is a typed MetricError carrying field and input", func(t *testing.T) {
		_, err := ParseMetric("risk", "oops", MetricPercent)

		var metricErr *MetricError
		if !errors.As(err, &metricErr) {
			t.Fatalf("Expected *MetricError, got %T", err)
		}
		if metricErr.Field != "risk" {
			t.Errorf("Expected field 'risk', got %q", metricErr.Field)
		}
		if metricErr.Input != "oops" {
			t.Errorf("Expected input 'oops', got %q", metricErr.Input)
		}
	})
}
