package request

import (
	"encoding/json"
	"testing"
)

func TestRawNumberUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		body string
		want RawNumber
	}{
		{"decorated string", `{"result": "12.5%"}`, "12.5%"},
		{"ratio string", `{"result": "1:3"}`, "1:3"},
		{"plain number", `{"result": -0.5}`, "-0.5"},
		{"integer", `{"result": 3}`, "3"},
		{"null", `{"result": null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req struct {
				Result RawNumber `json:"result"`
			}
			if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
				t.Fatalf("Failed to unmarshal %s: %v", tc.body, err)
			}
			if req.Result != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, req.Result)
			}
		})
	}
}
