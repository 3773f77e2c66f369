package siri

import (
	"encoding/json"
	"testing"
)

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Text
		wantErr  bool
	}{
		{"plain string", `"M72"`, "M72", false},
		{"single element array", `["LIMITED"]`, "LIMITED", false},
		{"multi element array", `["EAST", "SIDE"]`, "EAST SIDE", false},
		{"null", `null`, "", false},
		{"number", `42`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Text
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
