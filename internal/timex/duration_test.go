package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string seconds", input: `"3s"`, want: 3 * time.Second},
		{name: "string composite", input: `"1m30s"`, want: 90 * time.Second},
		{name: "integer nanoseconds", input: `1500000000`, want: 1500 * time.Millisecond},
		{name: "zero", input: `0`, want: 0},
		{name: "bad string", input: `"tomorrow"`, wantErr: true},
		{name: "bad type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Duration != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, d.Duration)
			}
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	t.Parallel()

	d := Duration{Duration: 90 * time.Second}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"1m30s"` {
		t.Fatalf("expected %q, got %q", `"1m30s"`, string(b))
	}
}

func TestDuration_RoundTripInStruct(t *testing.T) {
	t.Parallel()

	type cfg struct {
		Interval Duration `json:"interval"`
	}

	var c cfg
	if err := json.Unmarshal([]byte(`{"interval":"250ms"}`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Interval.Duration != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", c.Interval.Duration)
	}
}
