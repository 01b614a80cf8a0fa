package duration

import (
	"errors"
	"math"
	"testing"

	"github.com/tempocut/tempocut/internal/errs"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		allowZero bool
		want      float64
		wantErr   bool
	}{
		{"plain seconds", "90", false, 90.0, false},
		{"fractional seconds", "12.5", false, 12.5, false},
		{"minutes and seconds", "1:30", false, 90.0, false},
		{"hours minutes seconds", "1:01:01", false, 3661.0, false},
		{"fractional last field", "1:01:01.25", false, 3661.25, false},
		{"surrounding whitespace", "  2:00 ", false, 120.0, false},
		{"zero allowed", "0", true, 0.0, false},
		{"zero rejected", "0", false, 0, true},
		{"empty", "", true, 0, true},
		{"blank", "   ", true, 0, true},
		{"negative", "-5", true, 0, true},
		{"too many fields", "1:2:3:4", false, 0, true},
		{"blank field", "1::30", false, 0, true},
		{"decimal in minutes", "1.5:30", false, 0, true},
		{"garbage", "abc", false, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.value, tt.allowZero)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.value, got)
				}
				var verr *errs.ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("Parse(%q) error = %T, want *errs.ValidationError", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.value, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseOptional(t *testing.T) {
	got, err := ParseOptional("", false)
	if err != nil || got != nil {
		t.Errorf("ParseOptional(\"\") = %v, %v, want nil, nil", got, err)
	}
	got, err = ParseOptional("  ", true)
	if err != nil || got != nil {
		t.Errorf("ParseOptional(blank) = %v, %v, want nil, nil", got, err)
	}
	got, err = ParseOptional("1:30", false)
	if err != nil || got == nil || *got != 90.0 {
		t.Errorf("ParseOptional(\"1:30\") = %v, %v, want 90, nil", got, err)
	}
	if _, err = ParseOptional("bogus", false); err == nil {
		t.Error("ParseOptional(\"bogus\") should fail")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0:00"},
		{"negative clamps to zero", -3, "0:00"},
		{"minute and change", 65, "1:05"},
		{"hour boundary", 3600, "1:00:00"},
		{"hours with millis", 3661.25, "1:01:01.250"},
		{"sub-millisecond dropped", 10.0004, "0:10"},
		{"quarter second kept", 10.25, "0:10.250"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.seconds); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
