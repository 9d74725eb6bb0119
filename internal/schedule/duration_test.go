package schedule

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
		ok   bool
	}{
		{"bare integer", "150", 150, true},
		{"bare integer padded", "  90 ", 90, true},
		{"minutes suffix", "150m", 150, true},
		{"minutes word", "150 minutes", 150, true},
		{"min abbreviation", "95 min", 95, true},
		{"hours suffix", "2h", 120, true},
		{"hr abbreviation", "2hr", 120, true},
		{"hours word", "3 hours", 180, true},
		{"combined", "2h 30m", 150, true},
		{"combined tight", "1h45m", 105, true},
		{"clock form", "2:30", 150, true},
		{"clock form single digit", "1:05", 65, true},
		{"uppercase", "2H 30M", 150, true},
		{"embedded number fallback", "Runtime: 148", 148, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"no number", "unknown", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDuration(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ParseDuration(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDurationAlwaysPositiveForSupportedPatterns(t *testing.T) {
	patterns := []string{"1", "1m", "1 min", "1h", "1h 1m", "0:01", "about 5"}
	for _, raw := range patterns {
		got, ok := ParseDuration(raw)
		if !ok || got <= 0 {
			t.Errorf("ParseDuration(%q) = (%d, %v), want positive minutes", raw, got, ok)
		}
	}
}
