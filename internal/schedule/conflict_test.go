package schedule

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestBuildIntervals(t *testing.T) {
	t.Run("sorted ascending by start", func(t *testing.T) {
		ivs := BuildIntervals([]string{"1:00 PM", "10:00 AM"}, 150)
		if len(ivs) != 2 {
			t.Fatalf("got %d intervals, want 2", len(ivs))
		}
		if ivs[0].Start != 600 || ivs[0].End != 750 {
			t.Errorf("first interval = [%d,%d), want [600,750)", ivs[0].Start, ivs[0].End)
		}
		if ivs[1].Start != 780 || ivs[1].End != 930 {
			t.Errorf("second interval = [%d,%d), want [780,930)", ivs[1].Start, ivs[1].End)
		}
	})

	t.Run("malformed tokens carried through", func(t *testing.T) {
		ivs := BuildIntervals([]string{"10:00 AM", "bogus"}, 60)
		if ivs[0].Start != InvalidMinutes {
			t.Errorf("invalid token should sort first with Start == InvalidMinutes, got %d", ivs[0].Start)
		}
		if ivs[0].Label != "bogus" {
			t.Errorf("label = %q, want %q", ivs[0].Label, "bogus")
		}
	})
}

func TestDetectInternalConflicts(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		duration int
		wantKind ErrorKind
		wantIn   string
	}{
		{"no overlap", []string{"10:00 AM", "1:00 PM"}, 150, "", ""},
		{"back to back is legal", []string{"10:00", "12:00"}, 120, "", ""},
		{"malformed token", []string{"10:00 AM", "lunchtime"}, 60, KindFormat, "lunchtime"},
		{"runs past midnight", []string{"11:59 PM"}, 60, KindDayOverflow, "11:59 PM"},
		{"ends exactly at midnight is legal", []string{"11:00 PM"}, 60, "", ""},
		{"overlapping pair", []string{"10:00 AM", "11:00 AM"}, 120, KindInternalOverlap, "10:00 AM"},
		{"overlap found regardless of input order", []string{"11:00 AM", "10:00 AM"}, 120, KindInternalOverlap, "11:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DetectInternalConflicts(BuildIntervals(tt.tokens, tt.duration), tt.duration)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if KindOf(err) != tt.wantKind {
				t.Fatalf("kind = %q (%v), want %q", KindOf(err), err, tt.wantKind)
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q does not mention %q", err, tt.wantIn)
			}
		})
	}
}

// Passing the internal check guarantees the pairwise no-overlap invariant.
func TestInternalCheckImpliesDisjointIntervals(t *testing.T) {
	tokens := []string{"9:00 AM", "11:30 AM", "2:00 PM", "16:30", "19:00"}
	duration := 140

	ivs := BuildIntervals(tokens, duration)
	if err := DetectInternalConflicts(ivs, duration); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range ivs {
		for j := range ivs {
			if i != j && ivs[i].Overlaps(ivs[j]) {
				t.Errorf("intervals %q and %q overlap after a clean internal check", ivs[i].Label, ivs[j].Label)
			}
		}
	}
}

func TestDetectCrossShowConflicts(t *testing.T) {
	showID := uuid.New()
	existing := []ExistingShow{{
		ID:        showID,
		Title:     "Interstellar",
		Duration:  "120",
		Showtimes: []string{"10:30 AM"},
	}}

	t.Run("overlap with another show", func(t *testing.T) {
		// Existing occupies [630,750); planning [600,750) collides.
		planned := BuildIntervals([]string{"10:00 AM"}, 150)
		err := DetectCrossShowConflicts(planned, existing, uuid.Nil)
		if KindOf(err) != KindCrossShowOverlap {
			t.Fatalf("kind = %q (%v), want %q", KindOf(err), err, KindCrossShowOverlap)
		}
		if !strings.Contains(err.Error(), "Interstellar") {
			t.Errorf("error %q does not name the existing show", err)
		}
	})

	t.Run("no overlap when clear of the existing slot", func(t *testing.T) {
		planned := BuildIntervals([]string{"1:00 PM"}, 150)
		if err := DetectCrossShowConflicts(planned, existing, uuid.Nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("edited show excluded by id", func(t *testing.T) {
		planned := BuildIntervals([]string{"10:00 AM"}, 150)
		if err := DetectCrossShowConflicts(planned, existing, showID); err != nil {
			t.Fatalf("own show should be excluded, got: %v", err)
		}
	})

	t.Run("unresolvable durations are skipped", func(t *testing.T) {
		planned := BuildIntervals([]string{"10:30 AM"}, 60)
		shows := []ExistingShow{{
			ID:        uuid.New(),
			Title:     "Mystery",
			Duration:  "tba",
			Showtimes: []string{"10:30 AM"},
		}}
		if err := DetectCrossShowConflicts(planned, shows, uuid.Nil); err != nil {
			t.Fatalf("show without resolvable duration should be skipped, got: %v", err)
		}
	})

	t.Run("shows without showtimes are skipped", func(t *testing.T) {
		planned := BuildIntervals([]string{"10:30 AM"}, 60)
		shows := []ExistingShow{{ID: uuid.New(), Title: "Idle", Duration: "90"}}
		if err := DetectCrossShowConflicts(planned, shows, uuid.Nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDetectDuplicateShowtimes(t *testing.T) {
	showID := uuid.New()
	existing := []ExistingShow{{
		ID:        showID,
		Title:     "Dune",
		Duration:  "155",
		Showtimes: []string{"7:00 PM"},
	}}

	t.Run("24h token matches 12h token after normalization", func(t *testing.T) {
		err := DetectDuplicateShowtimes([]string{"19:00"}, existing, uuid.Nil)
		if KindOf(err) != KindExactDuplicate {
			t.Fatalf("kind = %q (%v), want %q", KindOf(err), err, KindExactDuplicate)
		}
		if !strings.Contains(err.Error(), "7:00 PM") {
			t.Errorf("error %q does not name the canonical label", err)
		}
	})

	t.Run("duplicate reported even with different durations", func(t *testing.T) {
		// The duplicate check ignores runtime entirely; only the clock
		// slot matters.
		err := DetectConflicts([]string{"19:00"}, 90, existing, uuid.Nil)
		if KindOf(err) == "" {
			t.Fatal("expected a conflict")
		}
	})

	t.Run("different slot passes", func(t *testing.T) {
		if err := DetectDuplicateShowtimes([]string{"9:00 PM"}, existing, uuid.Nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("edited show excluded by id", func(t *testing.T) {
		if err := DetectDuplicateShowtimes([]string{"19:00"}, existing, showID); err != nil {
			t.Fatalf("own show should be excluded, got: %v", err)
		}
	})
}

// The full detector reports exactly one error, in the fixed order
// internal -> cross-show -> exact duplicate.
func TestDetectConflictsOrder(t *testing.T) {
	existing := []ExistingShow{{
		ID:        uuid.New(),
		Title:     "Oppenheimer",
		Duration:  "180",
		Showtimes: []string{"10:00 AM"},
	}}

	// Internal overlap and a cross-show collision at once: the internal
	// error must win.
	err := DetectConflicts([]string{"10:00 AM", "10:30 AM"}, 120, existing, uuid.Nil)
	if KindOf(err) != KindInternalOverlap {
		t.Errorf("kind = %q, want %q", KindOf(err), KindInternalOverlap)
	}

	// Cross-show overlap beats the duplicate check: "10:30 AM" overlaps
	// the existing [600,780) slot without sharing its exact label.
	err = DetectConflicts([]string{"10:30 AM"}, 60, existing, uuid.Nil)
	if KindOf(err) != KindCrossShowOverlap {
		t.Errorf("kind = %q, want %q", KindOf(err), KindCrossShowOverlap)
	}

	// Clean plan passes all three.
	if err := DetectConflicts([]string{"2:00 PM"}, 60, existing, uuid.Nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
