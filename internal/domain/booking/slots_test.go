package booking

import (
	"testing"
)

func TestSlots_FullDay(t *testing.T) {
	// Mon 09:00-17:00, 30 min service: last slot is 16:30 (16:30+30 = 17:00
	// fits exactly); 17:00 itself is excluded.
	slots := Slots(Window{Start: "09:00", End: "17:00"}, 30, nil)

	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[1] != "09:30" {
		t.Fatalf("expected second slot 09:30, got %s", slots[1])
	}
	if slots[len(slots)-1] != "16:30" {
		t.Fatalf("expected last slot 16:30, got %s", slots[len(slots)-1])
	}
}

func TestSlots_DurationMustFitWindow(t *testing.T) {
	// 45 min service in a 09:00-10:00 window: only 09:00 fits
	// (09:30+45 = 10:15 would overrun the window).
	slots := Slots(Window{Start: "09:00", End: "10:00"}, 45, nil)

	if len(slots) != 1 || slots[0] != "09:00" {
		t.Fatalf("expected [09:00], got %v", slots)
	}
}

func TestSlots_ServiceLongerThanWindow(t *testing.T) {
	if slots := Slots(Window{Start: "09:00", End: "09:30"}, 60, nil); slots != nil {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestSlots_SkipsBusyIntervals(t *testing.T) {
	busy := []Interval{{Start: "10:00", End: "10:30"}}
	slots := Slots(Window{Start: "09:00", End: "11:00"}, 30, busy)

	want := []string{"09:00", "09:30", "10:30"}
	if len(slots) != len(want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, slots)
		}
	}
}

func TestSlots_Deterministic(t *testing.T) {
	busy := []Interval{{Start: "12:00", End: "13:15"}}
	a := Slots(Window{Start: "09:00", End: "17:00"}, 45, busy)
	b := Slots(Window{Start: "09:00", End: "17:00"}, 45, busy)

	if len(a) != len(b) {
		t.Fatalf("expected identical output, got %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected identical output, got %v vs %v", a, b)
		}
	}
}

func TestSlots_InvalidInputs(t *testing.T) {
	if got := Slots(Window{Start: "17:00", End: "09:00"}, 30, nil); got != nil {
		t.Fatalf("inverted window: expected nil, got %v", got)
	}
	if got := Slots(Window{Start: "09:00", End: "17:00"}, 0, nil); got != nil {
		t.Fatalf("zero duration: expected nil, got %v", got)
	}
	if got := Slots(Window{Start: "late", End: "17:00"}, 30, nil); got != nil {
		t.Fatalf("garbage clock: expected nil, got %v", got)
	}
}

func TestOverlaps_HalfOpen(t *testing.T) {
	cases := []struct {
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"10:15", "10:45", "10:00", "10:30", true},  // partial overlap
		{"10:30", "11:00", "10:00", "10:30", false}, // adjacent, not overlapping
		{"09:00", "12:00", "10:00", "10:30", true},  // containment
		{"08:00", "09:00", "10:00", "10:30", false}, // disjoint
		{"10:00", "10:30", "10:00", "10:30", true},  // identical
	}

	for _, tc := range cases {
		got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
		if got != tc.want {
			t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
				tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	for _, hm := range []string{"00:00", "09:05", "16:30", "23:59"} {
		min, err := ParseClock(hm)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", hm, err)
		}
		if out := FormatClock(min); out != hm {
			t.Fatalf("round trip %q -> %d -> %q", hm, min, out)
		}
	}

	if _, err := ParseClock("25:00"); err == nil {
		t.Fatal("expected error for 25:00")
	}
	if _, err := ParseClock("bogus"); err == nil {
		t.Fatal("expected error for bogus input")
	}
}
