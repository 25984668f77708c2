package booking

import "fmt"

// SlotStepMinutes is the fixed grid on which candidate start times are
// generated. Part of the public booking contract.
const SlotStepMinutes = 30

// Window is a staff member's availability for one weekday, as local
// wall-clock "HH:MM" strings.
type Window struct {
	Start string
	End   string
}

// Interval is a busy range (reservation or blocked slot) on one date,
// half-open: [Start, End).
type Interval struct {
	Start string
	End   string
}

// Slots enumerates bookable start times within the window for a service of
// durationMin minutes, skipping candidates that overlap a busy interval.
// A candidate s is kept only when s+duration still fits inside the window
// (s + d <= window end). Output is ascending "HH:MM"; pure function.
func Slots(win Window, durationMin int, busy []Interval) []string {
	start, err := ParseClock(win.Start)
	if err != nil {
		return nil
	}
	end, err := ParseClock(win.End)
	if err != nil {
		return nil
	}
	if durationMin <= 0 || start >= end {
		return nil
	}

	var slots []string
	for s := start; s+durationMin <= end; s += SlotStepMinutes {
		if overlapsAny(s, s+durationMin, busy) {
			continue
		}
		slots = append(slots, FormatClock(s))
	}
	return slots
}

// Overlaps reports whether [aStart,aEnd) and [bStart,bEnd) intersect, all
// values "HH:MM". Fixed-width clock strings compare lexicographically.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

func overlapsAny(start, end int, busy []Interval) bool {
	s := FormatClock(start)
	e := FormatClock(end)
	for _, b := range busy {
		if Overlaps(s, e, b.Start, b.End) {
			return true
		}
	}
	return false
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(hm string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock out of range: %q", hm)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
