package planner

import (
	"fmt"
	"time"
)

// Slot is a candidate study window within a day, expressed in minutes since
// midnight as a half-open interval [Start, End).
type Slot struct {
	Start int
	End   int
}

// StartClock renders the slot start as a wall-clock "HH:MM" string.
func (s Slot) StartClock() string {
	return fmt.Sprintf("%02d:%02d", s.Start/60, s.Start%60)
}

// The four fixed candidate windows: early morning, afternoon, evening, night.
var defaultSlots = []Slot{
	{Start: 6 * 60, End: 8 * 60},
	{Start: 14 * 60, End: 16 * 60},
	{Start: 18 * 60, End: 20 * 60},
	{Start: 20 * 60, End: 22 * 60},
}

// fallbackSlot guarantees scheduling never stalls when every candidate is
// filtered out by busy windows.
var fallbackSlot = Slot{Start: 20 * 60, End: 22 * 60}

// BusyWindow is a recurring unavailable interval. A college window applies on
// weekdays only; a work window applies every day.
type BusyWindow struct {
	Start int
	End   int
}

// Overlaps reports half-open interval overlap with a slot.
func (w BusyWindow) Overlaps(s Slot) bool {
	return s.Start < w.End && w.Start < s.End
}

// ParseClock converts a "HH:MM" string to minutes since midnight. Malformed
// input yields (0, false); callers treat that as "window not configured".
func ParseClock(clock string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// SlotResolver filters the fixed candidate windows against a user's busy
// windows. The zero value (no busy windows) returns all candidates
// unfiltered.
type SlotResolver struct {
	College *BusyWindow // weekdays only
	Work    *BusyWindow // any day
}

// ResolveDay returns the available slots for a calendar date, in window
// order. If filtering removes every candidate, the guaranteed night window
// is returned alone.
func (r SlotResolver) ResolveDay(date time.Time) []Slot {
	if r.College == nil && r.Work == nil {
		out := make([]Slot, len(defaultSlots))
		copy(out, defaultSlots)
		return out
	}

	wd := date.Weekday()
	isWeekend := wd == time.Saturday || wd == time.Sunday

	var available []Slot
	for _, slot := range defaultSlots {
		if !isWeekend && r.College != nil && r.College.Overlaps(slot) {
			continue
		}
		if r.Work != nil && r.Work.Overlaps(slot) {
			continue
		}
		available = append(available, slot)
	}

	if len(available) == 0 {
		return []Slot{fallbackSlot}
	}
	return available
}
