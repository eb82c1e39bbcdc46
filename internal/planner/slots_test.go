package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tuesday  = time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC)
)

func window(start, end string) *BusyWindow {
	s, ok := ParseClock(start)
	if !ok {
		panic("bad start " + start)
	}
	e, ok := ParseClock(end)
	if !ok {
		panic("bad end " + end)
	}
	return &BusyWindow{Start: s, End: e}
}

func TestParseClock(t *testing.T) {
	m, ok := ParseClock("09:30")
	require.True(t, ok)
	assert.Equal(t, 570, m)

	for _, bad := range []string{"", "9h30", "25:00", "12:60"} {
		_, ok := ParseClock(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestResolveDayNoConstraints(t *testing.T) {
	slots := SlotResolver{}.ResolveDay(tuesday)
	require.Len(t, slots, 4)
	assert.Equal(t, "06:00", slots[0].StartClock())
	assert.Equal(t, "14:00", slots[1].StartClock())
	assert.Equal(t, "18:00", slots[2].StartClock())
	assert.Equal(t, "20:00", slots[3].StartClock())
}

func TestResolveDayCollegeWeekday(t *testing.T) {
	// 09:00–17:00 college hours overlap only the afternoon window.
	r := SlotResolver{College: window("09:00", "17:00")}

	weekday := r.ResolveDay(tuesday)
	require.Len(t, weekday, 3)
	for _, s := range weekday {
		assert.NotEqual(t, "14:00", s.StartClock())
	}

	// College is inactive on weekends: all four candidates come back.
	weekend := r.ResolveDay(saturday)
	assert.Len(t, weekend, 4)
}

func TestResolveDayWorkAppliesEveryDay(t *testing.T) {
	r := SlotResolver{Work: window("13:00", "21:00")}
	for _, date := range []time.Time{tuesday, saturday} {
		slots := r.ResolveDay(date)
		require.Len(t, slots, 1, "only the early-morning window clears 13:00–21:00")
		assert.Equal(t, "06:00", slots[0].StartClock())
	}
}

func TestResolveDayFallbackWindow(t *testing.T) {
	// A busy window covering the whole day filters every candidate; the
	// resolver must still hand back the guaranteed night slot.
	r := SlotResolver{Work: window("00:00", "23:59")}
	slots := r.ResolveDay(tuesday)
	require.Len(t, slots, 1)
	assert.Equal(t, "20:00", slots[0].StartClock())
	assert.Equal(t, 22*60, slots[0].End)
}

func TestOverlapIsHalfOpen(t *testing.T) {
	slot := Slot{Start: 14 * 60, End: 16 * 60}
	assert.False(t, BusyWindow{Start: 16 * 60, End: 18 * 60}.Overlaps(slot), "touching intervals do not overlap")
	assert.False(t, BusyWindow{Start: 12 * 60, End: 14 * 60}.Overlaps(slot))
	assert.True(t, BusyWindow{Start: 15 * 60, End: 15*60 + 30}.Overlaps(slot))
	assert.True(t, BusyWindow{Start: 13 * 60, End: 17 * 60}.Overlaps(slot))
}
