package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyCapacity(t *testing.T) {
	tests := []struct {
		name    string
		hours   float64
		weekend bool
		want    int
	}{
		{"weekday 3h", 3.0, false, 180},
		{"weekend 3h gets 1.5x", 3.0, true, 270},
		{"weekend bonus capped at 4h", 3.5, true, 240},
		{"weekday clamped to 4h", 6.0, false, 240},
		{"weekend clamped to 4h", 6.0, true, 240},
		{"negative treated as zero", -1.0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DailyCapacity(tt.hours, tt.weekend))
		})
	}
}

func TestAllocateDayProportional(t *testing.T) {
	subjects := []SubjectInput{
		{Name: "DSA", Weight: WeightWeak},
		{Name: "Aptitude", Weight: WeightMedium},
		{Name: "Core CS", Weight: WeightStrong},
	}
	allocs := AllocateDay(subjects, 180)
	require.Len(t, allocs, 3)
	assert.Equal(t, 90, allocs[0].Minutes)
	assert.Equal(t, 60, allocs[1].Minutes)
	assert.Equal(t, 30, allocs[2].Minutes)
}

func TestAllocateDayNeverExceedsCapacity(t *testing.T) {
	weights := [][]int{
		{3, 2, 1}, {3, 3, 3}, {1, 1, 1, 1, 1}, {2}, {3, 1}, {3, 2, 2, 1, 1},
	}
	for _, ws := range weights {
		for _, capacity := range []int{90, 120, 180, 240} {
			var subjects []SubjectInput
			for i, w := range ws {
				subjects = append(subjects, SubjectInput{Name: string(rune('A' + i)), Weight: w})
			}
			total := 0
			for _, a := range AllocateDay(subjects, capacity) {
				total += a.Minutes
			}
			assert.LessOrEqual(t, total, capacity, "weights %v capacity %d", ws, capacity)
		}
	}
}

func TestAllocateDayDropsShortSessions(t *testing.T) {
	// Strong subject's share of 120 min at weights 3+2+1 is 20 min, under
	// the 30-minute floor, so it is dropped entirely.
	subjects := []SubjectInput{
		{Name: "DSA", Weight: WeightWeak},
		{Name: "Aptitude", Weight: WeightMedium},
		{Name: "Core CS", Weight: WeightStrong},
	}
	allocs := AllocateDay(subjects, 120)
	require.Len(t, allocs, 2)
	assert.Equal(t, "DSA", allocs[0].Name)
	assert.Equal(t, "Aptitude", allocs[1].Name)
}

func TestAllocateDayPreservesInputOrder(t *testing.T) {
	subjects := []SubjectInput{
		{Name: "Core CS", Weight: WeightStrong},
		{Name: "DSA", Weight: WeightWeak},
	}
	allocs := AllocateDay(subjects, 240)
	require.Len(t, allocs, 2)
	// The engine never re-sorts by weight; input order holds.
	assert.Equal(t, "Core CS", allocs[0].Name)
	assert.Equal(t, "DSA", allocs[1].Name)
}

func TestAllocateDayEmptyAndZeroInputs(t *testing.T) {
	assert.Nil(t, AllocateDay(nil, 180))
	assert.Nil(t, AllocateDay([]SubjectInput{{Name: "X", Weight: 0}}, 180))
	assert.Nil(t, AllocateDay([]SubjectInput{{Name: "X", Weight: 2}}, 0))
}
