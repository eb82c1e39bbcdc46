package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCurrentStreak(t *testing.T) {
	now := day("2025-09-10").Add(15 * time.Hour)

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no completions", nil, 0},
		{"today only", []string{"2025-09-10"}, 1},
		{"anchored at yesterday", []string{"2025-09-09"}, 1},
		{"run through today", []string{"2025-09-10", "2025-09-09", "2025-09-08"}, 3},
		{"run through yesterday", []string{"2025-09-09", "2025-09-08", "2025-09-07"}, 3},
		{"gap breaks the run", []string{"2025-09-10", "2025-09-09", "2025-09-07"}, 2},
		{"stale history", []string{"2025-09-05", "2025-09-04"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := make([]time.Time, len(tt.dates))
			for i, s := range tt.dates {
				dates[i] = day(s)
			}
			assert.Equal(t, tt.want, currentStreak(dates, now))
		})
	}
}

func TestCurrentStreakIgnoresTimeOfDay(t *testing.T) {
	now := day("2025-09-10").Add(23*time.Hour + 59*time.Minute)
	dates := []time.Time{day("2025-09-10").Add(6 * time.Hour)}
	assert.Equal(t, 1, currentStreak(dates, now))
}
