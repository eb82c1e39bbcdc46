package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestRoadmapReadinessNotStarted(t *testing.T) {
	for _, tc := range []struct{ totalDays, elapsed int }{
		{0, 0}, {30, 0}, {0, 10}, {90, 45},
	} {
		r := RoadmapReadiness(0, 0, tc.totalDays, tc.elapsed)
		assert.Equal(t, 0.0, r.Score)
		assert.Equal(t, TierNotStarted, r.Tier)
	}
}

func TestRoadmapReadinessCompletedOnPace(t *testing.T) {
	// 10 topics over 10 days, 5 done after 5 days: completion 50, pace 100.
	r := RoadmapReadiness(10, 5, 10, 5)
	assert.Equal(t, 50.0, r.Breakdown["completion_pct"])
	assert.Equal(t, 100.0, r.Breakdown["pace_score"])
	assert.Equal(t, 65.0, r.Score) // 50*0.7 + 100*0.3
	assert.Equal(t, TierAlmostThere, r.Tier)
}

func TestRoadmapReadinessAllDone(t *testing.T) {
	r := RoadmapReadiness(8, 8, 40, 20)
	assert.Equal(t, 100.0, r.Breakdown["completion_pct"])
	assert.Equal(t, 100.0, r.Score)
	assert.Equal(t, TierPlacementReady, r.Tier)
}

func TestRoadmapReadinessBehindPace(t *testing.T) {
	// 20 topics over 20 days, only 2 done after 10 days.
	r := RoadmapReadiness(20, 2, 20, 10)
	assert.Equal(t, 10.0, r.Breakdown["completion_pct"])
	assert.Equal(t, 20.0, r.Breakdown["pace_score"]) // 2/10 * 100
	assert.Equal(t, 13.0, r.Score)
	assert.Equal(t, TierGettingStarted, r.Tier)
}

func TestRoadmapReadinessZeroTotalDaysGuard(t *testing.T) {
	r := RoadmapReadiness(10, 3, 0, 5)
	assert.Equal(t, TierBuildingMomentum, r.Tier)
	assert.InDelta(t, 30.0, r.Breakdown["completion_pct"], 0.01)
}

func TestScheduleReadinessComposite(t *testing.T) {
	subjects := []SubjectPerformance{
		{Subject: "DSA", Score: 80},
		{Subject: "Aptitude", Score: 60},
	}
	logs := []PerformanceLog{
		{Subject: "DSA", MockScore: f(90)},
		{Subject: "Aptitude", MockScore: f(70)},
		{Subject: "Aptitude"}, // no mock score recorded, excluded from average
	}

	r := ScheduleReadiness(subjects, logs, 4)
	assert.Equal(t, 70.0, r.Breakdown["subject_performance"])
	assert.Equal(t, 20.0, r.Breakdown["consistency"]) // 4*5
	assert.Equal(t, 80.0, r.Breakdown["mock_tests"])
	assert.Equal(t, 59.0, r.Score) // 70*0.6 + 20*0.25 + 80*0.15
	assert.Equal(t, TierBuildingMomentum, r.Tier)
}

func TestScheduleReadinessStreakCapped(t *testing.T) {
	r := ScheduleReadiness(nil, nil, 365)
	assert.Equal(t, 100.0, r.Breakdown["consistency"])
	assert.Equal(t, 25.0, r.Score)
}

func TestScheduleReadinessEmptyInputs(t *testing.T) {
	r := ScheduleReadiness(nil, nil, 0)
	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, TierGettingStarted, r.Tier)
}
