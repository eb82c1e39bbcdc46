package planner

import "math"

// Readiness tiers shared by both scoring policies.
const (
	TierPlacementReady   = "Placement Ready"
	TierAlmostThere      = "Almost There"
	TierBuildingMomentum = "Building Momentum"
	TierGettingStarted   = "Getting Started"
	TierNotStarted       = "Not Started"
)

// Readiness is a 0–100 composite preparedness estimate with its tier label
// and per-factor breakdown.
type Readiness struct {
	Score     float64            `json:"score"`
	Tier      string             `json:"tier"`
	Breakdown map[string]float64 `json:"breakdown"`
}

func tierFor(score float64) string {
	switch {
	case score >= 80:
		return TierPlacementReady
	case score >= 60:
		return TierAlmostThere
	case score >= 35:
		return TierBuildingMomentum
	default:
		return TierGettingStarted
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RoadmapReadiness scores topic-completion progress against the expected
// linear pace: 70% completion, 30% pace. With no topics at all the result is
// the zero score with the "Not Started" tier.
func RoadmapReadiness(totalTopics, completedTopics, totalDays, elapsedDays int) Readiness {
	if totalTopics == 0 {
		return Readiness{
			Score: 0,
			Tier:  TierNotStarted,
			Breakdown: map[string]float64{
				"completion_pct": 0,
				"pace_score":     0,
			},
		}
	}

	completionPct := float64(completedTopics) / float64(totalTopics) * 100

	// Expected topics by now, assuming a linear pace over the plan.
	expectedRate := float64(totalTopics) / math.Max(float64(totalDays), 1)
	expectedByNow := expectedRate * float64(elapsedDays)
	paceScore := math.Min(100, float64(completedTopics)/math.Max(1, expectedByNow)*100)

	score := completionPct*0.70 + paceScore*0.30

	return Readiness{
		Score: round1(score),
		Tier:  tierFor(score),
		Breakdown: map[string]float64{
			"completion_pct": round1(completionPct),
			"pace_score":     round1(paceScore),
		},
	}
}

// SubjectPerformance is a subject's cumulative performance score as stored
// by the feedback loop.
type SubjectPerformance struct {
	Subject string
	Score   float64
}

// ScheduleReadiness is the schedule-side policy: 60% average subject
// performance, 25% streak consistency (5 points per day, capped at 100),
// 15% average mock score across performance logs.
func ScheduleReadiness(subjects []SubjectPerformance, logs []PerformanceLog, currentStreak int) Readiness {
	avgSubject := 0.0
	if len(subjects) > 0 {
		for _, s := range subjects {
			avgSubject += s.Score
		}
		avgSubject /= float64(len(subjects))
	}

	consistency := math.Min(float64(currentStreak)*5, 100)

	avgMock := 0.0
	mockCount := 0
	for _, l := range logs {
		if l.MockScore != nil {
			avgMock += *l.MockScore
			mockCount++
		}
	}
	if mockCount > 0 {
		avgMock /= float64(mockCount)
	}

	score := avgSubject*0.60 + consistency*0.25 + avgMock*0.15

	return Readiness{
		Score: round1(score),
		Tier:  tierFor(score),
		Breakdown: map[string]float64{
			"subject_performance": round1(avgSubject),
			"consistency":         round1(consistency),
			"mock_tests":          round1(avgMock),
		},
	}
}
