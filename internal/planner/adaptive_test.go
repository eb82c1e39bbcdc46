package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustWeights(t *testing.T) {
	subjects := []SubjectInput{
		{Name: "DSA", Weight: 2},
		{Name: "Aptitude", Weight: 2},
		{Name: "Core CS", Weight: 2},
		{Name: "Verbal", Weight: 2},
	}
	logs := []PerformanceLog{
		{Subject: "DSA", MockScore: f(30)},
		{Subject: "DSA", MockScore: f(35)},
		{Subject: "Aptitude", MockScore: f(95)},
		{Subject: "Core CS", MockScore: f(55)},
		// No rows at all for Verbal.
	}

	proposed := AdjustWeights(subjects, logs)
	assert.Equal(t, 3, proposed["DSA"], "avg 32.5 < 40 raises the weight")
	assert.Equal(t, 1, proposed["Aptitude"], "avg 95 > 80 lowers the weight")
	assert.Equal(t, 2, proposed["Core CS"], "mid-range average leaves it alone")
	assert.Equal(t, 2, proposed["Verbal"], "no data leaves it alone")
}

func TestAdjustWeightsBounds(t *testing.T) {
	subjects := []SubjectInput{
		{Name: "AlreadyWeak", Weight: WeightWeak},
		{Name: "AlreadyStrong", Weight: WeightStrong},
	}
	logs := []PerformanceLog{
		{Subject: "AlreadyWeak", MockScore: f(10)},
		{Subject: "AlreadyStrong", MockScore: f(99)},
	}
	proposed := AdjustWeights(subjects, logs)
	assert.Equal(t, WeightWeak, proposed["AlreadyWeak"], "capped at 3")
	assert.Equal(t, WeightStrong, proposed["AlreadyStrong"], "floored at 1")
}

func TestAdjustWeightsIgnoresRowsWithoutMockScore(t *testing.T) {
	subjects := []SubjectInput{{Name: "DSA", Weight: 2}}
	logs := []PerformanceLog{
		{Subject: "DSA", TasksTotal: 5, TasksCompleted: 1}, // no mock score
	}
	assert.Equal(t, 2, AdjustWeights(subjects, logs)["DSA"])
}

func TestSuggestFocusAreas(t *testing.T) {
	subjects := []SubjectInput{
		{Name: "DSA", Weight: 3},
		{Name: "Aptitude", Weight: 2},
		{Name: "Core CS", Weight: 1},
		{Name: "Silent", Weight: 2},
	}
	logs := []PerformanceLog{
		{Subject: "DSA", MockScore: f(45), TasksTotal: 10, TasksCompleted: 3},
		{Subject: "Aptitude", MockScore: f(92), TasksTotal: 8, TasksCompleted: 8},
		{Subject: "Core CS", MockScore: f(70), TasksTotal: 6, TasksCompleted: 5},
	}

	suggestions := SuggestFocusAreas(subjects, logs)
	require.Len(t, suggestions, 3)
	// DSA: 30% completion warning, then the low-score note; then Aptitude's
	// praise. Output follows the input subject order.
	assert.Contains(t, suggestions[0], "DSA: Low completion rate (30%)")
	assert.Contains(t, suggestions[1], "DSA: Score needs improvement (45%)")
	assert.Contains(t, suggestions[2], "Aptitude: Excellent progress (92%)")
}

func TestSuggestFocusAreasNoDataNoNoise(t *testing.T) {
	subjects := []SubjectInput{{Name: "DSA", Weight: 2}}
	assert.Empty(t, SuggestFocusAreas(subjects, nil))
}
