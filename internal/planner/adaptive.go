package planner

import "fmt"

// PerformanceLog is one appended feedback row for a subject. Pointer fields
// distinguish "not recorded" from zero.
type PerformanceLog struct {
	Subject        string
	MockScore      *float64
	PracticeScore  *float64
	TasksCompleted int
	TasksTotal     int
	StudyHours     float64
}

// Weight-adjustment thresholds on the average recent mock score.
const (
	weakScoreCeiling   = 40.0
	strongScoreFloor   = 80.0
	reviseScoreCeiling = 60.0
	praiseScoreFloor   = 85.0
)

// AdjustWeights proposes new priority weights from recent mock performance:
// averaging below 40 raises the weight (capped at Weak), above 80 lowers it
// (floored at Strong), anything else, or no recorded scores, leaves it
// untouched. The result is a proposal map; stored subject state is never
// mutated here.
func AdjustWeights(subjects []SubjectInput, logs []PerformanceLog) map[string]int {
	proposed := make(map[string]int, len(subjects))
	for _, subject := range subjects {
		weight := subject.Weight
		avg, ok := averageMockScore(subject.Name, logs)
		if ok {
			switch {
			case avg < weakScoreCeiling:
				if weight < WeightWeak {
					weight++
				}
			case avg > strongScoreFloor:
				if weight > WeightStrong {
					weight--
				}
			}
		}
		proposed[subject.Name] = weight
	}
	return proposed
}

// SuggestFocusAreas turns aggregate performance into human-readable
// recommendations, in input subject order. Subjects without any performance
// data stay silent.
func SuggestFocusAreas(subjects []SubjectInput, logs []PerformanceLog) []string {
	var suggestions []string
	for _, subject := range subjects {
		rows := logsFor(subject.Name, logs)
		if len(rows) == 0 {
			continue
		}

		totalTasks := 0
		completedTasks := 0
		for _, r := range rows {
			totalTasks += r.TasksTotal
			completedTasks += r.TasksCompleted
		}
		if totalTasks > 0 {
			completionRate := float64(completedTasks) / float64(totalTasks) * 100
			if completionRate < 50 {
				suggestions = append(suggestions, fmt.Sprintf(
					"%s: Low completion rate (%.0f%%). Try shorter study sessions.",
					subject.Name, completionRate))
			}
		}

		if avg, ok := averageMockScore(subject.Name, logs); ok {
			if avg < reviseScoreCeiling {
				suggestions = append(suggestions, fmt.Sprintf(
					"%s: Score needs improvement (%.0f%%). Schedule extra practice.",
					subject.Name, avg))
			} else if avg > praiseScoreFloor {
				suggestions = append(suggestions, fmt.Sprintf(
					"%s: Excellent progress (%.0f%%)! Maintain consistency.",
					subject.Name, avg))
			}
		}
	}
	return suggestions
}

func logsFor(subject string, logs []PerformanceLog) []PerformanceLog {
	var rows []PerformanceLog
	for _, l := range logs {
		if l.Subject == subject {
			rows = append(rows, l)
		}
	}
	return rows
}

func averageMockScore(subject string, logs []PerformanceLog) (float64, bool) {
	sum := 0.0
	count := 0
	for _, l := range logs {
		if l.Subject == subject && l.MockScore != nil {
			sum += *l.MockScore
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
