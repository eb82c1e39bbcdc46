package planner

import (
	"math"
	"sort"
)

// RoadmapRequest carries the user inputs to the roadmap pipeline. Unknown
// branch and employer-type values resolve to the catalog defaults.
type RoadmapRequest struct {
	Branch         string
	EmployerType   EmployerType
	PrepLevel      PrepLevel
	TargetEmployer string
}

// RoadmapTopic is one ordered entry of a generated roadmap.
type RoadmapTopic struct {
	Name          string
	Category      string
	Level         PrepLevel
	BaseDays      int
	EstimatedDays int
	Weight        float64
	Order         int // 1..N, dense, unique within the roadmap
}

// RoadmapMilestone is a checkpoint after the last topic of a level.
type RoadmapMilestone struct {
	Title           string
	Description     string
	Level           PrepLevel
	AfterTopicOrder int
	CumulativeDays  int
}

// RoadmapSummary condenses a generated roadmap.
type RoadmapSummary struct {
	Branch         string
	EmployerType   EmployerType
	PrepLevel      PrepLevel
	TargetEmployer string
	TopicCount     int
	TotalDays      int
	LevelsIncluded []PrepLevel
}

// Roadmap is the pipeline output.
type Roadmap struct {
	Topics     []RoadmapTopic
	Milestones []RoadmapMilestone
	TotalDays  int
	Summary    RoadmapSummary
}

// GenerateRoadmap runs the six-stage pipeline: load branch topics, apply
// employer-type weights, filter by preparation level, inject employer extras,
// assign order, build milestones. It has no error cases: unknown inputs fall
// back to catalog defaults.
func GenerateRoadmap(catalog *Catalog, req RoadmapRequest) Roadmap {
	topics := loadBranchTopics(catalog, req.Branch)
	topics = applyEmployerWeights(catalog, req.EmployerType, topics)
	topics = filterByLevel(topics, req.PrepLevel)
	if req.TargetEmployer != "" {
		topics = injectEmployerExtras(catalog, req.TargetEmployer, req.PrepLevel, topics)
	}
	topics = assignOrder(topics)
	milestones := buildMilestones(catalog, topics)

	totalDays := 0
	for _, t := range topics {
		totalDays += t.EstimatedDays
	}

	return Roadmap{
		Topics:     topics,
		Milestones: milestones,
		TotalDays:  totalDays,
		Summary: RoadmapSummary{
			Branch:         req.Branch,
			EmployerType:   req.EmployerType,
			PrepLevel:      req.PrepLevel,
			TargetEmployer: req.TargetEmployer,
			TopicCount:     len(topics),
			TotalDays:      totalDays,
			LevelsIncluded: levelsIncluded(topics),
		},
	}
}

// Stage 1: union all per-level entries for the branch, tagging source levels.
func loadBranchTopics(catalog *Catalog, branch string) []RoadmapTopic {
	template := catalog.BranchTopics(branch)
	var topics []RoadmapTopic
	for _, level := range PrepLevels {
		for _, t := range template[level] {
			topics = append(topics, RoadmapTopic{
				Name:     t.Name,
				Category: t.Category,
				Level:    level,
				BaseDays: t.Days,
			})
		}
	}
	return topics
}

// Stage 2: scale durations by the employer-type category multiplier. A
// multiplier below 0.3 marks the category irrelevant for that employer class
// and drops the topic outright.
func applyEmployerWeights(catalog *Catalog, employerType EmployerType, topics []RoadmapTopic) []RoadmapTopic {
	weights := catalog.WeightsFor(employerType)
	out := topics[:0]
	for _, t := range topics {
		w, ok := weights[t.Category]
		if !ok {
			w = 1.0
		}
		if w < 0.3 {
			continue
		}
		t.Weight = w
		t.EstimatedDays = int(math.Max(1, math.Round(float64(t.BaseDays)*w)))
		out = append(out, t)
	}
	return out
}

// Stage 3: keep topics at or below the requester's level, strictly inclusive
// of lower levels.
func filterByLevel(topics []RoadmapTopic, level PrepLevel) []RoadmapTopic {
	maxIdx := level.Index()
	out := topics[:0]
	for _, t := range topics {
		if t.Level.Index() <= maxIdx {
			out = append(out, t)
		}
	}
	return out
}

// Stage 4: append bolt-on topics for the target employer at or below the
// requester's level. Their durations are explicit; no multiplier applies.
func injectEmployerExtras(catalog *Catalog, employer string, level PrepLevel, topics []RoadmapTopic) []RoadmapTopic {
	maxIdx := level.Index()
	for _, ex := range catalog.ExtrasFor(employer) {
		if ex.Level.Index() > maxIdx {
			continue
		}
		topics = append(topics, RoadmapTopic{
			Name:          ex.Name,
			Category:      ex.Category,
			Level:         ex.Level,
			BaseDays:      ex.Days,
			EstimatedDays: ex.Days,
			Weight:        1.0,
		})
	}
	return topics
}

// Stage 5: stable sort by (level, estimated days), insertion order as the
// final tie-break, then number 1..N.
func assignOrder(topics []RoadmapTopic) []RoadmapTopic {
	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].Level.Index() != topics[j].Level.Index() {
			return topics[i].Level.Index() < topics[j].Level.Index()
		}
		return topics[i].EstimatedDays < topics[j].EstimatedDays
	})
	for i := range topics {
		topics[i].Order = i + 1
	}
	return topics
}

// Stage 6: one milestone per template whose level actually has topics, placed
// after the last topic of that level, with day totals cumulative across the
// levels processed so far.
func buildMilestones(catalog *Catalog, topics []RoadmapTopic) []RoadmapMilestone {
	var milestones []RoadmapMilestone
	dayCursor := 0
	for _, tmpl := range catalog.Milestones {
		lastOrder := 0
		levelDays := 0
		for _, t := range topics {
			if t.Level != tmpl.AfterLevel {
				continue
			}
			levelDays += t.EstimatedDays
			if t.Order > lastOrder {
				lastOrder = t.Order
			}
		}
		if lastOrder == 0 {
			continue
		}
		dayCursor += levelDays
		milestones = append(milestones, RoadmapMilestone{
			Title:           tmpl.Title,
			Description:     tmpl.Description,
			Level:           tmpl.AfterLevel,
			AfterTopicOrder: lastOrder,
			CumulativeDays:  dayCursor,
		})
	}
	return milestones
}

func levelsIncluded(topics []RoadmapTopic) []PrepLevel {
	present := map[PrepLevel]bool{}
	for _, t := range topics {
		present[t.Level] = true
	}
	var levels []PrepLevel
	for _, lv := range PrepLevels {
		if present[lv] {
			levels = append(levels, lv)
		}
	}
	return levels
}
