package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoadmapOrderIsDensePermutation(t *testing.T) {
	catalog := DefaultCatalog()
	for _, branch := range []string{"CSE", "ECE", "Mechanical", "EEE", "Civil", "IT"} {
		for _, et := range []EmployerType{EmployerService, EmployerProduct, EmployerCore} {
			for _, level := range PrepLevels {
				roadmap := GenerateRoadmap(catalog, RoadmapRequest{
					Branch: branch, EmployerType: et, PrepLevel: level,
				})
				seen := map[int]bool{}
				prevLevel := 0
				for _, topic := range roadmap.Topics {
					assert.False(t, seen[topic.Order], "%s/%s/%s: duplicate order %d", branch, et, level, topic.Order)
					seen[topic.Order] = true
					assert.GreaterOrEqual(t, topic.Level.Index(), prevLevel,
						"%s/%s/%s: level index decreased", branch, et, level)
					prevLevel = topic.Level.Index()
				}
				for i := 1; i <= len(roadmap.Topics); i++ {
					assert.True(t, seen[i], "%s/%s/%s: missing order %d", branch, et, level, i)
				}
			}
		}
	}
}

func TestGenerateRoadmapBeginnerCSEProduct(t *testing.T) {
	roadmap := GenerateRoadmap(DefaultCatalog(), RoadmapRequest{
		Branch:       "CSE",
		EmployerType: EmployerProduct,
		PrepLevel:    LevelBeginner,
	})

	require.NotEmpty(t, roadmap.Topics)
	for _, topic := range roadmap.Topics {
		assert.Equal(t, LevelBeginner, topic.Level, "level filter must keep beginner only")
	}

	var arrays *RoadmapTopic
	for i := range roadmap.Topics {
		if roadmap.Topics[i].Name == "Arrays & Strings" {
			arrays = &roadmap.Topics[i]
		}
	}
	require.NotNil(t, arrays)
	// dsa multiplier 1.5 on a 4-day base: round(4*1.5) = 6.
	assert.Equal(t, 6, arrays.EstimatedDays)
	assert.Equal(t, 1.5, arrays.Weight)

	assert.Equal(t, []PrepLevel{LevelBeginner}, roadmap.Summary.LevelsIncluded)
	assert.Equal(t, len(roadmap.Topics), roadmap.Summary.TopicCount)
}

func TestGenerateRoadmapLevelFilterIsInclusiveDownward(t *testing.T) {
	catalog := DefaultCatalog()

	intermediate := GenerateRoadmap(catalog, RoadmapRequest{
		Branch: "CSE", EmployerType: EmployerService, PrepLevel: LevelIntermediate,
	})
	levels := map[PrepLevel]bool{}
	for _, topic := range intermediate.Topics {
		levels[topic.Level] = true
	}
	assert.True(t, levels[LevelBeginner])
	assert.True(t, levels[LevelIntermediate])
	assert.False(t, levels[LevelAdvanced])

	advanced := GenerateRoadmap(catalog, RoadmapRequest{
		Branch: "CSE", EmployerType: EmployerService, PrepLevel: LevelAdvanced,
	})
	assert.Greater(t, len(advanced.Topics), len(intermediate.Topics))
}

func TestGenerateRoadmapDropsIrrelevantCategories(t *testing.T) {
	catalog := &Catalog{
		Branches: map[string]map[PrepLevel][]CatalogTopic{
			DefaultBranch: {
				LevelBeginner: {
					{Name: "Kept", Days: 4, Category: "relevant"},
					{Name: "Dropped", Days: 4, Category: "irrelevant"},
				},
			},
		},
		EmployerWeights: map[EmployerType]map[string]float64{
			DefaultEmployerType: {"relevant": 1.0, "irrelevant": 0.2},
		},
		Milestones: []MilestoneTemplate{
			{AfterLevel: LevelBeginner, Title: "Foundation Complete"},
		},
	}

	roadmap := GenerateRoadmap(catalog, RoadmapRequest{
		Branch: DefaultBranch, EmployerType: DefaultEmployerType, PrepLevel: LevelBeginner,
	})
	require.Len(t, roadmap.Topics, 1)
	assert.Equal(t, "Kept", roadmap.Topics[0].Name)
}

func TestGenerateRoadmapMinimumOneDay(t *testing.T) {
	catalog := &Catalog{
		Branches: map[string]map[PrepLevel][]CatalogTopic{
			DefaultBranch: {
				LevelBeginner: {{Name: "Tiny", Days: 1, Category: "minor"}},
			},
		},
		EmployerWeights: map[EmployerType]map[string]float64{
			DefaultEmployerType: {"minor": 0.3},
		},
	}

	roadmap := GenerateRoadmap(catalog, RoadmapRequest{
		Branch: DefaultBranch, EmployerType: DefaultEmployerType, PrepLevel: LevelBeginner,
	})
	require.Len(t, roadmap.Topics, 1)
	assert.Equal(t, 1, roadmap.Topics[0].EstimatedDays)
}

func TestGenerateRoadmapUnknownKeysFallBack(t *testing.T) {
	catalog := DefaultCatalog()

	fromUnknown := GenerateRoadmap(catalog, RoadmapRequest{
		Branch: "Astrophysics", EmployerType: "startup", PrepLevel: LevelBeginner,
	})
	fromDefaults := GenerateRoadmap(catalog, RoadmapRequest{
		Branch: DefaultBranch, EmployerType: DefaultEmployerType, PrepLevel: LevelBeginner,
	})

	require.Equal(t, len(fromDefaults.Topics), len(fromUnknown.Topics))
	for i := range fromDefaults.Topics {
		assert.Equal(t, fromDefaults.Topics[i].Name, fromUnknown.Topics[i].Name)
		assert.Equal(t, fromDefaults.Topics[i].EstimatedDays, fromUnknown.Topics[i].EstimatedDays)
	}
}

func TestGenerateRoadmapEmployerExtras(t *testing.T) {
	catalog := DefaultCatalog()

	withExtras := GenerateRoadmap(catalog, RoadmapRequest{
		Branch: "CSE", EmployerType: EmployerProduct, PrepLevel: LevelAdvanced,
		TargetEmployer: "Google",
	})
	names := map[string]RoadmapTopic{}
	for _, topic := range withExtras.Topics {
		names[topic.Name] = topic
	}
	require.Contains(t, names, "Google Coding Practice – LC Medium/Hard")
	require.Contains(t, names, "Google System Design Rounds")
	// Extras keep their explicit duration, no multiplier applied.
	assert.Equal(t, 5, names["Google Coding Practice – LC Medium/Hard"].EstimatedDays)

	// Advanced-only extras do not leak into a beginner roadmap.
	beginner := GenerateRoadmap(catalog, RoadmapRequest{
		Branch: "CSE", EmployerType: EmployerProduct, PrepLevel: LevelBeginner,
		TargetEmployer: "Google",
	})
	for _, topic := range beginner.Topics {
		assert.NotContains(t, topic.Name, "Google")
	}
}

func TestGenerateRoadmapMilestones(t *testing.T) {
	roadmap := GenerateRoadmap(DefaultCatalog(), RoadmapRequest{
		Branch: "CSE", EmployerType: EmployerService, PrepLevel: LevelAdvanced,
	})
	require.Len(t, roadmap.Milestones, 3)

	titles := []string{"Foundation Complete", "Core Skills Mastered", "Placement Ready"}
	cumulative := 0
	prevOrder := 0
	for i, ms := range roadmap.Milestones {
		assert.Equal(t, titles[i], ms.Title)
		assert.Greater(t, ms.AfterTopicOrder, prevOrder)
		prevOrder = ms.AfterTopicOrder

		levelDays := 0
		lastOrder := 0
		for _, topic := range roadmap.Topics {
			if topic.Level == ms.Level {
				levelDays += topic.EstimatedDays
				if topic.Order > lastOrder {
					lastOrder = topic.Order
				}
			}
		}
		cumulative += levelDays
		assert.Equal(t, cumulative, ms.CumulativeDays)
		assert.Equal(t, lastOrder, ms.AfterTopicOrder)
	}

	// The final milestone covers every topic.
	assert.Equal(t, len(roadmap.Topics), roadmap.Milestones[2].AfterTopicOrder)
	assert.Equal(t, roadmap.TotalDays, roadmap.Milestones[2].CumulativeDays)
}

func TestGenerateRoadmapIsDeterministic(t *testing.T) {
	catalog := DefaultCatalog()
	req := RoadmapRequest{
		Branch: "ECE", EmployerType: EmployerCore, PrepLevel: LevelAdvanced,
		TargetEmployer: "TCS",
	}
	first := GenerateRoadmap(catalog, req)
	second := GenerateRoadmap(catalog, req)
	assert.Equal(t, first, second)
}
