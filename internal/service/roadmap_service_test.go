package service

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func topic(order int, status model.TopicStatus) model.RoadmapTopic {
	return model.RoadmapTopic{OrderSequence: order, Status: status}
}

func TestMilestoneReached(t *testing.T) {
	milestone := model.RoadmapMilestone{AfterTopicOrder: 3}

	t.Run("all topics in range completed", func(t *testing.T) {
		topics := []model.RoadmapTopic{
			topic(1, model.TopicCompleted),
			topic(2, model.TopicCompleted),
			topic(3, model.TopicCompleted),
			topic(4, model.TopicNotStarted),
		}
		assert.True(t, MilestoneReached(milestone, topics))
	})

	t.Run("one topic in range incomplete", func(t *testing.T) {
		topics := []model.RoadmapTopic{
			topic(1, model.TopicCompleted),
			topic(2, model.TopicInProgress),
			topic(3, model.TopicCompleted),
		}
		assert.False(t, MilestoneReached(milestone, topics))
	})

	t.Run("topics beyond threshold ignored", func(t *testing.T) {
		topics := []model.RoadmapTopic{
			topic(1, model.TopicCompleted),
			topic(2, model.TopicCompleted),
			topic(3, model.TopicCompleted),
			topic(4, model.TopicInProgress),
			topic(5, model.TopicNotStarted),
		}
		assert.True(t, MilestoneReached(milestone, topics))
	})

	t.Run("no topics in range", func(t *testing.T) {
		topics := []model.RoadmapTopic{
			topic(4, model.TopicCompleted),
		}
		assert.False(t, MilestoneReached(milestone, topics))
	})

	t.Run("empty roadmap", func(t *testing.T) {
		assert.False(t, MilestoneReached(milestone, nil))
	})
}

func TestNoRoadmapMapsRecordNotFound(t *testing.T) {
	assert.ErrorIs(t, noRoadmap(gorm.ErrRecordNotFound), util.ErrNoRoadmap)

	wrapped := fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)
	assert.ErrorIs(t, noRoadmap(wrapped), util.ErrNoRoadmap)

	other := errors.New("connection refused")
	assert.Equal(t, other, noRoadmap(other))
}

// Random walk over topic statuses: after every flip the derived flag must
// match a brute-force recount, in both directions.
func TestMilestoneReachedRandomFlips(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	statuses := []model.TopicStatus{
		model.TopicNotStarted,
		model.TopicInProgress,
		model.TopicCompleted,
	}

	for _, threshold := range []int{1, 4, 7, 12} {
		milestone := model.RoadmapMilestone{AfterTopicOrder: threshold}
		topics := make([]model.RoadmapTopic, 12)
		for i := range topics {
			topics[i] = topic(i+1, model.TopicNotStarted)
		}

		for flip := 0; flip < 500; flip++ {
			i := rng.Intn(len(topics))
			topics[i].Status = statuses[rng.Intn(len(statuses))]

			inRange, completed := 0, 0
			for _, tp := range topics {
				if tp.OrderSequence > threshold {
					continue
				}
				inRange++
				if tp.Status == model.TopicCompleted {
					completed++
				}
			}
			want := inRange > 0 && completed == inRange
			assert.Equal(t, want, MilestoneReached(milestone, topics),
				"threshold %d flip %d", threshold, flip)
		}
	}
}
