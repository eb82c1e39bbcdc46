package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday, so the 14-day range covers exactly two full weeks.
var scheduleStart = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func fourteenDayRequest() ScheduleRequest {
	return ScheduleRequest{
		Start:      scheduleStart,
		End:        scheduleStart.AddDate(0, 0, 13),
		DailyHours: 3.0,
		Subjects: []SubjectInput{
			{Name: "DSA", Weight: WeightWeak},
			{Name: "Aptitude", Weight: WeightMedium},
			{Name: "Core CS", Weight: WeightStrong},
		},
	}
}

func TestGeneratorMockAndRevisionCadence(t *testing.T) {
	tasks := GenerateAll(fourteenDayRequest())
	require.NotEmpty(t, tasks)

	var mocks, revisions []GeneratedTask
	for _, task := range tasks {
		switch task.Type {
		case TaskMockTest:
			mocks = append(mocks, task)
		case TaskRevision:
			revisions = append(revisions, task)
		}
	}

	require.Len(t, mocks, 2, "days 7 and 14")
	assert.Equal(t, scheduleStart.AddDate(0, 0, 6), mocks[0].Date)
	assert.Equal(t, "Assessment #1", mocks[0].Topic)
	assert.Equal(t, scheduleStart.AddDate(0, 0, 13), mocks[1].Date)
	assert.Equal(t, "Assessment #2", mocks[1].Topic)
	for _, m := range mocks {
		assert.Equal(t, MockTestSubject, m.Subject)
		assert.Equal(t, MockTestMinutes, m.Duration)
	}

	// Days 3, 6, 9, 12; day 14 is not a multiple of 3.
	require.Len(t, revisions, 4)
	for i, r := range revisions {
		assert.Equal(t, scheduleStart.AddDate(0, 0, (i+1)*3-1), r.Date)
		assert.Equal(t, "Mixed Revision – DSA", r.Subject, "DSA has the highest weight")
		assert.Equal(t, RevisionMinutes, r.Duration)
	}
}

func TestGeneratorRespectsDailyCapacity(t *testing.T) {
	tasks := GenerateAll(fourteenDayRequest())
	studyByDay := map[string]int{}
	for _, task := range tasks {
		if task.Type == TaskStudy {
			studyByDay[task.Date.Format("2006-01-02")] += task.Duration
		}
	}
	for day, total := range studyByDay {
		date, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)
		wd := date.Weekday()
		capacity := DailyCapacity(3.0, wd == time.Saturday || wd == time.Sunday)
		assert.LessOrEqual(t, total, capacity, "day %s", day)
	}
}

func TestGeneratorChronologicalSlotOrder(t *testing.T) {
	tasks := GenerateAll(fourteenDayRequest())
	for i := 1; i < len(tasks); i++ {
		prev, cur := tasks[i-1], tasks[i]
		if prev.Date.Equal(cur.Date) {
			assert.LessOrEqual(t, prev.Slot.Start, cur.Slot.Start,
				"intra-day slot order violated on %s", cur.Date.Format("2006-01-02"))
		} else {
			assert.True(t, prev.Date.Before(cur.Date))
		}
	}
}

func TestGeneratorMockDayPushesStudyTasks(t *testing.T) {
	tasks := GenerateAll(fourteenDayRequest())
	mockDate := scheduleStart.AddDate(0, 0, 6)
	for _, task := range tasks {
		if !task.Date.Equal(mockDate) {
			continue
		}
		switch task.Type {
		case TaskMockTest:
			// Second candidate window: 14:00.
			assert.Equal(t, "14:00", task.Slot.StartClock())
		case TaskStudy:
			assert.GreaterOrEqual(t, task.Slot.Start, 18*60,
				"study on a mock day starts at the third window")
		}
	}
}

func TestGeneratorTopicRotation(t *testing.T) {
	req := fourteenDayRequest()
	req.Subjects = []SubjectInput{{Name: "DSA", Weight: WeightWeak}}

	var topics []string
	for _, task := range GenerateAll(req) {
		if task.Type == TaskStudy {
			topics = append(topics, task.Topic)
		}
	}
	require.GreaterOrEqual(t, len(topics), 6)
	bank := []string{"Arrays & Strings", "Linked Lists", "Trees", "Graphs", "DP", "Greedy"}
	for i, topic := range topics {
		assert.Equal(t, bank[i%len(bank)], topic, "session %d", i)
	}
}

func TestGeneratorDeterministicAndRestartable(t *testing.T) {
	first := GenerateAll(fourteenDayRequest())
	second := GenerateAll(fourteenDayRequest())
	assert.Equal(t, first, second)

	// Partial consumption matches the prefix of a full drain.
	gen := NewScheduleGenerator(fourteenDayRequest())
	for i := 0; i < 5; i++ {
		task, ok := gen.Next()
		require.True(t, ok)
		assert.Equal(t, first[i], task)
	}
}

func TestGeneratorEmptySubjects(t *testing.T) {
	req := fourteenDayRequest()
	req.Subjects = nil
	tasks := GenerateAll(req)
	// No study tasks and no revision targets; only the weekly mocks remain.
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, TaskMockTest, task.Type)
	}
}

func TestGeneratorSingleDayRange(t *testing.T) {
	req := fourteenDayRequest()
	req.End = req.Start
	tasks := GenerateAll(req)
	require.NotEmpty(t, tasks)
	for _, task := range tasks {
		assert.Equal(t, TaskStudy, task.Type, "day 1 has no mock and no revision")
		assert.True(t, task.Date.Equal(req.Start))
	}
}

func TestGeneratorBusyWindowsReduceStudySlots(t *testing.T) {
	req := fourteenDayRequest()
	college, _ := ParseClock("09:00")
	collegeEnd, _ := ParseClock("19:00")
	req.Resolver = SlotResolver{College: &BusyWindow{Start: college, End: collegeEnd}}

	tasks := GenerateAll(req)
	for _, task := range tasks {
		wd := task.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		// Weekdays keep only the 06:00 and 20:00 windows.
		ok := task.Slot.StartClock() == "06:00" || task.Slot.StartClock() == "20:00"
		assert.True(t, ok, "unexpected weekday slot %s", task.Slot.StartClock())
	}
}
