package planner

import (
	"fmt"
	"sort"
	"time"
)

// TaskType classifies a generated study task.
type TaskType string

const (
	TaskStudy    TaskType = "study"
	TaskRevision TaskType = "revision"
	TaskMockTest TaskType = "mock_test"
	TaskPractice TaskType = "practice"
)

// Task durations that do not come from the allocation engine.
const (
	MockTestMinutes = 90
	RevisionMinutes = 45
)

// Synthetic subject labels for non-study tasks.
const (
	MockTestSubject      = "Full Mock Test"
	RevisionSubjectLabel = "Mixed Revision – %s"
)

// GeneratedTask is one emitted calendar task.
type GeneratedTask struct {
	Date     time.Time
	Slot     Slot
	Subject  string
	Topic    string
	Type     TaskType
	Duration int // minutes
}

// ScheduleRequest is the full input to the calendar generator.
type ScheduleRequest struct {
	Start      time.Time
	End        time.Time // inclusive
	DailyHours float64
	Subjects   []SubjectInput
	Resolver   SlotResolver
}

// Built-in per-subject topic banks. A subject's running session counter
// indexes its bank cyclically; subjects without a bank rotate through a
// generic one.
var topicBanks = map[string][]string{
	"DSA":         {"Arrays & Strings", "Linked Lists", "Trees", "Graphs", "DP", "Greedy"},
	"Aptitude":    {"Quantitative", "Logical Reasoning", "Verbal", "Data Interpretation"},
	"Core CS":     {"OS Concepts", "DBMS", "Networks", "OOP"},
	"Programming": {"Java Basics", "Python", "Problem Solving", "Code Practice"},
}

func topicFor(subject string, session int) string {
	if bank, ok := topicBanks[subject]; ok {
		return bank[session%len(bank)]
	}
	generic := []string{fmt.Sprintf("Topic %d", session+1), "Practice", "Concepts", "Problems"}
	return generic[session%len(generic)]
}

// ScheduleGenerator lazily walks an inclusive date range and emits study,
// revision and mock-test tasks one at a time. State is one day index plus
// per-subject session counters, so memory stays constant no matter how long
// the range is; callers may stop consuming at any point. Two generators
// built from the same request produce identical streams.
type ScheduleGenerator struct {
	req      ScheduleRequest
	day      int // 1-based day index of the next day to expand
	sessions map[string]int
	buf      []GeneratedTask // the current day's tasks, already ordered
	pos      int
}

// NewScheduleGenerator builds a fresh generator over [req.Start, req.End].
func NewScheduleGenerator(req ScheduleRequest) *ScheduleGenerator {
	return &ScheduleGenerator{
		req:      req,
		day:      1,
		sessions: make(map[string]int, len(req.Subjects)),
	}
}

// Next returns the next task in chronological, then intra-day slot order.
// The second result is false once the range is exhausted.
func (g *ScheduleGenerator) Next() (GeneratedTask, bool) {
	for g.pos >= len(g.buf) {
		date := g.req.Start.AddDate(0, 0, g.day-1)
		if date.After(g.req.End) {
			return GeneratedTask{}, false
		}
		g.buf = g.expandDay(g.day, date)
		g.pos = 0
		g.day++
	}
	task := g.buf[g.pos]
	g.pos++
	return task, true
}

// expandDay materializes day n's tasks. Days with no available slots are
// skipped entirely.
func (g *ScheduleGenerator) expandDay(n int, date time.Time) []GeneratedTask {
	slots := g.req.Resolver.ResolveDay(date)
	if len(slots) == 0 {
		return nil
	}

	var tasks []GeneratedTask
	nextSlot := 0

	// Weekly mock test on every 7th day. It takes the second slot when one
	// exists, and pushes that day's study sessions past it.
	mockDay := n > 1 && n%7 == 0
	if mockDay {
		idx := 1
		if len(slots)-1 < idx {
			idx = len(slots) - 1
		}
		tasks = append(tasks, GeneratedTask{
			Date:     date,
			Slot:     slots[idx],
			Subject:  MockTestSubject,
			Topic:    fmt.Sprintf("Assessment #%d", n/7),
			Type:     TaskMockTest,
			Duration: MockTestMinutes,
		})
		nextSlot = 2
	}

	wd := date.Weekday()
	capacity := DailyCapacity(g.req.DailyHours, wd == time.Saturday || wd == time.Sunday)
	for _, alloc := range AllocateDay(g.req.Subjects, capacity) {
		if nextSlot >= len(slots) {
			break
		}
		session := g.sessions[alloc.Name]
		g.sessions[alloc.Name] = session + 1
		tasks = append(tasks, GeneratedTask{
			Date:     date,
			Slot:     slots[nextSlot],
			Subject:  alloc.Name,
			Topic:    topicFor(alloc.Name, session),
			Type:     TaskStudy,
			Duration: alloc.Minutes,
		})
		nextSlot++
	}

	// Mixed revision every 3rd day, in the day's last window, pointed at the
	// currently weakest subject.
	if n%3 == 0 {
		if weakest, ok := highestWeight(g.req.Subjects); ok {
			tasks = append(tasks, GeneratedTask{
				Date:     date,
				Slot:     slots[len(slots)-1],
				Subject:  fmt.Sprintf(RevisionSubjectLabel, weakest),
				Topic:    "Review weak areas",
				Type:     TaskRevision,
				Duration: RevisionMinutes,
			})
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Slot.Start < tasks[j].Slot.Start
	})
	return tasks
}

// highestWeight picks the subject with the largest weight, first occurrence
// winning ties.
func highestWeight(subjects []SubjectInput) (string, bool) {
	best := ""
	bestWeight := 0
	for _, s := range subjects {
		if s.Weight > bestWeight {
			best = s.Name
			bestWeight = s.Weight
		}
	}
	return best, best != ""
}

// GenerateAll drains a fresh generator for the request. Convenience for
// callers that want the whole range at once.
func GenerateAll(req ScheduleRequest) []GeneratedTask {
	gen := NewScheduleGenerator(req)
	var tasks []GeneratedTask
	for {
		t, ok := gen.Next()
		if !ok {
			return tasks
		}
		tasks = append(tasks, t)
	}
}
