package planner

// Allocation constants. MaxDailyHours is the burnout cap; allocations under
// MinSessionMinutes are too short to be useful and are dropped.
const (
	MaxDailyHours     = 4.0
	MinSessionMinutes = 30
	DefaultDailyHours = 3.0
)

// Priority weights: the weaker the subject, the more time it gets.
const (
	WeightStrong = 1
	WeightMedium = 2
	WeightWeak   = 3
)

// SubjectInput is a subject as seen by the allocation engine and generator.
type SubjectInput struct {
	Name   string
	Weight int // always in {1,2,3}; validated at the system boundary
}

// SubjectAllocation is the minutes granted to one subject for one day.
type SubjectAllocation struct {
	Name    string
	Minutes int
}

// DailyCapacity returns a day's study capacity in minutes. Weekends get a
// 1.5x bonus, still capped at MaxDailyHours. dailyHours is clamped to the
// cap before scaling.
func DailyCapacity(dailyHours float64, weekend bool) int {
	if dailyHours > MaxDailyHours {
		dailyHours = MaxDailyHours
	}
	if dailyHours < 0 {
		dailyHours = 0
	}
	if weekend {
		h := dailyHours * 1.5
		if h > MaxDailyHours {
			h = MaxDailyHours
		}
		return int(h * 60)
	}
	return int(dailyHours * 60)
}

// AllocateDay splits a day's capacity across subjects proportionally to
// their weights. Subjects are processed in input order: each gets
// floor(weight/Σweights × capacity) minutes, entries under the minimum
// session length are dropped, and the running total is truncated at the
// capacity so the later subjects absorb any shortfall.
func AllocateDay(subjects []SubjectInput, capacityMinutes int) []SubjectAllocation {
	totalWeight := 0
	for _, s := range subjects {
		totalWeight += s.Weight
	}
	if totalWeight == 0 || capacityMinutes <= 0 {
		return nil
	}

	var out []SubjectAllocation
	used := 0
	for _, s := range subjects {
		minutes := s.Weight * capacityMinutes / totalWeight
		if used+minutes > capacityMinutes {
			minutes = capacityMinutes - used
		}
		if minutes < MinSessionMinutes {
			continue
		}
		used += minutes
		out = append(out, SubjectAllocation{Name: s.Name, Minutes: minutes})
	}
	return out
}
