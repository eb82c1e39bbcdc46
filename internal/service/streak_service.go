package service

import (
	"time"

	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/repository"
)

// streakLookback bounds the walk over completion dates; a streak longer
// than this is reported as the lookback length.
const streakLookback = 60

type StreakService struct {
	StreakRepo   *repository.StreakRepository
	ScheduleRepo *repository.ScheduleRepository
}

func NewStreakService(streakRepo *repository.StreakRepository, scheduleRepo *repository.ScheduleRepository) *StreakService {
	return &StreakService{StreakRepo: streakRepo, ScheduleRepo: scheduleRepo}
}

func (s *StreakService) Get(userID uint) (*model.StudyStreak, error) {
	return s.StreakRepo.GetOrInit(userID)
}

// Recompute derives the streak from actual task completion dates instead of
// incrementing a counter. A streak is alive if its newest day is today or
// yesterday; one missed day resets it to zero.
func (s *StreakService) Recompute(userID uint) (*model.StudyStreak, error) {
	streak, err := s.StreakRepo.GetOrInit(userID)
	if err != nil {
		return nil, err
	}

	dates, err := s.ScheduleRepo.CompletedTaskDates(userID, streakLookback)
	if err != nil {
		return nil, err
	}

	current := currentStreak(dates, time.Now())
	streak.CurrentStreak = current
	if current > streak.BestStreak {
		streak.BestStreak = current
	}
	streak.TotalDays = len(dates)
	if len(dates) > 0 {
		last := dates[0]
		streak.LastStudyDate = &last
	} else {
		streak.LastStudyDate = nil
	}

	if err := s.StreakRepo.Save(streak); err != nil {
		return nil, err
	}
	return streak, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// currentStreak walks newest-first distinct completion dates, counting
// consecutive days anchored at today or yesterday.
func currentStreak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	today := dayOf(now)
	expected := today
	if !dayOf(dates[0]).Equal(today) {
		expected = today.AddDate(0, 0, -1)
	}

	count := 0
	for _, d := range dates {
		day := dayOf(d)
		if !day.Equal(expected) {
			break
		}
		count++
		expected = expected.AddDate(0, 0, -1)
	}
	return count
}
