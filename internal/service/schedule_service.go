package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/planner"
	"placement_prep_backend/internal/repository"
	"placement_prep_backend/internal/util"
	"placement_prep_backend/pkg/logger"
	"placement_prep_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const calendarCacheTTL = 10 * time.Minute

type ScheduleService struct {
	ScheduleRepo *repository.ScheduleRepository
	SubjectRepo  *repository.SubjectRepository
	SettingsRepo *repository.SettingsRepository
	StreakSvc    *StreakService
	Redis        *redis.Client
}

func NewScheduleService(
	scheduleRepo *repository.ScheduleRepository,
	subjectRepo *repository.SubjectRepository,
	settingsRepo *repository.SettingsRepository,
	streakSvc *StreakService,
	rdb *redis.Client,
) *ScheduleService {
	return &ScheduleService{
		ScheduleRepo: scheduleRepo,
		SubjectRepo:  subjectRepo,
		SettingsRepo: settingsRepo,
		StreakSvc:    streakSvc,
		Redis:        rdb,
	}
}

// GenerateScheduleRequest covers one generation run. Zero DailyHours falls
// back to the saved planner settings.
type GenerateScheduleRequest struct {
	StartDate  string  `json:"startDate" binding:"required"` // "2006-01-02"
	EndDate    string  `json:"endDate" binding:"required"`
	DailyHours float64 `json:"dailyHours"`
}

// buildResolver converts the saved "HH:MM" busy windows into the slot
// resolver. Malformed or inverted windows are skipped rather than failing
// the run.
func buildResolver(settings *model.PlannerSettings) planner.SlotResolver {
	var resolver planner.SlotResolver
	if start, ok := planner.ParseClock(settings.CollegeStart); ok {
		if end, ok := planner.ParseClock(settings.CollegeEnd); ok && end > start {
			resolver.College = &planner.BusyWindow{Start: start, End: end}
		}
	}
	if start, ok := planner.ParseClock(settings.WorkStart); ok {
		if end, ok := planner.ParseClock(settings.WorkEnd); ok && end > start {
			resolver.Work = &planner.BusyWindow{Start: start, End: end}
		}
	}
	return resolver
}

func subjectInputs(subjects []model.Subject) []planner.SubjectInput {
	inputs := make([]planner.SubjectInput, len(subjects))
	for i, s := range subjects {
		inputs[i] = planner.SubjectInput{Name: s.Name, Weight: s.Weight}
	}
	return inputs
}

// Generate produces a full calendar between the two dates and atomically
// replaces the user's prior schedule run.
func (s *ScheduleService) Generate(userID uint, req GenerateScheduleRequest) (*model.StudySchedule, error) {
	start, err := time.Parse(util.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse(util.DateFormat, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return nil, util.ErrInvalidDateRange
	}

	settings, err := s.SettingsRepo.GetPlanner(userID)
	if err != nil {
		return nil, err
	}
	dailyHours := req.DailyHours
	if dailyHours <= 0 {
		dailyHours = settings.DailyHours
	}

	subjects, err := s.SubjectRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	generated := planner.GenerateAll(planner.ScheduleRequest{
		Start:      start,
		End:        end,
		DailyHours: dailyHours,
		Subjects:   subjectInputs(subjects),
		Resolver:   buildResolver(settings),
	})

	tasks := make([]model.StudyTask, len(generated))
	totalMinutes := 0
	for i, t := range generated {
		tasks[i] = model.StudyTask{
			TaskDate: t.Date,
			TaskTime: t.Slot.StartClock(),
			Subject:  t.Subject,
			Topic:    t.Topic,
			TaskType: string(t.Type),
			Duration: t.Duration,
		}
		totalMinutes += t.Duration
	}

	schedule := &model.StudySchedule{
		UserID:            userID,
		RunID:             model.GenerateRunID(),
		StartDate:         start,
		EndDate:           end,
		TotalPlannedHours: float64(totalMinutes) / 60,
	}
	if err := s.ScheduleRepo.Replace(userID, schedule, tasks); err != nil {
		return nil, err
	}
	s.invalidateCalendarCache(userID)
	monitoring.GenerationCounter.WithLabelValues("schedule").Inc()
	monitoring.TasksGenerated.Add(float64(len(tasks)))

	logger.Log.Info("Schedule generated",
		zap.Uint("userID", userID),
		zap.String("runID", schedule.RunID),
		zap.Int("tasks", len(tasks)),
		zap.Float64("plannedHours", schedule.TotalPlannedHours))
	return schedule, nil
}

// CalendarDay groups one date's tasks for the calendar view.
type CalendarDay struct {
	Date  string            `json:"date"`
	Tasks []model.StudyTask `json:"tasks"`
}

// Current returns the metadata of the user's latest generation run.
func (s *ScheduleService) Current(userID uint) (*model.StudySchedule, error) {
	schedule, err := s.ScheduleRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNoSchedule
	}
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func calendarCacheKey(userID uint, year, month int) string {
	return fmt.Sprintf("schedule:calendar:%d:%04d-%02d", userID, year, month)
}

// Calendar returns one month's tasks grouped by date, cached in Redis until
// the next regeneration or task update.
func (s *ScheduleService) Calendar(ctx context.Context, userID uint, year, month int) ([]CalendarDay, error) {
	key := calendarCacheKey(userID, year, month)
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var days []CalendarDay
			if json.Unmarshal([]byte(cached), &days) == nil {
				return days, nil
			}
		}
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	tasks, err := s.ScheduleRepo.TasksInRange(userID, from, to)
	if err != nil {
		return nil, err
	}

	var days []CalendarDay
	for _, t := range tasks {
		date := t.TaskDate.Format(util.DateFormat)
		if len(days) == 0 || days[len(days)-1].Date != date {
			days = append(days, CalendarDay{Date: date})
		}
		days[len(days)-1].Tasks = append(days[len(days)-1].Tasks, t)
	}

	if s.Redis != nil {
		if encoded, err := json.Marshal(days); err == nil {
			s.Redis.Set(ctx, key, encoded, calendarCacheTTL)
		}
	}
	return days, nil
}

func (s *ScheduleService) invalidateCalendarCache(userID uint) {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	pattern := fmt.Sprintf("schedule:calendar:%d:*", userID)
	keys, err := s.Redis.Keys(ctx, pattern).Result()
	if err != nil {
		logger.Log.Warn("Calendar cache invalidation failed", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		s.Redis.Del(ctx, keys...)
	}
}

// TodayTasks returns today's tasks in slot order.
func (s *ScheduleService) TodayTasks(userID uint) ([]model.StudyTask, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.ScheduleRepo.TasksInRange(userID, from, from.AddDate(0, 0, 1))
}

// SetTaskCompletion flips a task's completion state and recomputes the
// streak from actual completion dates.
func (s *ScheduleService) SetTaskCompletion(userID, taskID uint, completed bool, notes string) (*model.StudyTask, error) {
	task, err := s.ScheduleRepo.FindTask(userID, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if completed {
		now := time.Now()
		completedAt = &now
	}
	if err := s.ScheduleRepo.UpdateTaskCompletion(task.ID, completed, completedAt, notes); err != nil {
		return nil, err
	}
	s.invalidateCalendarCache(userID)

	if _, err := s.StreakSvc.Recompute(userID); err != nil {
		logger.Log.Warn("Streak recompute failed", zap.Uint("userID", userID), zap.Error(err))
	}
	return s.ScheduleRepo.FindTask(userID, task.ID)
}

// ScheduleProgress is the schedule-side progress snapshot.
type ScheduleProgress struct {
	TotalTasks       int64   `json:"totalTasks"`
	CompletedTasks   int64   `json:"completedTasks"`
	PercentComplete  float64 `json:"percentComplete"`
	PlannedHours     float64 `json:"plannedHours"`
	CompletedHours   float64 `json:"completedHours"`
	ScheduledDays    int64   `json:"scheduledDays"`
	CurrentStreak    int     `json:"currentStreak"`
	BestStreak       int     `json:"bestStreak"`
}

func (s *ScheduleService) Progress(userID uint) (*ScheduleProgress, error) {
	stats, err := s.ScheduleRepo.Stats(userID)
	if err != nil {
		return nil, err
	}
	streak, err := s.StreakSvc.Get(userID)
	if err != nil {
		return nil, err
	}

	progress := &ScheduleProgress{
		TotalTasks:     stats.TotalTasks,
		CompletedTasks: stats.CompletedTasks,
		PlannedHours:   float64(stats.TotalMinutes) / 60,
		CompletedHours: float64(stats.CompletedMinutes) / 60,
		ScheduledDays:  stats.ScheduledDays,
		CurrentStreak:  streak.CurrentStreak,
		BestStreak:     streak.BestStreak,
	}
	if stats.TotalTasks > 0 {
		progress.PercentComplete = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}
	return progress, nil
}
