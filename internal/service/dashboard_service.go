package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/planner"
	"placement_prep_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

const dashboardCacheTTL = 5 * time.Minute

type DashboardService struct {
	UserRepo       *repository.UserRepository
	ScheduleSvc    *ScheduleService
	RoadmapSvc     *RoadmapService
	PerformanceSvc *PerformanceService
	StreakSvc      *StreakService
	Redis          *redis.Client
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	scheduleSvc *ScheduleService,
	roadmapSvc *RoadmapService,
	performanceSvc *PerformanceService,
	streakSvc *StreakService,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		ScheduleSvc:    scheduleSvc,
		RoadmapSvc:     roadmapSvc,
		PerformanceSvc: performanceSvc,
		StreakSvc:      streakSvc,
		Redis:          rdb,
	}
}

// Dashboard is the combined home-screen snapshot.
type Dashboard struct {
	TodayTasks        []model.StudyTask  `json:"todayTasks"`
	ScheduleProgress  *ScheduleProgress  `json:"scheduleProgress,omitempty"`
	RoadmapProgress   *RoadmapProgress   `json:"roadmapProgress,omitempty"`
	Readiness         *planner.Readiness `json:"readiness,omitempty"`
	FocusSuggestions  []string           `json:"focusSuggestions"`
	CurrentStreak     int                `json:"currentStreak"`
	BestStreak        int                `json:"bestStreak"`
}

func dashboardCacheKey(userID uint) string {
	return fmt.Sprintf("dashboard:%d", userID)
}

// GetUserDashboard assembles today's tasks with both progress views. A user
// without a roadmap or schedule still gets a dashboard; the missing sections
// are simply omitted.
func (s *DashboardService) GetUserDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, dashboardCacheKey(userID)).Result(); err == nil {
			var dashboard Dashboard
			if json.Unmarshal([]byte(cached), &dashboard) == nil {
				return &dashboard, nil
			}
		}
	}

	tasks, err := s.ScheduleSvc.TodayTasks(userID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{TodayTasks: tasks}

	if progress, err := s.ScheduleSvc.Progress(userID); err == nil {
		dashboard.ScheduleProgress = progress
	}
	if progress, err := s.RoadmapSvc.Progress(userID); err == nil {
		dashboard.RoadmapProgress = progress
	}
	if readiness, err := s.PerformanceSvc.Readiness(userID); err == nil {
		dashboard.Readiness = readiness
	}
	if suggestions, err := s.PerformanceSvc.FocusSuggestions(userID); err == nil {
		dashboard.FocusSuggestions = suggestions
	}
	if streak, err := s.StreakSvc.Get(userID); err == nil {
		dashboard.CurrentStreak = streak.CurrentStreak
		dashboard.BestStreak = streak.BestStreak
	}

	if s.Redis != nil {
		if encoded, err := json.Marshal(dashboard); err == nil {
			s.Redis.Set(ctx, dashboardCacheKey(userID), encoded, dashboardCacheTTL)
		}
	}
	return dashboard, nil
}
