package service

import (
	"fmt"

	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/planner"
	"placement_prep_backend/internal/repository"
	"placement_prep_backend/internal/util"
)

type SettingsService struct {
	SettingsRepo *repository.SettingsRepository
}

func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{SettingsRepo: settingsRepo}
}

func (s *SettingsService) GetPlanner(userID uint) (*model.PlannerSettings, error) {
	return s.SettingsRepo.GetPlanner(userID)
}

// validateWindow checks an optional "HH:MM" pair: both ends present and
// end after start, or both empty.
func validateWindow(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	startMin, ok := planner.ParseClock(start)
	if !ok {
		return fmt.Errorf("invalid time %q", start)
	}
	endMin, ok := planner.ParseClock(end)
	if !ok {
		return fmt.Errorf("invalid time %q", end)
	}
	if endMin <= startMin {
		return util.ErrInvalidTimeWindow
	}
	return nil
}

func (s *SettingsService) SavePlanner(userID uint, settings *model.PlannerSettings) (*model.PlannerSettings, error) {
	if settings.DailyHours <= 0 || settings.DailyHours > planner.MaxDailyHours {
		return nil, fmt.Errorf("daily hours must be in (0, %.0f]", planner.MaxDailyHours)
	}
	if err := validateWindow(settings.CollegeStart, settings.CollegeEnd); err != nil {
		return nil, fmt.Errorf("college window: %w", err)
	}
	if err := validateWindow(settings.WorkStart, settings.WorkEnd); err != nil {
		return nil, fmt.Errorf("work window: %w", err)
	}
	switch planner.PrepLevel(settings.PrepLevel) {
	case planner.LevelBeginner, planner.LevelIntermediate, planner.LevelAdvanced:
	default:
		return nil, fmt.Errorf("unknown prep level %q", settings.PrepLevel)
	}
	switch planner.EmployerType(settings.EmployerType) {
	case planner.EmployerService, planner.EmployerProduct, planner.EmployerCore:
	default:
		return nil, fmt.Errorf("unknown employer type %q", settings.EmployerType)
	}

	settings.UserID = userID
	if err := s.SettingsRepo.SavePlanner(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) GetReminder(userID uint) (*model.ReminderSettings, error) {
	return s.SettingsRepo.GetReminder(userID)
}

func (s *SettingsService) SaveReminder(userID uint, enabled bool, sendTime string) (*model.ReminderSettings, error) {
	if sendTime != "" {
		if _, ok := planner.ParseClock(sendTime); !ok {
			return nil, fmt.Errorf("invalid send time %q", sendTime)
		}
	}

	settings, err := s.SettingsRepo.GetReminder(userID)
	if err != nil {
		return nil, err
	}
	settings.Enabled = enabled
	if sendTime != "" {
		settings.SendTime = sendTime
	}
	if err := s.SettingsRepo.SaveReminder(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
