package repository

import (
	"errors"

	"placement_prep_backend/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// GetPlanner returns the user's planner settings, or defaults when none are
// saved. The defaults are not persisted.
func (r *SettingsRepository) GetPlanner(userID uint) (*model.PlannerSettings, error) {
	var settings model.PlannerSettings
	err := r.DB.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.PlannerSettings{
			UserID:       userID,
			DailyHours:   model.DefaultDailyHours,
			PrepLevel:    model.DefaultPrepLevel,
			EmployerType: "service",
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SavePlanner upserts by user_id.
func (r *SettingsRepository) SavePlanner(settings *model.PlannerSettings) error {
	var existing model.PlannerSettings
	err := r.DB.Where("user_id = ?", settings.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(settings).Error
	}
	if err != nil {
		return err
	}
	settings.ID = existing.ID
	settings.CreatedAt = existing.CreatedAt
	return r.DB.Save(settings).Error
}

func (r *SettingsRepository) GetReminder(userID uint) (*model.ReminderSettings, error) {
	var settings model.ReminderSettings
	err := r.DB.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.ReminderSettings{UserID: userID, SendTime: "08:00"}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) SaveReminder(settings *model.ReminderSettings) error {
	var existing model.ReminderSettings
	err := r.DB.Where("user_id = ?", settings.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(settings).Error
	}
	if err != nil {
		return err
	}
	settings.ID = existing.ID
	settings.CreatedAt = existing.CreatedAt
	return r.DB.Save(settings).Error
}

// ListDueReminders returns enabled reminders not yet sent today, joined with
// the owning user's email.
type DueReminder struct {
	model.ReminderSettings
	Email string
	Name  string
}

func (r *SettingsRepository) ListDueReminders(today string) ([]DueReminder, error) {
	var due []DueReminder
	err := r.DB.Model(&model.ReminderSettings{}).
		Select("reminder_settings.*, users.email AS email, users.name AS name").
		Joins("JOIN users ON users.id = reminder_settings.user_id").
		Where("reminder_settings.enabled = ? AND (reminder_settings.last_sent_date IS NULL OR DATE(reminder_settings.last_sent_date) < ?)", true, today).
		Scan(&due).Error
	return due, err
}

func (r *SettingsRepository) MarkReminderSent(userID uint) error {
	return r.DB.Model(&model.ReminderSettings{}).Where("user_id = ?", userID).
		Update("last_sent_date", gorm.Expr("NOW()")).Error
}
