package model

import "time"

// Planner configuration defaults, applied when a user has not saved settings.
const (
	DefaultDailyHours = 3.0
	DefaultPrepLevel  = "beginner"
)

// PlannerSettings holds a user's scheduling constraints: available time,
// busy windows and targeting. Busy windows are local wall-clock "HH:MM"
// strings; empty means not configured.
// swagger:model PlannerSettings
type PlannerSettings struct {
	BaseModel
	UserID         uint       `gorm:"uniqueIndex;not null" json:"userId"`
	DailyHours     float64    `gorm:"default:3" json:"dailyHours"`
	CollegeStart   string     `gorm:"size:5" json:"collegeStart,omitempty"`
	CollegeEnd     string     `gorm:"size:5" json:"collegeEnd,omitempty"`
	WorkStart      string     `gorm:"size:5" json:"workStart,omitempty"`
	WorkEnd        string     `gorm:"size:5" json:"workEnd,omitempty"`
	PrepLevel      string     `gorm:"size:20;default:'beginner'" json:"prepLevel"`
	EmployerType   string     `gorm:"size:20;default:'service'" json:"employerType"`
	TargetEmployer string     `gorm:"size:100" json:"targetEmployer,omitempty"`
	TargetDate     *time.Time `json:"targetDate,omitempty"`
}

func (PlannerSettings) TableName() string {
	return "planner_settings"
}

// ReminderSettings controls the daily study-reminder email. LastSentDate
// guards against sending twice in one day.
// swagger:model ReminderSettings
type ReminderSettings struct {
	BaseModel
	UserID       uint       `gorm:"uniqueIndex;not null" json:"userId"`
	Enabled      bool       `gorm:"default:false" json:"enabled"`
	SendTime     string     `gorm:"size:5;default:'08:00'" json:"sendTime"`
	LastSentDate *time.Time `json:"lastSentDate,omitempty"`
}

func (ReminderSettings) TableName() string {
	return "reminder_settings"
}
