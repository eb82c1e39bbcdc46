package model

import "time"

// PerformanceLog is an append-only feedback row consumed in aggregate by the
// weight adjuster, focus advisor and readiness scorer. Nullable score fields
// distinguish "not recorded" from zero.
// swagger:model PerformanceLog
type PerformanceLog struct {
	BaseModel
	UserID         uint      `gorm:"index;not null" json:"userId"`
	Subject        string    `gorm:"size:100;index;not null" json:"subject"`
	LogDate        time.Time `gorm:"index;not null" json:"logDate"`
	MockScore      *float64  `json:"mockScore,omitempty"`
	PracticeScore  *float64  `json:"practiceScore,omitempty"`
	TasksCompleted int       `gorm:"default:0" json:"tasksCompleted"`
	TasksTotal     int       `gorm:"default:0" json:"tasksTotal"`
	StudyHours     float64   `gorm:"default:0" json:"studyHours"`
	Effectiveness  *int      `json:"effectivenessRating,omitempty"` // 1-5 self rating
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
}

func (PerformanceLog) TableName() string {
	return "performance_logs"
}

// StudyStreak tracks consecutive days with at least one completed task. It
// is recomputed from task completion dates, never incremented blindly.
// swagger:model StudyStreak
type StudyStreak struct {
	BaseModel
	UserID        uint       `gorm:"uniqueIndex;not null" json:"userId"`
	CurrentStreak int        `gorm:"default:0" json:"currentStreak"`
	BestStreak    int        `gorm:"default:0" json:"bestStreak"`
	TotalDays     int        `gorm:"default:0" json:"totalStudyDays"`
	LastStudyDate *time.Time `json:"lastStudyDate,omitempty"`
}

func (StudyStreak) TableName() string {
	return "study_streaks"
}
