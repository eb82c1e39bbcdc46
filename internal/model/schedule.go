package model

import "time"

// StudySchedule is the metadata row of one generation run. Its tasks are
// replaced wholesale when a user regenerates; the run ID ties each task to
// the run that produced it.
// swagger:model StudySchedule
type StudySchedule struct {
	BaseModel
	UserID            uint      `gorm:"index;not null" json:"userId"`
	RunID             string    `gorm:"size:36;index;not null" json:"runId"`
	StartDate         time.Time `gorm:"index;not null" json:"startDate"`
	EndDate           time.Time `gorm:"not null" json:"endDate"`
	TotalPlannedHours float64   `json:"totalPlannedHours"`

	Tasks []StudyTask `gorm:"foreignKey:ScheduleID" json:"tasks,omitempty"`
}

func (StudySchedule) TableName() string {
	return "study_schedules"
}

// StudyTask is one scheduled calendar entry produced by a generation run.
// swagger:model StudyTask
type StudyTask struct {
	BaseModel
	UserID      uint       `gorm:"index;not null" json:"userId"`
	ScheduleID  uint       `gorm:"index;not null" json:"scheduleId"`
	TaskDate    time.Time  `gorm:"index;not null" json:"taskDate"`
	TaskTime    string     `gorm:"size:5;not null" json:"taskTime"` // slot start, "HH:MM"
	Subject     string     `gorm:"size:100;not null" json:"subject"`
	Topic       string     `gorm:"size:255" json:"topic"`
	TaskType    string     `gorm:"type:enum('study','revision','mock_test','practice');default:'study'" json:"taskType"`
	Duration    int        `gorm:"not null" json:"durationMinutes"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
}

func (StudyTask) TableName() string {
	return "study_tasks"
}
