package model

import "time"

type TopicStatus string

const (
	TopicNotStarted TopicStatus = "not_started"
	TopicInProgress TopicStatus = "in_progress"
	TopicCompleted  TopicStatus = "completed"
)

// Roadmap is one user's generated curriculum. A user has at most one live
// roadmap; regenerating replaces it and everything it owns in a single
// transaction.
// swagger:model Roadmap
type Roadmap struct {
	BaseModel
	UserID         uint   `gorm:"index;not null" json:"userId"`
	Branch         string `gorm:"size:50;not null" json:"branch"`
	EmployerType   string `gorm:"size:20;not null" json:"employerType"`
	TargetEmployer string `gorm:"size:100" json:"targetEmployer,omitempty"`
	PrepLevel      string `gorm:"size:20;not null" json:"prepLevel"`
	TotalDays      int    `gorm:"not null" json:"totalDays"`

	Topics     []RoadmapTopic     `gorm:"foreignKey:RoadmapID" json:"topics,omitempty"`
	Milestones []RoadmapMilestone `gorm:"foreignKey:RoadmapID" json:"milestones,omitempty"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// RoadmapTopic is owned exclusively by one roadmap. OrderSequence values form
// a dense 1..N permutation, non-decreasing in level then estimated duration.
// swagger:model RoadmapTopic
type RoadmapTopic struct {
	BaseModel
	RoadmapID     uint        `gorm:"index;not null" json:"roadmapId"`
	Name          string      `gorm:"size:255;not null" json:"name"`
	Category      string      `gorm:"size:50" json:"category"`
	Level         string      `gorm:"size:20;not null" json:"level"`
	BaseDays      int         `json:"baseDays"`
	EstimatedDays int         `gorm:"not null" json:"estimatedDays"`
	OrderSequence int         `gorm:"not null;index" json:"orderSequence"`
	Status        TopicStatus `gorm:"type:enum('not_started','in_progress','completed');default:'not_started'" json:"status"`
	CompletedAt   *time.Time  `json:"completedAt,omitempty"`
}

func (RoadmapTopic) TableName() string {
	return "roadmap_topics"
}

// RoadmapMilestone is derived state: the reached flag is recomputed whenever
// any topic's status changes, never edited directly.
// swagger:model RoadmapMilestone
type RoadmapMilestone struct {
	BaseModel
	RoadmapID       uint       `gorm:"index;not null" json:"roadmapId"`
	Title           string     `gorm:"size:100;not null" json:"title"`
	Description     string     `gorm:"size:255" json:"description"`
	Level           string     `gorm:"size:20;not null" json:"level"`
	AfterTopicOrder int        `gorm:"not null" json:"afterTopicOrder"`
	CumulativeDays  int        `json:"cumulativeDays"`
	Reached         bool       `gorm:"default:false" json:"reached"`
	ReachedAt       *time.Time `json:"reachedAt,omitempty"`
}

func (RoadmapMilestone) TableName() string {
	return "roadmap_milestones"
}
