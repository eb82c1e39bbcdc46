package model

type SubjectPriority string

const (
	PriorityStrong SubjectPriority = "strong"
	PriorityMedium SubjectPriority = "medium"
	PriorityWeak   SubjectPriority = "weak"
)

// Subject is a study area whose weight drives daily time allocation.
// Weight is always in {1,2,3} (Strong=1, Medium=2, Weak=3); out-of-range
// values are rejected at the API boundary before they ever reach the engine.
// swagger:model Subject
type Subject struct {
	BaseModel
	UserID           uint            `gorm:"index;not null;uniqueIndex:idx_user_subject" json:"userId"`
	Name             string          `gorm:"size:100;not null;uniqueIndex:idx_user_subject" json:"name"`
	Priority         SubjectPriority `gorm:"type:enum('strong','medium','weak');default:'medium'" json:"priority"`
	Weight           int             `gorm:"not null;default:2" json:"weight"`
	PerformanceScore float64         `gorm:"default:0" json:"performanceScore"`
	AllocatedHours   float64         `gorm:"default:0" json:"allocatedHours"`
	CompletedHours   float64         `gorm:"default:0" json:"completedHours"`
}

func (Subject) TableName() string {
	return "subjects"
}

// WeightForPriority maps a priority label to its allocation weight.
func WeightForPriority(p SubjectPriority) int {
	switch p {
	case PriorityStrong:
		return 1
	case PriorityWeak:
		return 3
	default:
		return 2
	}
}
