package repository

import (
	"placement_prep_backend/internal/model"

	"gorm.io/gorm"
)

type PerformanceRepository struct {
	DB *gorm.DB
}

func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{DB: db}
}

func (r *PerformanceRepository) Create(log *model.PerformanceLog) error {
	return r.DB.Create(log).Error
}

func (r *PerformanceRepository) ListByUser(userID uint, limit int) ([]model.PerformanceLog, error) {
	var logs []model.PerformanceLog
	query := r.DB.Where("user_id = ?", userID).Order("log_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&logs).Error
	return logs, err
}

func (r *PerformanceRepository) ListBySubject(userID uint, subject string) ([]model.PerformanceLog, error) {
	var logs []model.PerformanceLog
	err := r.DB.Where("user_id = ? AND subject = ?", userID, subject).
		Order("log_date ASC, id ASC").Find(&logs).Error
	return logs, err
}

// SubjectAggregate holds per-subject averages over all logged entries.
type SubjectAggregate struct {
	Subject          string
	AvgMockScore     *float64
	AvgPracticeScore *float64
	TotalHours       float64
	Entries          int64
}

func (r *PerformanceRepository) AggregateBySubject(userID uint) ([]SubjectAggregate, error) {
	var rows []SubjectAggregate
	err := r.DB.Model(&model.PerformanceLog{}).Where("user_id = ?", userID).
		Select(`subject,
			AVG(mock_score) AS avg_mock_score,
			AVG(practice_score) AS avg_practice_score,
			COALESCE(SUM(study_hours), 0) AS total_hours,
			COUNT(*) AS entries`).
		Group("subject").Order("subject ASC").Scan(&rows).Error
	return rows, err
}
