package repository

import (
	"placement_prep_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.DB.Create(subject).Error
}

// SeedDefaults inserts the starter subject set for a fresh account. Skipped
// when the user already has any subjects.
func (r *SubjectRepository) SeedDefaults(userID uint) error {
	var count int64
	if err := r.DB.Model(&model.Subject{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	defaults := []model.Subject{
		{UserID: userID, Name: "DSA", Priority: model.PriorityWeak, Weight: 3},
		{UserID: userID, Name: "Aptitude", Priority: model.PriorityMedium, Weight: 2},
		{UserID: userID, Name: "Core CS", Priority: model.PriorityMedium, Weight: 2},
		{UserID: userID, Name: "Programming", Priority: model.PriorityStrong, Weight: 1},
	}
	return r.DB.Create(&defaults).Error
}

// ListByUser returns subjects in creation order. The allocation engine is
// order-sensitive, so this ordering is part of the scheduling contract.
func (r *SubjectRepository) ListByUser(userID uint) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&subjects).Error
	return subjects, err
}

func (r *SubjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.First(&subject, id).Error
	return &subject, err
}

func (r *SubjectRepository) Update(subject *model.Subject) error {
	return r.DB.Save(subject).Error
}

func (r *SubjectRepository) UpdateWeight(userID uint, name string, weight int) error {
	return r.DB.Model(&model.Subject{}).
		Where("user_id = ? AND name = ?", userID, name).
		Update("weight", weight).Error
}

func (r *SubjectRepository) UpdatePerformanceScore(userID uint, name string, score float64) error {
	return r.DB.Model(&model.Subject{}).
		Where("user_id = ? AND name = ?", userID, name).
		Update("performance_score", score).Error
}

func (r *SubjectRepository) Delete(userID, id uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&model.Subject{}, id).Error
}
