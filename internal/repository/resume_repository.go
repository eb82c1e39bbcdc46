package repository

import (
	"placement_prep_backend/internal/model"

	"gorm.io/gorm"
)

type ResumeRepository struct {
	DB *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{DB: db}
}

// Save replaces the user's resume; one resume per user.
func (r *ResumeRepository) Save(resume *model.Resume) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", resume.UserID).
			Delete(&model.Resume{}).Error; err != nil {
			return err
		}
		return tx.Create(resume).Error
	})
}

func (r *ResumeRepository) FindByUser(userID uint) (*model.Resume, error) {
	var resume model.Resume
	err := r.DB.Where("user_id = ?", userID).First(&resume).Error
	return &resume, err
}
