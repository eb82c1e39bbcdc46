package repository

import (
	"errors"

	"placement_prep_backend/internal/model"

	"gorm.io/gorm"
)

type StreakRepository struct {
	DB *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{DB: db}
}

// GetOrInit returns the user's streak row, creating a zeroed one on first
// access.
func (r *StreakRepository) GetOrInit(userID uint) (*model.StudyStreak, error) {
	var streak model.StudyStreak
	err := r.DB.Where("user_id = ?", userID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		streak = model.StudyStreak{UserID: userID}
		if err := r.DB.Create(&streak).Error; err != nil {
			return nil, err
		}
		return &streak, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (r *StreakRepository) Save(streak *model.StudyStreak) error {
	return r.DB.Save(streak).Error
}
