package service

import (
	"errors"
	"fmt"

	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/planner"
	"placement_prep_backend/internal/repository"

	"gorm.io/gorm"
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
}

func NewSubjectService(subjectRepo *repository.SubjectRepository) *SubjectService {
	return &SubjectService{SubjectRepo: subjectRepo}
}

func (s *SubjectService) List(userID uint) ([]model.Subject, error) {
	return s.SubjectRepo.ListByUser(userID)
}

// validateWeight enforces the allocation weight range before anything is
// persisted. The engine assumes weights in [Strong, Weak].
func validateWeight(weight int) error {
	if weight < planner.WeightStrong || weight > planner.WeightWeak {
		return fmt.Errorf("weight must be between %d and %d", planner.WeightStrong, planner.WeightWeak)
	}
	return nil
}

func (s *SubjectService) Create(userID uint, name string, priority model.SubjectPriority) (*model.Subject, error) {
	if name == "" {
		return nil, errors.New("subject name is required")
	}
	switch priority {
	case model.PriorityStrong, model.PriorityMedium, model.PriorityWeak:
	case "":
		priority = model.PriorityMedium
	default:
		return nil, fmt.Errorf("unknown priority %q", priority)
	}

	subject := &model.Subject{
		UserID:   userID,
		Name:     name,
		Priority: priority,
		Weight:   model.WeightForPriority(priority),
	}
	if err := s.SubjectRepo.Create(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) UpdatePriority(userID, subjectID uint, priority model.SubjectPriority) (*model.Subject, error) {
	subject, err := s.SubjectRepo.FindByID(subjectID)
	if err != nil {
		return nil, err
	}
	if subject.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	switch priority {
	case model.PriorityStrong, model.PriorityMedium, model.PriorityWeak:
	default:
		return nil, fmt.Errorf("unknown priority %q", priority)
	}
	subject.Priority = priority
	subject.Weight = model.WeightForPriority(priority)
	if err := s.SubjectRepo.Update(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) Delete(userID, subjectID uint) error {
	return s.SubjectRepo.Delete(userID, subjectID)
}
