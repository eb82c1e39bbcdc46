package service

import (
	"errors"
	"time"

	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/planner"
	"placement_prep_backend/internal/repository"
	"placement_prep_backend/internal/util"
	"placement_prep_backend/pkg/logger"
	"placement_prep_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoadmapService struct {
	RoadmapRepo  *repository.RoadmapRepository
	SettingsRepo *repository.SettingsRepository
	Catalog      *planner.Catalog
}

func NewRoadmapService(roadmapRepo *repository.RoadmapRepository, settingsRepo *repository.SettingsRepository) *RoadmapService {
	return &RoadmapService{
		RoadmapRepo:  roadmapRepo,
		SettingsRepo: settingsRepo,
		Catalog:      planner.DefaultCatalog(),
	}
}

// GenerateRequest carries the roadmap inputs from the API. Empty fields fall
// back to the user's saved planner settings, then to catalog defaults.
type GenerateRequest struct {
	Branch         string `json:"branch"`
	EmployerType   string `json:"employerType"`
	PrepLevel      string `json:"prepLevel"`
	TargetEmployer string `json:"targetEmployer"`
}

// Generate runs the pipeline and atomically replaces the user's stored
// roadmap. The previous roadmap survives untouched if persistence fails.
func (s *RoadmapService) Generate(userID uint, req GenerateRequest) (*model.Roadmap, error) {
	settings, err := s.SettingsRepo.GetPlanner(userID)
	if err != nil {
		return nil, err
	}
	if req.EmployerType == "" {
		req.EmployerType = settings.EmployerType
	}
	if req.PrepLevel == "" {
		req.PrepLevel = settings.PrepLevel
	}
	if req.TargetEmployer == "" {
		req.TargetEmployer = settings.TargetEmployer
	}

	result := planner.GenerateRoadmap(s.Catalog, planner.RoadmapRequest{
		Branch:         req.Branch,
		EmployerType:   planner.EmployerType(req.EmployerType),
		PrepLevel:      planner.PrepLevel(req.PrepLevel),
		TargetEmployer: req.TargetEmployer,
	})

	roadmap := &model.Roadmap{
		UserID:         userID,
		Branch:         result.Summary.Branch,
		EmployerType:   string(result.Summary.EmployerType),
		TargetEmployer: result.Summary.TargetEmployer,
		PrepLevel:      string(result.Summary.PrepLevel),
		TotalDays:      result.TotalDays,
	}
	topics := make([]model.RoadmapTopic, len(result.Topics))
	for i, t := range result.Topics {
		topics[i] = model.RoadmapTopic{
			Name:          t.Name,
			Category:      t.Category,
			Level:         string(t.Level),
			BaseDays:      t.BaseDays,
			EstimatedDays: t.EstimatedDays,
			OrderSequence: t.Order,
			Status:        model.TopicNotStarted,
		}
	}
	milestones := make([]model.RoadmapMilestone, len(result.Milestones))
	for i, m := range result.Milestones {
		milestones[i] = model.RoadmapMilestone{
			Title:           m.Title,
			Description:     m.Description,
			Level:           string(m.Level),
			AfterTopicOrder: m.AfterTopicOrder,
			CumulativeDays:  m.CumulativeDays,
		}
	}

	if err := s.RoadmapRepo.Replace(userID, roadmap, topics, milestones); err != nil {
		return nil, err
	}
	monitoring.GenerationCounter.WithLabelValues("roadmap").Inc()
	logger.Log.Info("Roadmap generated",
		zap.Uint("userID", userID),
		zap.String("branch", roadmap.Branch),
		zap.Int("topics", len(topics)),
		zap.Int("totalDays", roadmap.TotalDays))

	return s.Get(userID)
}

// noRoadmap maps a missing roadmap row to the sentinel the controllers
// translate into a 404; every other error passes through.
func noRoadmap(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNoRoadmap
	}
	return err
}

// Get returns the user's roadmap with topics and milestones attached.
func (s *RoadmapService) Get(userID uint) (*model.Roadmap, error) {
	roadmap, err := s.RoadmapRepo.FindByUser(userID)
	if err != nil {
		return nil, noRoadmap(err)
	}
	if roadmap.Topics, err = s.RoadmapRepo.ListTopics(roadmap.ID); err != nil {
		return nil, err
	}
	if roadmap.Milestones, err = s.RoadmapRepo.ListMilestones(roadmap.ID); err != nil {
		return nil, err
	}
	return roadmap, nil
}

// UpdateTopicStatus transitions one topic and then recomputes every
// milestone's reached flag from the new topic states.
func (s *RoadmapService) UpdateTopicStatus(userID, topicID uint, status model.TopicStatus) (*model.Roadmap, error) {
	switch status {
	case model.TopicNotStarted, model.TopicInProgress, model.TopicCompleted:
	default:
		return nil, errors.New("unknown topic status")
	}

	roadmap, err := s.RoadmapRepo.FindByUser(userID)
	if err != nil {
		return nil, noRoadmap(err)
	}
	if _, err := s.RoadmapRepo.FindTopic(roadmap.ID, topicID); err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if status == model.TopicCompleted {
		now := time.Now()
		completedAt = &now
	}
	if err := s.RoadmapRepo.UpdateTopicStatus(topicID, status, completedAt); err != nil {
		return nil, err
	}

	if err := s.refreshMilestones(roadmap.ID); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *RoadmapService) refreshMilestones(roadmapID uint) error {
	topics, err := s.RoadmapRepo.ListTopics(roadmapID)
	if err != nil {
		return err
	}
	milestones, err := s.RoadmapRepo.ListMilestones(roadmapID)
	if err != nil {
		return err
	}
	for _, m := range milestones {
		reached := MilestoneReached(m, topics)
		if reached == m.Reached {
			continue
		}
		var reachedAt *time.Time
		if reached {
			now := time.Now()
			reachedAt = &now
		}
		if err := s.RoadmapRepo.UpdateMilestoneReached(m.ID, reached, reachedAt); err != nil {
			return err
		}
	}
	return nil
}

// MilestoneReached reports whether every topic at or before the milestone's
// order threshold is completed. A milestone with no topics in range counts
// as not reached.
func MilestoneReached(m model.RoadmapMilestone, topics []model.RoadmapTopic) bool {
	inRange := 0
	for _, t := range topics {
		if t.OrderSequence > m.AfterTopicOrder {
			continue
		}
		inRange++
		if t.Status != model.TopicCompleted {
			return false
		}
	}
	return inRange > 0
}

// RoadmapProgress is the roadmap-side progress snapshot.
type RoadmapProgress struct {
	TotalTopics     int                `json:"totalTopics"`
	CompletedTopics int                `json:"completedTopics"`
	InProgress      int                `json:"inProgressTopics"`
	PercentComplete float64            `json:"percentComplete"`
	Readiness       planner.Readiness  `json:"readiness"`
	NextMilestone   *string            `json:"nextMilestone,omitempty"`
	ByLevel         map[string][2]int  `json:"byLevel"` // level -> [completed, total]
}

// Progress aggregates topic completion and the roadmap readiness score.
// Elapsed days are counted from roadmap creation.
func (s *RoadmapService) Progress(userID uint) (*RoadmapProgress, error) {
	roadmap, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	progress := &RoadmapProgress{
		TotalTopics: len(roadmap.Topics),
		ByLevel:     make(map[string][2]int),
	}
	for _, t := range roadmap.Topics {
		entry := progress.ByLevel[t.Level]
		entry[1]++
		if t.Status == model.TopicCompleted {
			progress.CompletedTopics++
			entry[0]++
		} else if t.Status == model.TopicInProgress {
			progress.InProgress++
		}
		progress.ByLevel[t.Level] = entry
	}
	if progress.TotalTopics > 0 {
		progress.PercentComplete = float64(progress.CompletedTopics) / float64(progress.TotalTopics) * 100
	}

	elapsed := int(time.Since(roadmap.CreatedAt).Hours() / 24)
	progress.Readiness = planner.RoadmapReadiness(progress.TotalTopics, progress.CompletedTopics, roadmap.TotalDays, elapsed)

	for _, m := range roadmap.Milestones {
		if !m.Reached {
			title := m.Title
			progress.NextMilestone = &title
			break
		}
	}
	return progress, nil
}

// Branches lists the catalog's supported branches for the frontend picker.
func (s *RoadmapService) Branches() []string {
	return s.Catalog.SupportedBranches()
}
