package service

import (
	"errors"
	"time"

	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/planner"
	"placement_prep_backend/internal/repository"
	"placement_prep_backend/internal/util"
	"placement_prep_backend/pkg/logger"

	"go.uber.org/zap"
)

// recentLogWindow bounds how much history feeds the adaptive loop.
const recentLogWindow = 30

type PerformanceService struct {
	PerformanceRepo *repository.PerformanceRepository
	SubjectRepo     *repository.SubjectRepository
	StreakSvc       *StreakService
}

func NewPerformanceService(
	performanceRepo *repository.PerformanceRepository,
	subjectRepo *repository.SubjectRepository,
	streakSvc *StreakService,
) *PerformanceService {
	return &PerformanceService{
		PerformanceRepo: performanceRepo,
		SubjectRepo:     subjectRepo,
		StreakSvc:       streakSvc,
	}
}

// LogRequest is one appended performance entry.
type LogRequest struct {
	Subject        string   `json:"subject" binding:"required"`
	LogDate        string   `json:"logDate"` // "2006-01-02", defaults to today
	MockScore      *float64 `json:"mockScore"`
	PracticeScore  *float64 `json:"practiceScore"`
	TasksCompleted int      `json:"tasksCompleted"`
	TasksTotal     int      `json:"tasksTotal"`
	StudyHours     float64  `json:"studyHours"`
	Effectiveness  *int     `json:"effectivenessRating"`
	Notes          string   `json:"notes"`
}

func (s *PerformanceService) Log(userID uint, req LogRequest) (*model.PerformanceLog, error) {
	if req.MockScore != nil && (*req.MockScore < 0 || *req.MockScore > 100) {
		return nil, errors.New("mock score must be between 0 and 100")
	}
	if req.PracticeScore != nil && (*req.PracticeScore < 0 || *req.PracticeScore > 100) {
		return nil, errors.New("practice score must be between 0 and 100")
	}
	if req.Effectiveness != nil && (*req.Effectiveness < 1 || *req.Effectiveness > 5) {
		return nil, errors.New("effectiveness rating must be between 1 and 5")
	}

	logDate := time.Now()
	if req.LogDate != "" {
		parsed, err := time.Parse(util.DateFormat, req.LogDate)
		if err != nil {
			return nil, errors.New("invalid log date")
		}
		logDate = parsed
	}

	entry := &model.PerformanceLog{
		UserID:         userID,
		Subject:        req.Subject,
		LogDate:        logDate,
		MockScore:      req.MockScore,
		PracticeScore:  req.PracticeScore,
		TasksCompleted: req.TasksCompleted,
		TasksTotal:     req.TasksTotal,
		StudyHours:     req.StudyHours,
		Effectiveness:  req.Effectiveness,
		Notes:          req.Notes,
	}
	if err := s.PerformanceRepo.Create(entry); err != nil {
		return nil, err
	}

	// Keep the subject's rolling performance score in step with its logs;
	// the readiness scorer reads it from the subject row.
	if req.MockScore != nil || req.PracticeScore != nil {
		sum, n := 0.0, 0
		if req.MockScore != nil {
			sum += *req.MockScore
			n++
		}
		if req.PracticeScore != nil {
			sum += *req.PracticeScore
			n++
		}
		if err := s.SubjectRepo.UpdatePerformanceScore(userID, req.Subject, sum/float64(n)); err != nil {
			logger.Log.Warn("Performance score update failed",
				zap.Uint("userID", userID), zap.String("subject", req.Subject), zap.Error(err))
		}
	}
	return entry, nil
}

// History lists logged entries, newest first. A non-empty subject narrows the
// result to that subject's full history in chronological order.
func (s *PerformanceService) History(userID uint, subject string, limit int) ([]model.PerformanceLog, error) {
	if subject != "" {
		return s.PerformanceRepo.ListBySubject(userID, subject)
	}
	return s.PerformanceRepo.ListByUser(userID, limit)
}

func (s *PerformanceService) SubjectAggregates(userID uint) ([]repository.SubjectAggregate, error) {
	return s.PerformanceRepo.AggregateBySubject(userID)
}

func plannerLogs(logs []model.PerformanceLog) []planner.PerformanceLog {
	converted := make([]planner.PerformanceLog, len(logs))
	for i, l := range logs {
		converted[i] = planner.PerformanceLog{
			Subject:        l.Subject,
			MockScore:      l.MockScore,
			PracticeScore:  l.PracticeScore,
			TasksCompleted: l.TasksCompleted,
			TasksTotal:     l.TasksTotal,
			StudyHours:     l.StudyHours,
		}
	}
	return converted
}

// WeightProposal pairs a subject's current weight with the adjuster's
// proposal.
type WeightProposal struct {
	Subject  string `json:"subject"`
	Current  int    `json:"currentWeight"`
	Proposed int    `json:"proposedWeight"`
	Changed  bool   `json:"changed"`
}

// ProposeWeights runs the adaptive adjuster over recent logs. Nothing is
// persisted; the user accepts or ignores the proposal.
func (s *PerformanceService) ProposeWeights(userID uint) ([]WeightProposal, error) {
	subjects, err := s.SubjectRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	logs, err := s.PerformanceRepo.ListByUser(userID, recentLogWindow)
	if err != nil {
		return nil, err
	}

	proposed := planner.AdjustWeights(subjectInputs(subjects), plannerLogs(logs))

	proposals := make([]WeightProposal, len(subjects))
	for i, subject := range subjects {
		next := proposed[subject.Name]
		proposals[i] = WeightProposal{
			Subject:  subject.Name,
			Current:  subject.Weight,
			Proposed: next,
			Changed:  next != subject.Weight,
		}
	}
	return proposals, nil
}

// ApplyWeights persists the adjuster's current proposal to the subject rows.
func (s *PerformanceService) ApplyWeights(userID uint) ([]WeightProposal, error) {
	proposals, err := s.ProposeWeights(userID)
	if err != nil {
		return nil, err
	}
	for _, p := range proposals {
		if !p.Changed {
			continue
		}
		if err := validateWeight(p.Proposed); err != nil {
			return nil, err
		}
		if err := s.SubjectRepo.UpdateWeight(userID, p.Subject, p.Proposed); err != nil {
			return nil, err
		}
		logger.Log.Info("Subject weight adjusted",
			zap.Uint("userID", userID),
			zap.String("subject", p.Subject),
			zap.Int("from", p.Current),
			zap.Int("to", p.Proposed))
	}
	return proposals, nil
}

// FocusSuggestions returns per-subject guidance strings from recent logs.
func (s *PerformanceService) FocusSuggestions(userID uint) ([]string, error) {
	subjects, err := s.SubjectRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	logs, err := s.PerformanceRepo.ListByUser(userID, recentLogWindow)
	if err != nil {
		return nil, err
	}
	return planner.SuggestFocusAreas(subjectInputs(subjects), plannerLogs(logs)), nil
}

// Readiness computes the schedule-side readiness score from subject
// performance, mock history and the current streak.
func (s *PerformanceService) Readiness(userID uint) (*planner.Readiness, error) {
	subjects, err := s.SubjectRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	logs, err := s.PerformanceRepo.ListByUser(userID, 0)
	if err != nil {
		return nil, err
	}
	streak, err := s.StreakSvc.Get(userID)
	if err != nil {
		return nil, err
	}

	performances := make([]planner.SubjectPerformance, len(subjects))
	for i, subject := range subjects {
		performances[i] = planner.SubjectPerformance{
			Subject: subject.Name,
			Score:   subject.PerformanceScore,
		}
	}

	readiness := planner.ScheduleReadiness(performances, plannerLogs(logs), streak.CurrentStreak)
	return &readiness, nil
}
