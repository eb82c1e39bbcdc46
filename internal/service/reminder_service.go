package service

import (
	"context"
	"fmt"
	"time"

	"placement_prep_backend/internal/repository"
	"placement_prep_backend/internal/util"
	"placement_prep_backend/pkg/logger"
	"placement_prep_backend/pkg/mailer"

	"go.uber.org/zap"
)

// reminderTick is how often due reminders are polled. Coarse on purpose:
// the send-time granularity is one minute and duplicates are guarded by
// LastSentDate.
const reminderTick = time.Minute

type ReminderService struct {
	SettingsRepo *repository.SettingsRepository
	ScheduleRepo *repository.ScheduleRepository
	Mailer       *mailer.Mailer
}

func NewReminderService(settingsRepo *repository.SettingsRepository, scheduleRepo *repository.ScheduleRepository, m *mailer.Mailer) *ReminderService {
	return &ReminderService{
		SettingsRepo: settingsRepo,
		ScheduleRepo: scheduleRepo,
		Mailer:       m,
	}
}

// Run polls for due reminders until the context is cancelled. Intended to be
// started as a background goroutine at boot.
func (s *ReminderService) Run(ctx context.Context) {
	if !s.Mailer.Enabled() {
		logger.Log.Info("Mailer disabled, reminder loop not started")
		return
	}

	ticker := time.NewTicker(reminderTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sendDue(now)
		}
	}
}

func (s *ReminderService) sendDue(now time.Time) {
	due, err := s.SettingsRepo.ListDueReminders(now.Format(util.DateFormat))
	if err != nil {
		logger.Log.Error("Reminder query failed", zap.Error(err))
		return
	}

	clock := now.Format("15:04")
	for _, r := range due {
		if r.SendTime > clock {
			continue
		}
		if err := s.sendOne(r, now); err != nil {
			logger.Log.Error("Reminder send failed",
				zap.Uint("userID", r.UserID), zap.Error(err))
			continue
		}
		if err := s.SettingsRepo.MarkReminderSent(r.UserID); err != nil {
			logger.Log.Error("Reminder mark failed",
				zap.Uint("userID", r.UserID), zap.Error(err))
		}
	}
}

func (s *ReminderService) sendOne(r repository.DueReminder, now time.Time) error {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tasks, err := s.ScheduleRepo.TasksInRange(r.UserID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Hi %s,\n\n", r.Name)
	if len(tasks) == 0 {
		body += "You have no study tasks scheduled for today. Generate a schedule to stay on track!\n"
	} else {
		body += fmt.Sprintf("You have %d study tasks today:\n\n", len(tasks))
		for _, t := range tasks {
			body += fmt.Sprintf("  %s  %s — %s (%d min)\n", t.TaskTime, t.Subject, t.Topic, t.Duration)
		}
	}
	body += "\nGood luck with your preparation!\n"

	logger.Log.Info("Sending study reminder", zap.Uint("userID", r.UserID))
	return s.Mailer.Send(r.Email, "Your study plan for today", body)
}
