package repository

import (
	"time"

	"placement_prep_backend/internal/model"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	DB *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

// Replace stores a new generation run and its tasks, deleting every prior
// run and task for the user inside one transaction. The run is the unit of
// replacement.
func (r *ScheduleRepository) Replace(userID uint, schedule *model.StudySchedule, tasks []model.StudyTask) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).
			Delete(&model.StudyTask{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).
			Delete(&model.StudySchedule{}).Error; err != nil {
			return err
		}

		schedule.UserID = userID
		if err := tx.Create(schedule).Error; err != nil {
			return err
		}
		for i := range tasks {
			tasks[i].UserID = userID
			tasks[i].ScheduleID = schedule.ID
		}
		if len(tasks) > 0 {
			if err := tx.CreateInBatches(tasks, 100).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ScheduleRepository) FindByUser(userID uint) (*model.StudySchedule, error) {
	var schedule model.StudySchedule
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").First(&schedule).Error
	return &schedule, err
}

// TasksInRange returns tasks with task_date in [from, to), ordered by date
// then slot time.
func (r *ScheduleRepository) TasksInRange(userID uint, from, to time.Time) ([]model.StudyTask, error) {
	var tasks []model.StudyTask
	err := r.DB.Where("user_id = ? AND task_date >= ? AND task_date < ?", userID, from, to).
		Order("task_date ASC, task_time ASC").Find(&tasks).Error
	return tasks, err
}

func (r *ScheduleRepository) FindTask(userID, taskID uint) (*model.StudyTask, error) {
	var task model.StudyTask
	err := r.DB.Where("user_id = ?", userID).First(&task, taskID).Error
	return &task, err
}

func (r *ScheduleRepository) UpdateTaskCompletion(taskID uint, completed bool, completedAt *time.Time, notes string) error {
	updates := map[string]interface{}{
		"completed":    completed,
		"completed_at": completedAt,
	}
	if notes != "" {
		updates["notes"] = notes
	}
	return r.DB.Model(&model.StudyTask{}).Where("id = ?", taskID).Updates(updates).Error
}

// ScheduleStats aggregates a run's task counts and minutes.
type ScheduleStats struct {
	TotalTasks       int64
	CompletedTasks   int64
	TotalMinutes     int64
	CompletedMinutes int64
	ScheduledDays    int64
}

func (r *ScheduleRepository) Stats(userID uint) (*ScheduleStats, error) {
	var stats ScheduleStats
	err := r.DB.Model(&model.StudyTask{}).Where("user_id = ?", userID).
		Select(`COUNT(*) AS total_tasks,
			SUM(CASE WHEN completed THEN 1 ELSE 0 END) AS completed_tasks,
			COALESCE(SUM(duration), 0) AS total_minutes,
			COALESCE(SUM(CASE WHEN completed THEN duration ELSE 0 END), 0) AS completed_minutes,
			COUNT(DISTINCT task_date) AS scheduled_days`).
		Scan(&stats).Error
	return &stats, err
}

// CompletedTaskDates returns the distinct dates with at least one completed
// task, newest first, capped for the streak walk-back.
func (r *ScheduleRepository) CompletedTaskDates(userID uint, limit int) ([]time.Time, error) {
	var dates []time.Time
	err := r.DB.Model(&model.StudyTask{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Distinct("task_date").Order("task_date DESC").Limit(limit).
		Pluck("task_date", &dates).Error
	return dates, err
}
