package repository

import (
	"time"

	"placement_prep_backend/internal/model"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

// Replace persists a freshly generated roadmap, deleting any prior roadmap
// and everything it owns in the same transaction. Partial replacement is
// never visible.
func (r *RoadmapRepository) Replace(userID uint, roadmap *model.Roadmap,
	topics []model.RoadmapTopic, milestones []model.RoadmapMilestone) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var oldIDs []uint
		if err := tx.Model(&model.Roadmap{}).Where("user_id = ?", userID).
			Pluck("id", &oldIDs).Error; err != nil {
			return err
		}
		if len(oldIDs) > 0 {
			if err := tx.Unscoped().Where("roadmap_id IN ?", oldIDs).
				Delete(&model.RoadmapTopic{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("roadmap_id IN ?", oldIDs).
				Delete(&model.RoadmapMilestone{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("user_id = ?", userID).
				Delete(&model.Roadmap{}).Error; err != nil {
				return err
			}
		}

		roadmap.UserID = userID
		if err := tx.Create(roadmap).Error; err != nil {
			return err
		}
		for i := range topics {
			topics[i].RoadmapID = roadmap.ID
		}
		if len(topics) > 0 {
			if err := tx.CreateInBatches(topics, 100).Error; err != nil {
				return err
			}
		}
		for i := range milestones {
			milestones[i].RoadmapID = roadmap.ID
		}
		if len(milestones) > 0 {
			if err := tx.Create(&milestones).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RoadmapRepository) FindByUser(userID uint) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").First(&roadmap).Error
	return &roadmap, err
}

func (r *RoadmapRepository) ListTopics(roadmapID uint) ([]model.RoadmapTopic, error) {
	var topics []model.RoadmapTopic
	err := r.DB.Where("roadmap_id = ?", roadmapID).
		Order("order_sequence ASC").Find(&topics).Error
	return topics, err
}

func (r *RoadmapRepository) ListMilestones(roadmapID uint) ([]model.RoadmapMilestone, error) {
	var milestones []model.RoadmapMilestone
	err := r.DB.Where("roadmap_id = ?", roadmapID).
		Order("after_topic_order ASC").Find(&milestones).Error
	return milestones, err
}

func (r *RoadmapRepository) FindTopic(roadmapID, topicID uint) (*model.RoadmapTopic, error) {
	var topic model.RoadmapTopic
	err := r.DB.Where("roadmap_id = ?", roadmapID).First(&topic, topicID).Error
	return &topic, err
}

func (r *RoadmapRepository) UpdateTopicStatus(topicID uint, status model.TopicStatus, completedAt *time.Time) error {
	return r.DB.Model(&model.RoadmapTopic{}).Where("id = ?", topicID).
		Updates(map[string]interface{}{
			"status":       status,
			"completed_at": completedAt,
		}).Error
}

// UpdateMilestoneReached sets the derived reached flag in either direction:
// a topic reverting to in-progress can take a milestone back with it.
func (r *RoadmapRepository) UpdateMilestoneReached(milestoneID uint, reached bool, reachedAt *time.Time) error {
	return r.DB.Model(&model.RoadmapMilestone{}).Where("id = ?", milestoneID).
		Updates(map[string]interface{}{
			"reached":    reached,
			"reached_at": reachedAt,
		}).Error
}
