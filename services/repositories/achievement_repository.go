package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/studyhall-app/studyhall_api/model"
	"gorm.io/gorm"
)

// AchievementRepository persists unlocked achievements. Rows are insert-only;
// an unlocked achievement is never revoked, even when later deletions drop
// the metric back below its threshold.
type AchievementRepository struct {
	BaseRepository
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *AchievementRepository) GetUserAchievements(userID string) ([]model.UserAchievement, error) {
	var achievements []model.UserAchievement
	if err := ds.db.Where("user_id = ?", userID).Order("unlocked_at DESC").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (ds *AchievementRepository) GetUnlockedIDs(userID string) ([]string, error) {
	var ids []string
	err := ds.db.Model(&model.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (ds *AchievementRepository) UnlockAchievement(userID, achievementID string, unlockedAt time.Time) (*model.UserAchievement, error) {
	id, _ := uuid.NewV7()
	row := &model.UserAchievement{
		ID:            id.String(),
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    unlockedAt,
		CreatedAt:     time.Now(),
	}
	if err := ds.db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (ds *AchievementRepository) CountUserAchievements(userID string) (int64, error) {
	var count int64
	err := ds.db.Model(&model.UserAchievement{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
