package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall-app/studyhall_api/model"
	"gorm.io/gorm"
)

// StreakRepository persists the per-user derived streak view. The row is a
// cache: everything except WeeklyGoal gets overwritten on every recompute.
type StreakRepository struct {
	BaseRepository
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// GetOrCreateStreakState fetches the user's streak row, creating the default
// one on first use.
func (ds *StreakRepository) GetOrCreateStreakState(userID string) (*model.StreakState, error) {
	var state model.StreakState
	err := ds.db.Where("user_id = ?", userID).First(&state).Error
	if err == nil {
		return &state, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	id, _ := uuid.NewV7()
	state = model.StreakState{
		ID:         id.String(),
		UserID:     userID,
		WeeklyGoal: 5,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := ds.db.Create(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

func (ds *StreakRepository) UpdateStreakState(state *model.StreakState) error {
	state.UpdatedAt = time.Now()
	return ds.db.Save(state).Error
}

func (ds *StreakRepository) UpdateWeeklyGoal(userID string, goal int) error {
	return ds.db.Model(&model.StreakState{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"weekly_goal": goal,
		"updated_at":  time.Now(),
	}).Error
}
