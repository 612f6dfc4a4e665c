package model

import "time"

// StreakState caches the derived streak view for a user. Everything except
// WeeklyGoal is recomputed from the session list after every mutation, so
// the row can always be rebuilt from scratch.
type StreakState struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"not null;uniqueIndex"`
	CurrentStreak  int       `json:"current_streak" gorm:"default:0"`
	LongestStreak  int       `json:"longest_streak" gorm:"default:0"`
	LastStudyDate  *string   `json:"last_study_date"` // calendar-day key, nil when no sessions exist
	WeeklyGoal     int       `json:"weekly_goal" gorm:"default:5"` // target study days per trailing week
	WeeklyProgress int       `json:"weekly_progress" gorm:"default:0"`
	TotalRewards   int       `json:"total_rewards" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserAchievement records an unlocked achievement. At most one row ever
// exists per (user, achievement) pair and rows are never deleted, even if
// session deletions later drop the metric below the threshold.
type UserAchievement struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"not null;index:idx_user_achievement,unique"`
	AchievementID string    `json:"achievement_id" gorm:"not null;index:idx_user_achievement,unique"`
	UnlockedAt    time.Time `json:"unlocked_at"`
	CreatedAt     time.Time `json:"created_at"`
}
