package dto

import (
	"time"

	"github.com/studyhall-app/studyhall_api/analytics"
)

// ==================== ANALYTICS REQUEST DTOs ====================

type StatsRequest struct {
	Range    string `json:"range" form:"range" validate:"omitempty,oneof=week month all"`
	Topic    string `json:"topic" form:"topic"`
	Subtopic string `json:"subtopic" form:"subtopic"`
}

func (r StatsRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== ANALYTICS RESPONSE DTOs ====================

type StatsResponse struct {
	Range             string                    `json:"range"`
	Topic             string                    `json:"topic,omitempty"`
	Subtopic          string                    `json:"subtopic,omitempty"`
	Sessions          int                       `json:"sessions"`
	TotalMinutes      int                       `json:"total_minutes"`
	TotalHours        float64                   `json:"total_hours"`
	ActiveDays        int                       `json:"active_days"`
	AvgSessionMinutes int                       `json:"avg_session_minutes"`
	AvgDailyMinutes   int                       `json:"avg_daily_minutes"`
	Weekly            []analytics.WeekBucket    `json:"weekly"`
	Monthly           []analytics.MonthBucket   `json:"monthly"`
	Topics            []analytics.TopicStat     `json:"topics"`
}

type TrendResponse struct {
	Days  int                     `json:"days"`
	Trend []analytics.TrendPoint  `json:"trend"`
}

type StreakResponse struct {
	CurrentStreak  int     `json:"current_streak"`
	LongestStreak  int     `json:"longest_streak"`
	LastStudyDate  *string `json:"last_study_date"`
	WeeklyGoal     int     `json:"weekly_goal"`
	WeeklyProgress int     `json:"weekly_progress"`
	TotalRewards   int     `json:"total_rewards"`
}

type ProjectionResponse struct {
	Range    string                      `json:"range"`
	Horizons []int                       `json:"horizons"`
	Scopes   []analytics.ScopeProjection `json:"scopes"`
}

// ==================== ACHIEVEMENT DTOs ====================

type AchievementResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Type        string     `json:"type"`
	Threshold   int        `json:"threshold"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

type AchievementListResponse struct {
	Unlocked []AchievementResponse `json:"unlocked"`
	Total    int                   `json:"total"`
}

type AchievementCatalogResponse struct {
	Templates []AchievementResponse `json:"templates"`
	Total     int                   `json:"total"`
}
