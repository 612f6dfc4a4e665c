package dto

import "time"

// ==================== SESSION REQUEST DTOs ====================

type CreateSessionRequest struct {
	Topic       string    `json:"topic" validate:"required,min=1,max=100" example:"mathematics"`
	Subtopic    string    `json:"subtopic" validate:"required,min=1,max=100" example:"linear algebra"`
	Duration    int       `json:"duration" validate:"required,min=0,max=1440" example:"45"` // minutes
	CompletedAt time.Time `json:"completed_at,omitempty"`                                   // defaults to now when zero
	Notes       string    `json:"notes,omitempty"`                                          // raw rich-text payload, stored as-is
	Tags        []string  `json:"tags,omitempty" validate:"max=20,dive,min=1,max=50"`
}

func (r CreateSessionRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ListSessionsRequest struct {
	Topic    string `json:"topic" form:"topic"`
	Subtopic string `json:"subtopic" form:"subtopic"`
	Range    string `json:"range" form:"range" validate:"omitempty,oneof=week month all"`
	Page     int    `json:"page" form:"page"`
	Limit    int    `json:"limit" form:"limit"`
}

func (r ListSessionsRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== SESSION RESPONSE DTOs ====================

type SessionResponse struct {
	ID          string    `json:"id"`
	Topic       string    `json:"topic"`
	Subtopic    string    `json:"subtopic"`
	Duration    int       `json:"duration"`
	CompletedAt time.Time `json:"completed_at"`
	Notes       string    `json:"notes,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// CreateSessionResponse returns the stored session together with the derived
// state the mutation produced: the recomputed streak and any achievements
// the session just unlocked.
type CreateSessionResponse struct {
	Session         SessionResponse       `json:"session"`
	Streak          StreakResponse        `json:"streak"`
	NewAchievements []AchievementResponse `json:"new_achievements"`
}
