package dto

import "time"

// User Profile DTOs
type UserProfileResponse struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	JoinedAt    time.Time `json:"joined_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

type UpdateWeeklyGoalRequest struct {
	WeeklyGoal int `json:"weekly_goal" validate:"required,min=1,max=7" example:"5"` // study days per week
}

func (r UpdateWeeklyGoalRequest) Validate() error {
	return GetValidator().Struct(r)
}
