package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/studyhall-app/studyhall_api/dto"
	"github.com/studyhall-app/studyhall_api/shared"
)

type UserHandler struct {
	authSvc    AuthServiceInterface
	sessionSvc SessionServiceInterface
}

func NewUserHandler(authSvc AuthServiceInterface, sessionSvc SessionServiceInterface) *UserHandler {
	return &UserHandler{
		authSvc:    authSvc,
		sessionSvc: sessionSvc,
	}
}

// @Summary Get user profile
// @Description Get the authenticated user's profile
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.UserProfileResponse}
// @Router /api/v1/user/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.authSvc.GetUserProfile(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Update weekly goal
// @Description Set the target number of study days per week and return the refreshed streak state
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param goalRequest body dto.UpdateWeeklyGoalRequest true "New weekly goal"
// @Success 200 {object} shared.Response{data=dto.StreakResponse}
// @Router /api/v1/user/weekly-goal [put]
func (h *UserHandler) UpdateWeeklyGoal(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.UpdateWeeklyGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.sessionSvc.UpdateWeeklyGoal(userID, req.WeeklyGoal)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Weekly goal updated successfully", resp)
}
