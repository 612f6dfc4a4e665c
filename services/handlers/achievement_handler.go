package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/studyhall-app/studyhall_api/shared"
)

type AchievementHandler struct {
	sessionSvc SessionServiceInterface
}

func NewAchievementHandler(sessionSvc SessionServiceInterface) *AchievementHandler {
	return &AchievementHandler{
		sessionSvc: sessionSvc,
	}
}

// @Summary Get unlocked achievements
// @Description List the user's unlocked achievements with unlock timestamps
// @Tags achievements
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.AchievementListResponse}
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) GetAchievements(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.sessionSvc.GetUserAchievements(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Get achievement catalog
// @Description List every achievement that can be unlocked
// @Tags achievements
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.AchievementCatalogResponse}
// @Router /api/v1/achievements/catalog [get]
func (h *AchievementHandler) GetCatalog(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, http.StatusOK, "Success", h.sessionSvc.GetAchievementCatalog())
}
