package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/studyhall-app/studyhall_api/dto"
	"github.com/studyhall-app/studyhall_api/shared"
)

type AnalyticsHandler struct {
	analyticsSvc AnalyticsServiceInterface
	sessionSvc   SessionServiceInterface
}

func NewAnalyticsHandler(analyticsSvc AnalyticsServiceInterface, sessionSvc SessionServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
		sessionSvc:   sessionSvc,
	}
}

// @Summary Get study statistics
// @Description Aggregated statistics with weekly, monthly and per-topic rollups, optionally scoped by range, topic and subtopic
// @Tags analytics
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param range query string false "Time range: week, month or all" default(all)
// @Param topic query string false "Filter by topic"
// @Param subtopic query string false "Filter by subtopic (requires topic)"
// @Success 200 {object} shared.Response{data=dto.StatsResponse}
// @Router /api/v1/analytics/stats [get]
func (h *AnalyticsHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	req := dto.StatsRequest{
		Range:    c.Query("range"),
		Topic:    c.Query("topic"),
		Subtopic: c.Query("subtopic"),
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.analyticsSvc.GetStats(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Get daily study trend
// @Description Daily totals for the last 30 days, zero-activity days included
// @Tags analytics
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param topic query string false "Filter by topic"
// @Success 200 {object} shared.Response{data=dto.TrendResponse}
// @Router /api/v1/analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.analyticsSvc.GetTrend(userID, c.Query("topic"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Get current streak
// @Description Current and longest streak, weekly goal progress and total achievement count
// @Tags analytics
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.StreakResponse}
// @Router /api/v1/analytics/streak [get]
func (h *AnalyticsHandler) GetStreak(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.sessionSvc.GetStreak(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Get study projections
// @Description Projected cumulative hours at fixed day horizons, overall and per active topic and subtopic
// @Tags analytics
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param range query string false "Averaging range: week, month or all" default(all)
// @Success 200 {object} shared.Response{data=dto.ProjectionResponse}
// @Router /api/v1/analytics/projections [get]
func (h *AnalyticsHandler) GetProjections(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.analyticsSvc.GetProjections(userID, c.Query("range"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
