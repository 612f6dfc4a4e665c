package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/studyhall-app/studyhall_api/dto"
	"github.com/studyhall-app/studyhall_api/shared"
)

type SessionHandler struct {
	sessionSvc SessionServiceInterface
}

func NewSessionHandler(sessionSvc SessionServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessionSvc: sessionSvc,
	}
}

// @Summary Record a study session
// @Description Store a completed study session and return the recomputed streak and any newly unlocked achievements
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param sessionRequest body dto.CreateSessionRequest true "Session details"
// @Success 201 {object} shared.Response{data=dto.CreateSessionResponse}
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.sessionSvc.CreateSession(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Session recorded successfully", resp)
}

// @Summary List study sessions
// @Description List the user's sessions, newest first, with optional topic and subtopic filters
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param topic query string false "Filter by topic"
// @Param subtopic query string false "Filter by subtopic"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} shared.Response{data=dto.SessionListResponse}
// @Router /api/v1/sessions [get]
func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	req := dto.ListSessionsRequest{
		Topic:    c.Query("topic"),
		Subtopic: c.Query("subtopic"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 50),
	}

	resp, err := h.sessionSvc.ListSessions(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Get a study session
// @Description Get a single session by id
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.SessionResponse}
// @Router /api/v1/sessions/{sessionId} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	sessionID := c.Params("sessionId")

	resp, err := h.sessionSvc.GetSession(userID, sessionID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Delete a study session
// @Description Delete a session and return the recomputed streak. Unlocked achievements are kept.
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.StreakResponse}
// @Router /api/v1/sessions/{sessionId} [delete]
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	sessionID := c.Params("sessionId")

	resp, err := h.sessionSvc.DeleteSession(userID, sessionID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Session deleted successfully", resp)
}
