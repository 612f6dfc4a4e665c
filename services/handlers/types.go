package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/studyhall-app/studyhall_api/dto"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	GetUserProfile(userID string) (*dto.UserProfileResponse, error)
	RequiredAuth() fiber.Handler
}

type JWTServiceInterface interface {
	ExtractTokenFromHeader(authHeader string) (string, error)
	VerifyJWTToken(token string) (string, error)
}

type SessionServiceInterface interface {
	CreateSession(userID string, req dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetSession(userID, sessionID string) (*dto.SessionResponse, error)
	ListSessions(userID string, req dto.ListSessionsRequest) (*dto.SessionListResponse, error)
	DeleteSession(userID, sessionID string) (*dto.StreakResponse, error)
	GetStreak(userID string) (*dto.StreakResponse, error)
	UpdateWeeklyGoal(userID string, goal int) (*dto.StreakResponse, error)
	GetUserAchievements(userID string) (*dto.AchievementListResponse, error)
	GetAchievementCatalog() *dto.AchievementCatalogResponse
}

type AnalyticsServiceInterface interface {
	GetStats(userID string, req dto.StatsRequest) (*dto.StatsResponse, error)
	GetTrend(userID string, topic string) (*dto.TrendResponse, error)
	GetProjections(userID string, rangeParam string) (*dto.ProjectionResponse, error)
}

type MediaServiceInterface interface {
	UploadAttachment(userID, sessionID string, file *multipart.FileHeader) (*dto.AttachmentUploadResponse, error)
	GetSessionAttachments(userID, sessionID string) (*dto.AttachmentListResponse, error)
	DeleteAttachment(userID, attachmentID string) error
}
