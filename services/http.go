package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	docs "github.com/studyhall-app/studyhall_api/docs"
	"github.com/studyhall-app/studyhall_api/services/handlers"
	"github.com/studyhall-app/studyhall_api/shared"
)

type HttpService struct {
	appContext.DefaultService

	authSvc       *AuthService
	sessionSvc    *SessionService
	analyticsSvc  *AnalyticsService
	mediaSvc      *MediaService
	rateLimitSvc  *RateLimitService
	monitoringSvc *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *appContext.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.sessionSvc = svc.Service(SESSION_SVC).(*SessionService)
	svc.analyticsSvc = svc.Service(ANALYTICS_SVC).(*AnalyticsService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	docs.SwaggerInfo.BasePath = ""

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))
	app.Use(svc.rateLimitSvc.IPRateLimit())

	authHandler := handlers.NewAuthHandler(svc.authSvc)
	sessionHandler := handlers.NewSessionHandler(svc.sessionSvc)
	analyticsHandler := handlers.NewAnalyticsHandler(svc.analyticsSvc, svc.sessionSvc)
	achievementHandler := handlers.NewAchievementHandler(svc.sessionSvc)
	userHandler := handlers.NewUserHandler(svc.authSvc, svc.sessionSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	v1.Post("/register", svc.rateLimitSvc.RateLimit("register"), authHandler.Register)
	v1.Post("/login", svc.rateLimitSvc.RateLimit("login"), authHandler.Login)
	v1.Get("/achievements/catalog", achievementHandler.GetCatalog)

	auth := v1.Use(svc.authSvc.RequiredAuth())

	auth.Post("/sessions", svc.rateLimitSvc.UserBasedRateLimit("session_create"), sessionHandler.CreateSession)
	auth.Get("/sessions", sessionHandler.ListSessions)
	auth.Get("/sessions/:sessionId", sessionHandler.GetSession)
	auth.Delete("/sessions/:sessionId", sessionHandler.DeleteSession)

	auth.Post("/sessions/:sessionId/attachments", svc.rateLimitSvc.UserBasedRateLimit("attachment_upload"), mediaHandler.UploadAttachment)
	auth.Get("/sessions/:sessionId/attachments", mediaHandler.GetSessionAttachments)
	auth.Delete("/attachments/:attachmentId", mediaHandler.DeleteAttachment)

	auth.Get("/analytics/stats", analyticsHandler.GetStats)
	auth.Get("/analytics/trend", analyticsHandler.GetTrend)
	auth.Get("/analytics/streak", analyticsHandler.GetStreak)
	auth.Get("/analytics/projections", analyticsHandler.GetProjections)

	auth.Get("/achievements", achievementHandler.GetAchievements)

	auth.Get("/user/profile", userHandler.GetProfile)
	auth.Put("/user/weekly-goal", svc.rateLimitSvc.UserBasedRateLimit("goal_update"), userHandler.UpdateWeeklyGoal)

	svc.server = app

	log.Info().Int("port", svc.port).Msg("HTTP server started")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
