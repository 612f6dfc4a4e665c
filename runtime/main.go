package main

import (
	"github.com/studyhall-app/studyhall_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title StudyHall API
// @version 1.0
// @description Study session tracking with streaks, achievements and analytics
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.SqliteService{},
		&services.RedisService{},
		&services.JWTService{},
		&services.MinIOService{},
		&services.MonitoringService{},
		&services.RateLimitService{},

		&services.AuthService{},
		&services.SessionService{},
		&services.AnalyticsService{},
		&services.MediaService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
