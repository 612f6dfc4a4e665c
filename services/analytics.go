package services

import (
	"context"
	"fmt"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/studyhall-app/studyhall_api/analytics"
	"github.com/studyhall-app/studyhall_api/dto"
	"github.com/studyhall-app/studyhall_api/services/repositories"
	log "github.com/sirupsen/logrus"
)

// AnalyticsService serves the read side: aggregated stats, daily trend and
// projections. Everything is recomputed from the session list through the
// analytics package; Redis only memoizes the result for a short window and a
// cache miss is never an error.
type AnalyticsService struct {
	appContext.DefaultService

	sqlSvc   *SqliteService
	redisSvc *RedisService

	sessions *repositories.SessionRepository
}

const ANALYTICS_SVC = "analytics_svc"

const (
	analyticsCachePrefix = "analytics:"
	analyticsCacheTTL    = 2 * time.Minute
)

func (svc AnalyticsService) Id() string {
	return ANALYTICS_SVC
}

func (svc *AnalyticsService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AnalyticsService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)

	svc.sessions = repositories.NewSessionRepository(svc.sqlSvc.Db())
	return nil
}

func (svc *AnalyticsService) GetStats(userID string, req dto.StatsRequest) (*dto.StatsResponse, error) {
	scope := analytics.Scope{
		Range:    normalizeRange(req.Range),
		Topic:    req.Topic,
		Subtopic: req.Subtopic,
	}

	cacheKey := fmt.Sprintf("%s%s:stats:%s:%s:%s", analyticsCachePrefix, userID, scope.Range, scope.Topic, scope.Subtopic)
	var cached dto.StatsResponse
	if found := svc.cacheGet(cacheKey, &cached); found {
		return &cached, nil
	}

	sessions, err := svc.sessions.GetUserSessions(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	res := analytics.Aggregate(sessions, scope, time.Now())

	resp := &dto.StatsResponse{
		Range:             string(scope.Range),
		Topic:             scope.Topic,
		Subtopic:          scope.Subtopic,
		Sessions:          res.Sessions,
		TotalMinutes:      res.TotalMinutes,
		TotalHours:        res.TotalHours,
		ActiveDays:        res.ActiveDays,
		AvgSessionMinutes: res.AvgSessionMinutes,
		AvgDailyMinutes:   res.AvgDailyMinutes,
		Weekly:            res.Weekly,
		Monthly:           res.Monthly,
		Topics:            res.Topics,
	}

	svc.cacheSet(cacheKey, resp)
	return resp, nil
}

func (svc *AnalyticsService) GetTrend(userID string, topic string) (*dto.TrendResponse, error) {
	cacheKey := fmt.Sprintf("%s%s:trend:%s", analyticsCachePrefix, userID, topic)
	var cached dto.TrendResponse
	if found := svc.cacheGet(cacheKey, &cached); found {
		return &cached, nil
	}

	sessions, err := svc.sessions.GetUserSessions(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	res := analytics.Aggregate(sessions, analytics.Scope{Topic: topic}, time.Now())

	resp := &dto.TrendResponse{
		Days:  len(res.Trend),
		Trend: res.Trend,
	}

	svc.cacheSet(cacheKey, resp)
	return resp, nil
}

func (svc *AnalyticsService) GetProjections(userID string, rangeParam string) (*dto.ProjectionResponse, error) {
	r := normalizeRange(rangeParam)

	cacheKey := fmt.Sprintf("%s%s:projections:%s", analyticsCachePrefix, userID, r)
	var cached dto.ProjectionResponse
	if found := svc.cacheGet(cacheKey, &cached); found {
		return &cached, nil
	}

	sessions, err := svc.sessions.GetUserSessions(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	scopes := analytics.ActiveProjections(sessions, r, time.Now())

	resp := &dto.ProjectionResponse{
		Range:    string(r),
		Horizons: analytics.Horizons,
		Scopes:   scopes,
	}

	svc.cacheSet(cacheKey, resp)
	return resp, nil
}

func normalizeRange(raw string) analytics.TimeRange {
	switch analytics.TimeRange(raw) {
	case analytics.RangeWeek:
		return analytics.RangeWeek
	case analytics.RangeMonth:
		return analytics.RangeMonth
	default:
		return analytics.RangeAll
	}
}

func (svc *AnalyticsService) cacheGet(key string, dest interface{}) bool {
	found, err := svc.redisSvc.GetJSON(context.Background(), key, dest)
	if err != nil {
		log.Printf("Analytics cache read failed for %s: %v", key, err)
		return false
	}
	return found
}

func (svc *AnalyticsService) cacheSet(key string, value interface{}) {
	if err := svc.redisSvc.Set(context.Background(), key, value, analyticsCacheTTL); err != nil {
		log.Printf("Analytics cache write failed for %s: %v", key, err)
	}
}
