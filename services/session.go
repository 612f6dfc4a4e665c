package services

import (
	"context"
	"encoding/json"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/studyhall-app/studyhall_api/analytics"
	"github.com/studyhall-app/studyhall_api/dto"
	"github.com/studyhall-app/studyhall_api/model"
	"github.com/studyhall-app/studyhall_api/services/repositories"
	"github.com/studyhall-app/studyhall_api/shared"
	log "github.com/sirupsen/logrus"
)

// SessionService owns the session lifecycle and runs the derived-state
// pipeline after every mutation: study days -> streak -> metrics ->
// achievement unlocks. Derived state is always recomputed from the full
// session list, so adding or deleting a session and immediately re-querying
// matches a recomputation from scratch.
type SessionService struct {
	appContext.DefaultService

	sqlSvc        *SqliteService
	redisSvc      *RedisService
	monitoringSvc *MonitoringService

	sessions     *repositories.SessionRepository
	achievements *repositories.AchievementRepository
	streaks      *repositories.StreakRepository
}

const SESSION_SVC = "session_svc"

func (svc SessionService) Id() string {
	return SESSION_SVC
}

func (svc *SessionService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *SessionService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	db := svc.sqlSvc.Db()
	svc.sessions = repositories.NewSessionRepository(db)
	svc.achievements = repositories.NewAchievementRepository(db)
	svc.streaks = repositories.NewStreakRepository(db)
	return nil
}

// ==================== SESSION LIFECYCLE ====================

func (svc *SessionService) CreateSession(userID string, req dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	now := time.Now()

	completedAt := req.CompletedAt
	if completedAt.IsZero() {
		completedAt = now
	}

	duration := req.Duration
	if duration < 0 {
		duration = 0
	}

	tags := json.RawMessage("[]")
	if len(req.Tags) > 0 {
		encoded, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, shared.NewBadRequestError(err, "Invalid tags")
		}
		tags = encoded
	}

	session, err := svc.sessions.CreateSession(&model.StudySession{
		UserID:      userID,
		Topic:       req.Topic,
		Subtopic:    req.Subtopic,
		Duration:    duration,
		CompletedAt: completedAt,
		Notes:       req.Notes,
		Tags:        tags,
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	state, newly, err := svc.recompute(userID, now)
	if err != nil {
		return nil, err
	}

	svc.invalidateAnalyticsCache(userID)
	svc.monitoringSvc.RecordSessionCreated(req.Topic, len(newly))

	return &dto.CreateSessionResponse{
		Session:         svc.toSessionResponse(session),
		Streak:          toStreakResponse(state),
		NewAchievements: toAchievementResponses(newly),
	}, nil
}

func (svc *SessionService) GetSession(userID, sessionID string) (*dto.SessionResponse, error) {
	session, err := svc.sessions.GetSession(userID, sessionID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	resp := svc.toSessionResponse(session)
	return &resp, nil
}

func (svc *SessionService) ListSessions(userID string, req dto.ListSessionsRequest) (*dto.SessionListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 50
	}

	sessions, total, err := svc.sessions.GetUserSessionsPage(userID, req.Topic, req.Subtopic, (page-1)*limit, limit)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	out := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, svc.toSessionResponse(&sessions[i]))
	}

	return &dto.SessionListResponse{
		Sessions: out,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// DeleteSession removes a session and recomputes the derived state. Unlocked
// achievements are deliberately left alone even when the deletion drops a
// metric below its threshold.
func (svc *SessionService) DeleteSession(userID, sessionID string) (*dto.StreakResponse, error) {
	if err := svc.sessions.DeleteSession(userID, sessionID); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	state, _, err := svc.recompute(userID, time.Now())
	if err != nil {
		return nil, err
	}

	svc.invalidateAnalyticsCache(userID)

	resp := toStreakResponse(state)
	return &resp, nil
}

// ==================== DERIVED STATE ====================

func (svc *SessionService) recompute(userID string, now time.Time) (*model.StreakState, []analytics.Achievement, error) {
	started := time.Now()

	sessions, err := svc.sessions.GetUserSessions(userID)
	if err != nil {
		return nil, nil, svc.sqlSvc.HandleError(err)
	}

	days := analytics.StudyDays(sessions)
	today := analytics.DayKeyOf(now)
	yesterday := analytics.DayKeyOf(now.AddDate(0, 0, -1))
	streak := analytics.ComputeStreak(days, today, yesterday)

	metrics := analytics.MetricsOf(sessions, streak)

	unlockedIDs, err := svc.achievements.GetUnlockedIDs(userID)
	if err != nil {
		return nil, nil, svc.sqlSvc.HandleError(err)
	}

	newly := analytics.UnlockAchievements(metrics, analytics.DefaultCatalog, unlockedIDs, now)
	for _, a := range newly {
		if _, err := svc.achievements.UnlockAchievement(userID, a.ID, a.UnlockedAt); err != nil {
			// Unique index makes a duplicate insert harmless; log and move on.
			log.Printf("Failed to persist achievement %s for user %s: %v", a.ID, userID, err)
		}
	}

	state, err := svc.streaks.GetOrCreateStreakState(userID)
	if err != nil {
		return nil, nil, svc.sqlSvc.HandleError(err)
	}

	state.CurrentStreak = streak.Current
	state.LongestStreak = streak.Longest
	state.LastStudyDate = nil
	if len(days) > 0 {
		last := string(days[0])
		state.LastStudyDate = &last
	}
	state.WeeklyProgress = weeklyProgress(days, today, state.WeeklyGoal)
	state.TotalRewards = len(unlockedIDs) + len(newly)

	if err := svc.streaks.UpdateStreakState(state); err != nil {
		return nil, nil, svc.sqlSvc.HandleError(err)
	}

	svc.monitoringSvc.RecordRecompute(time.Since(started))
	return state, newly, nil
}

// weeklyProgress counts distinct study days in the trailing 7-day window,
// capped at the user's weekly goal.
func weeklyProgress(days []analytics.DayKey, today analytics.DayKey, goal int) int {
	progress := 0
	for _, d := range days {
		gap := analytics.DaysBetween(d, today)
		if gap < 0 || gap > 6 {
			continue
		}
		progress++
	}
	if goal > 0 && progress > goal {
		progress = goal
	}
	return progress
}

func (svc *SessionService) GetStreak(userID string) (*dto.StreakResponse, error) {
	state, err := svc.streaks.GetOrCreateStreakState(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	resp := toStreakResponse(state)
	return &resp, nil
}

// UpdateWeeklyGoal stores the new goal and recomputes so the capped progress
// reflects it immediately.
func (svc *SessionService) UpdateWeeklyGoal(userID string, goal int) (*dto.StreakResponse, error) {
	if _, err := svc.streaks.GetOrCreateStreakState(userID); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	if err := svc.streaks.UpdateWeeklyGoal(userID, goal); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	state, _, err := svc.recompute(userID, time.Now())
	if err != nil {
		return nil, err
	}

	resp := toStreakResponse(state)
	return &resp, nil
}

// ==================== ACHIEVEMENT VIEWS ====================

func (svc *SessionService) GetUserAchievements(userID string) (*dto.AchievementListResponse, error) {
	rows, err := svc.achievements.GetUserAchievements(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	unlocked := make([]dto.AchievementResponse, 0, len(rows))
	for _, row := range rows {
		tpl, ok := analytics.CatalogTemplate(row.AchievementID)
		if !ok {
			// Row persisted under a template no longer in the catalog; the
			// unlock itself stays permanent.
			tpl = analytics.AchievementTemplate{ID: row.AchievementID}
		}
		unlockedAt := row.UnlockedAt
		unlocked = append(unlocked, dto.AchievementResponse{
			ID:          tpl.ID,
			Title:       tpl.Title,
			Description: tpl.Description,
			Icon:        tpl.Icon,
			Type:        string(tpl.Type),
			Threshold:   tpl.Threshold,
			UnlockedAt:  &unlockedAt,
		})
	}

	return &dto.AchievementListResponse{
		Unlocked: unlocked,
		Total:    len(unlocked),
	}, nil
}

func (svc *SessionService) GetAchievementCatalog() *dto.AchievementCatalogResponse {
	templates := make([]dto.AchievementResponse, 0, len(analytics.DefaultCatalog))
	for _, tpl := range analytics.DefaultCatalog {
		templates = append(templates, dto.AchievementResponse{
			ID:          tpl.ID,
			Title:       tpl.Title,
			Description: tpl.Description,
			Icon:        tpl.Icon,
			Type:        string(tpl.Type),
			Threshold:   tpl.Threshold,
		})
	}
	return &dto.AchievementCatalogResponse{
		Templates: templates,
		Total:     len(templates),
	}
}

// ==================== MAPPING ====================

func (svc *SessionService) toSessionResponse(session *model.StudySession) dto.SessionResponse {
	var tags []string
	if len(session.Tags) > 0 {
		if err := json.Unmarshal(session.Tags, &tags); err != nil {
			tags = nil
		}
	}

	return dto.SessionResponse{
		ID:          session.ID,
		Topic:       session.Topic,
		Subtopic:    session.Subtopic,
		Duration:    session.Duration,
		CompletedAt: session.CompletedAt,
		Notes:       session.Notes,
		Tags:        tags,
		CreatedAt:   session.CreatedAt,
	}
}

func toStreakResponse(state *model.StreakState) dto.StreakResponse {
	return dto.StreakResponse{
		CurrentStreak:  state.CurrentStreak,
		LongestStreak:  state.LongestStreak,
		LastStudyDate:  state.LastStudyDate,
		WeeklyGoal:     state.WeeklyGoal,
		WeeklyProgress: state.WeeklyProgress,
		TotalRewards:   state.TotalRewards,
	}
}

func toAchievementResponses(achievements []analytics.Achievement) []dto.AchievementResponse {
	out := make([]dto.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		unlockedAt := a.UnlockedAt
		out = append(out, dto.AchievementResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Type:        string(a.Type),
			Threshold:   a.Threshold,
			UnlockedAt:  &unlockedAt,
		})
	}
	return out
}

func (svc *SessionService) invalidateAnalyticsCache(userID string) {
	if err := svc.redisSvc.DeleteByPattern(context.Background(), analyticsCachePrefix+userID+":*"); err != nil {
		log.Printf("Failed to invalidate analytics cache for user %s: %v", userID, err)
	}
}
