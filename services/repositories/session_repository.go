package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/studyhall-app/studyhall_api/model"
	"gorm.io/gorm"
)

// SessionRepository handles study session database operations. Sessions are
// append-mostly: created once, never updated, removed only by explicit
// deletion.
type SessionRepository struct {
	BaseRepository
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *SessionRepository) CreateSession(session *model.StudySession) (*model.StudySession, error) {
	if session.ID == "" {
		id, _ := uuid.NewV7()
		session.ID = id.String()
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	if err := ds.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (ds *SessionRepository) GetSession(userID, sessionID string) (*model.StudySession, error) {
	var session model.StudySession
	if err := ds.db.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetUserSessions returns the user's full session list ordered most recent
// first. Derived analytics always recompute from this list, so it must be
// complete.
func (ds *SessionRepository) GetUserSessions(userID string) ([]model.StudySession, error) {
	var sessions []model.StudySession
	if err := ds.db.Where("user_id = ?", userID).Order("completed_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (ds *SessionRepository) GetUserSessionsPage(userID, topic, subtopic string, offset, limit int) ([]model.StudySession, int64, error) {
	q := ds.db.Model(&model.StudySession{}).Where("user_id = ?", userID)
	if topic != "" {
		q = q.Where("topic = ?", topic)
	}
	if subtopic != "" {
		q = q.Where("subtopic = ?", subtopic)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sessions []model.StudySession
	if err := q.Order("completed_at DESC").Offset(offset).Limit(limit).Find(&sessions).Error; err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (ds *SessionRepository) DeleteSession(userID, sessionID string) error {
	res := ds.db.Where("id = ? AND user_id = ?", sessionID, userID).Delete(&model.StudySession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (ds *SessionRepository) CountUserSessions(userID string) (int64, error) {
	var count int64
	err := ds.db.Model(&model.StudySession{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
