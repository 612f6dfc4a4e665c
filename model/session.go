package model

import (
	"encoding/json"
	"time"
)

// StudySession is a single timed study sitting. Immutable once recorded;
// removed only by explicit user deletion. All derived statistics are
// recomputed from the full session list, never from the row itself.
type StudySession struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	UserID      string          `json:"user_id" gorm:"not null;index"`
	Topic       string          `json:"topic" gorm:"not null"`
	Subtopic    string          `json:"subtopic" gorm:"not null"`
	Duration    int             `json:"duration" gorm:"not null"` // minutes
	CompletedAt time.Time       `json:"completed_at" gorm:"not null;index"`
	Notes       string          `json:"notes" gorm:"type:text"` // raw rich-text payload, never interpreted
	Tags        json.RawMessage `json:"tags" gorm:"type:text"`  // JSON array of strings
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SessionAttachment tracks a binary asset stored in object storage
// alongside a session's notes (sketches, photos of worksheets, audio).
type SessionAttachment struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	SessionID   string    `json:"session_id" gorm:"not null;index"`
	UserID      string    `json:"user_id" gorm:"not null"`
	FileName    string    `json:"file_name" gorm:"not null"`
	ObjectKey   string    `json:"object_key" gorm:"not null"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationship
	Session StudySession `json:"-" gorm:"foreignKey:SessionID"`
}
