package seeders

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall-app/studyhall_api/model"
	"gorm.io/gorm"
)

// SessionSeeder handles seeding sample study sessions
type SessionSeeder struct {
	db *gorm.DB
}

// NewSessionSeeder creates a new session seeder
func NewSessionSeeder(db *gorm.DB) *SessionSeeder {
	return &SessionSeeder{db: db}
}

type sampleSession struct {
	topic    string
	subtopic string
	minutes  int
	daysAgo  int
	tags     []string
}

// SeedSessions creates a few weeks of study history for the demo user
func (s *SessionSeeder) SeedSessions() error {
	var user model.User
	if err := s.db.Where("email = ?", DemoUserEmail).First(&user).Error; err != nil {
		log.Println("Demo user not found, run user seeding first")
		return err
	}

	var count int64
	if err := s.db.Model(&model.StudySession{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Demo sessions already exist, skipping session seeding")
		return nil
	}

	samples := []sampleSession{
		{"mathematics", "linear algebra", 45, 0, []string{"matrices"}},
		{"mathematics", "calculus", 60, 1, []string{"integrals", "exam-prep"}},
		{"physics", "mechanics", 30, 1, nil},
		{"mathematics", "linear algebra", 90, 2, []string{"eigenvalues"}},
		{"spanish", "vocabulary", 20, 3, []string{"flashcards"}},
		{"spanish", "grammar", 25, 4, nil},
		{"physics", "optics", 40, 6, nil},
		{"mathematics", "calculus", 75, 7, []string{"exam-prep"}},
		{"spanish", "vocabulary", 15, 9, []string{"flashcards"}},
		{"physics", "mechanics", 55, 12, nil},
		{"mathematics", "linear algebra", 35, 14, nil},
		{"spanish", "grammar", 30, 20, nil},
	}

	now := time.Now()
	for _, sample := range samples {
		tags := json.RawMessage("[]")
		if len(sample.tags) > 0 {
			encoded, err := json.Marshal(sample.tags)
			if err != nil {
				return err
			}
			tags = encoded
		}

		id, _ := uuid.NewV7()
		session := model.StudySession{
			ID:          id.String(),
			UserID:      user.ID,
			Topic:       sample.topic,
			Subtopic:    sample.subtopic,
			Duration:    sample.minutes,
			CompletedAt: now.AddDate(0, 0, -sample.daysAgo),
			Tags:        tags,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := s.db.Create(&session).Error; err != nil {
			log.Printf("Error creating sample session: %v", err)
			return err
		}
	}

	log.Printf("Created %d sample sessions for %s", len(samples), user.Email)
	return nil
}
