package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall-app/studyhall_api/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoUserEmail identifies the seeded account so other seeders can find it
const DemoUserEmail = "demo@studyhall.app"

// UserSeeder handles seeding demo users
type UserSeeder struct {
	db *gorm.DB
}

// NewUserSeeder creates a new user seeder
func NewUserSeeder(db *gorm.DB) *UserSeeder {
	return &UserSeeder{db: db}
}

// SeedUsers creates the demo account when it does not exist yet
func (s *UserSeeder) SeedUsers() error {
	var existing model.User
	if err := s.db.Where("email = ?", DemoUserEmail).First(&existing).Error; err == nil {
		log.Println("Demo user already exists, skipping user seeding")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("DemoPass123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id, _ := uuid.NewV7()
	user := model.User{
		ID:        id.String(),
		Email:     DemoUserEmail,
		Username:  "demo",
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.db.Create(&user).Error; err != nil {
		log.Printf("Error creating demo user: %v", err)
		return err
	}

	log.Printf("Created demo user: %s (password: DemoPass123!)", user.Email)
	return nil
}
