package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	userSeeder := NewUserSeeder(s.db)
	if err := userSeeder.SeedUsers(); err != nil {
		log.Printf("User seeding failed: %v", err)
		return err
	}

	// Sessions need the demo user to exist
	sessionSeeder := NewSessionSeeder(s.db)
	if err := sessionSeeder.SeedSessions(); err != nil {
		log.Printf("Session seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedUsersOnly seeds just the demo users
func (s *MainSeeder) SeedUsersOnly() error {
	return NewUserSeeder(s.db).SeedUsers()
}

// SeedSessionsOnly seeds just the sample sessions
func (s *MainSeeder) SeedSessionsOnly() error {
	return NewSessionSeeder(s.db).SeedSessions()
}
