package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/studyhall-app/studyhall_api/model"
	"github.com/studyhall-app/studyhall_api/seed/seeders"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, users, sessions")
		dbPath   = flag.String("db", "", "Database path (overrides DB_NAME env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databasePath := *dbPath
	if databasePath == "" {
		databasePath = os.Getenv("DB_NAME")
		if databasePath == "" {
			databasePath = "studyhall.db"
		}
	}

	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Printf("Connected to database: %s", databasePath)

	if err := db.AutoMigrate(
		&model.User{},
		&model.StudySession{},
		&model.SessionAttachment{},
		&model.StreakState{},
		&model.UserAchievement{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "users":
		log.Println("Seeding demo users only...")
		if err := mainSeeder.SeedUsersOnly(); err != nil {
			log.Fatalf("Failed to seed users: %v", err)
		}
	case "sessions":
		log.Println("Seeding sample sessions only...")
		if err := mainSeeder.SeedSessionsOnly(); err != nil {
			log.Fatalf("Failed to seed sessions: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'users', or 'sessions'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func showHelp() {
	log.Println(`
Database Seeding Tool for StudyHall

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, users, sessions
  -db string
        Database path (overrides DB_NAME environment variable)
  -help
        Show this help message

Examples:
  # Seed everything
  go run seed/main.go

  # Seed only the demo users
  go run seed/main.go -type=users

  # Seed with custom database path
  go run seed/main.go -db=./custom.db

Environment Variables:
  DB_NAME - Default database path (default: studyhall.db)
`)
}
