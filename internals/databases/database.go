package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tunedu_backend/internals/configs"
	activityModel "tunedu_backend/internals/features/activity/model"
	lessonModel "tunedu_backend/internals/features/curriculum/lessons/model"
	levelModel "tunedu_backend/internals/features/curriculum/levels/model"
	subjectModel "tunedu_backend/internals/features/curriculum/subjects/model"
	commentModel "tunedu_backend/internals/features/interactions/comments/model"
	voteModel "tunedu_backend/internals/features/interactions/votes/model"
	userModel "tunedu_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=tunedu&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // works with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates the schema. The content tree carries
// ON DELETE CASCADE constraints, so removing a parent removes every
// descendant row.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&levelModel.LevelModel{},
		&levelModel.ClassYearModel{},
		&subjectModel.SubjectModel{},
		&lessonModel.LessonModel{},
		&lessonModel.RecordedSessionModel{},
		&lessonModel.ExerciseModel{},
		&voteModel.VoteModel{},
		&commentModel.CommentModel{},
		&activityModel.ActivityModel{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database migrated.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
