package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	lessonModel "tunedu_backend/internals/features/curriculum/lessons/model"
	levelModel "tunedu_backend/internals/features/curriculum/levels/model"
	subjectModel "tunedu_backend/internals/features/curriculum/subjects/model"
)

func setupLessonTree(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// a second pooled connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&levelModel.LevelModel{},
		&levelModel.ClassYearModel{},
		&subjectModel.SubjectModel{},
		&lessonModel.LessonModel{},
		&lessonModel.RecordedSessionModel{},
		&lessonModel.ExerciseModel{},
	))

	level := levelModel.LevelModel{Name: "Lycée", Slug: "lycee", Order: 3}
	require.NoError(t, db.Create(&level).Error)
	year := levelModel.ClassYearModel{LevelID: level.ID, Name: "Baccalauréat", Slug: "baccalaureat", Order: 4}
	require.NoError(t, db.Create(&year).Error)
	subject := subjectModel.SubjectModel{ClassYearID: year.ID, Name: "Mathématiques", Slug: "mathematiques"}
	require.NoError(t, db.Create(&subject).Error)

	lesson := lessonModel.LessonModel{SubjectID: subject.ID, Title: "Suites", Slug: "suites", Order: 1, Score: 3}
	require.NoError(t, db.Create(&lesson).Error)
	bare := lessonModel.LessonModel{SubjectID: subject.ID, Title: "Limites", Slug: "limites", Order: 2}
	require.NoError(t, db.Create(&bare).Error)

	duration := 1800
	session := lessonModel.RecordedSessionModel{LessonID: lesson.ID, Title: "Séance 1", VideoURL: "https://v/1", DurationSeconds: &duration}
	require.NoError(t, db.Create(&session).Error)

	filePath := "exercises/abc.pdf"
	exercises := []lessonModel.ExerciseModel{
		{LessonID: lesson.ID, Title: "Série 1", Difficulty: lessonModel.DifficultyEasy, FilePath: &filePath},
		{LessonID: lesson.ID, Title: "Série 2", Difficulty: lessonModel.DifficultyHard},
	}
	require.NoError(t, db.Create(&exercises).Error)
	return db
}

func TestGetLessonBySlug(t *testing.T) {
	db := setupLessonTree(t)

	lesson, err := GetLessonBySlug(db, "suites")
	require.NoError(t, err)

	assert.Equal(t, "Suites", lesson.Title)
	assert.Equal(t, 3, lesson.Score)
	assert.Equal(t, "Mathématiques", lesson.SubjectName)
	assert.Equal(t, "mathematiques", lesson.SubjectSlug)

	require.Len(t, lesson.Sessions, 1)
	assert.Equal(t, "Séance 1", lesson.Sessions[0].Title)
	require.NotNil(t, lesson.Sessions[0].DurationSeconds)
	assert.Equal(t, 1800, *lesson.Sessions[0].DurationSeconds)

	require.Len(t, lesson.Exercises, 2)
	require.NotNil(t, lesson.Exercises[0].FileURL)
	assert.Equal(t, "/uploads/exercises/abc.pdf", *lesson.Exercises[0].FileURL)
	assert.Nil(t, lesson.Exercises[1].FileURL)
}

func TestGetLessonBySlugNoChildren(t *testing.T) {
	db := setupLessonTree(t)

	lesson, err := GetLessonBySlug(db, "limites")
	require.NoError(t, err)

	// empty, not null, so clients can range without a nil check
	assert.NotNil(t, lesson.Sessions)
	assert.Empty(t, lesson.Sessions)
	assert.NotNil(t, lesson.Exercises)
	assert.Empty(t, lesson.Exercises)
}

func TestGetLessonBySlugUnknown(t *testing.T) {
	db := setupLessonTree(t)

	_, err := GetLessonBySlug(db, "integrales")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
