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

func setupTree(t *testing.T) *gorm.DB {
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

	manual := "manuals/abc.pdf"
	maths := subjectModel.SubjectModel{ClassYearID: year.ID, Name: "Mathématiques", Slug: "mathematiques", ManualPath: &manual}
	require.NoError(t, db.Create(&maths).Error)
	physics := subjectModel.SubjectModel{ClassYearID: year.ID, Name: "Physique", Slug: "physique"}
	require.NoError(t, db.Create(&physics).Error)

	lessons := []lessonModel.LessonModel{
		{SubjectID: maths.ID, Title: "Suites", Slug: "suites", Order: 1},
		{SubjectID: maths.ID, Title: "Limites", Slug: "limites", Order: 2},
	}
	require.NoError(t, db.Create(&lessons).Error)
	return db
}

func TestGetSubjectsByYearSlug(t *testing.T) {
	db := setupTree(t)

	subjects, err := GetSubjectsByYearSlug(db, "baccalaureat")
	require.NoError(t, err)
	require.Len(t, subjects, 2)

	// ordered by name
	assert.Equal(t, "Mathématiques", subjects[0].Name)
	assert.Equal(t, "Physique", subjects[1].Name)

	require.NotNil(t, subjects[0].ManualURL)
	assert.Equal(t, "/uploads/manuals/abc.pdf", *subjects[0].ManualURL)
	assert.Nil(t, subjects[1].ManualURL)
}

func TestGetSubjectsByYearSlugUnknown(t *testing.T) {
	db := setupTree(t)

	_, err := GetSubjectsByYearSlug(db, "nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetSubjectBySlug(t *testing.T) {
	db := setupTree(t)

	subject, err := GetSubjectBySlug(db, "mathematiques")
	require.NoError(t, err)

	assert.Equal(t, "Mathématiques", subject.Name)
	assert.Equal(t, "Baccalauréat", subject.ClassYearName)
	assert.Equal(t, "Lycée", subject.LevelName)

	require.Len(t, subject.Lessons, 2)
	assert.Equal(t, "Suites", subject.Lessons[0].Title)
	assert.Equal(t, "Limites", subject.Lessons[1].Title)
}

func TestGetSubjectBySlugUnknown(t *testing.T) {
	db := setupTree(t)

	_, err := GetSubjectBySlug(db, "nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSubjectDeleteCascadesToLessons(t *testing.T) {
	db := setupTree(t)

	require.NoError(t, db.Exec(`DELETE FROM subjects WHERE slug = 'mathematiques'`).Error)

	var count int64
	require.NoError(t, db.Table("lessons").Count(&count).Error)
	assert.EqualValues(t, 0, count)

	_, err := GetSubjectBySlug(db, "mathematiques")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
