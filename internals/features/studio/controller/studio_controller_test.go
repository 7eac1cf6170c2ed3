package controller

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	lessonModel "tunedu_backend/internals/features/curriculum/lessons/model"
	levelModel "tunedu_backend/internals/features/curriculum/levels/model"
	subjectModel "tunedu_backend/internals/features/curriculum/subjects/model"
)

func setupStudio(t *testing.T) (*fiber.App, *gorm.DB, levelModel.ClassYearModel) {
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
	))

	level := levelModel.LevelModel{Name: "Collège", Slug: "college", Order: 2}
	require.NoError(t, db.Create(&level).Error)
	year := levelModel.ClassYearModel{LevelID: level.ID, Name: "7ème année", Slug: "7eme-annee", Order: 1}
	require.NoError(t, db.Create(&year).Error)

	ctrl := NewStudioController(db)
	app := fiber.New()
	app.Post("/studio/subjects", ctrl.CreateSubject)
	app.Post("/studio/lessons", ctrl.CreateLesson)
	return app, db, year
}

func postStudio(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateSubject(t *testing.T) {
	app, db, year := setupStudio(t)

	status := postStudio(t, app, "/studio/subjects",
		`{"class_year_id":`+itoa(year.ID)+`,"name":"Éducation islamique"}`)
	assert.Equal(t, fiber.StatusCreated, status)

	var subject subjectModel.SubjectModel
	require.NoError(t, db.First(&subject, "name = ?", "Éducation islamique").Error)
	assert.Equal(t, "education-islamique", subject.Slug)
}

func TestCreateSubjectUnslugifiableName(t *testing.T) {
	app, db, year := setupStudio(t)

	// nothing alphanumeric survives slugification
	status := postStudio(t, app, "/studio/subjects",
		`{"class_year_id":`+itoa(year.ID)+`,"name":"!!!"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var count int64
	require.NoError(t, db.Model(&subjectModel.SubjectModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateSubjectUnknownYear(t *testing.T) {
	app, _, _ := setupStudio(t)

	status := postStudio(t, app, "/studio/subjects", `{"class_year_id":999,"name":"Maths"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCreateLessonAppendsOrder(t *testing.T) {
	app, db, year := setupStudio(t)

	subject := subjectModel.SubjectModel{ClassYearID: year.ID, Name: "Maths", Slug: "maths"}
	require.NoError(t, db.Create(&subject).Error)
	existing := lessonModel.LessonModel{SubjectID: subject.ID, Title: "Entiers", Slug: "entiers", Order: 4}
	require.NoError(t, db.Create(&existing).Error)

	status := postStudio(t, app, "/studio/lessons",
		`{"subject_id":`+itoa(subject.ID)+`,"title":"Fractions"}`)
	assert.Equal(t, fiber.StatusCreated, status)

	var lesson lessonModel.LessonModel
	require.NoError(t, db.First(&lesson, "slug = ?", "fractions").Error)
	assert.Equal(t, 5, lesson.Order)
}

func TestCreateLessonUnslugifiableTitle(t *testing.T) {
	app, db, year := setupStudio(t)

	subject := subjectModel.SubjectModel{ClassYearID: year.ID, Name: "Maths", Slug: "maths"}
	require.NoError(t, db.Create(&subject).Error)

	status := postStudio(t, app, "/studio/lessons",
		`{"subject_id":`+itoa(subject.ID)+`,"title":"؟؟؟"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var count int64
	require.NoError(t, db.Model(&lessonModel.LessonModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
