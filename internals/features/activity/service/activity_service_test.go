package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tunedu_backend/internals/features/activity/dto"
	"tunedu_backend/internals/features/activity/model"
	userModel "tunedu_backend/internals/features/users/auth/model"
)

func setupActivityDB(t *testing.T) (*gorm.DB, uint) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// a second pooled connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}, &model.ActivityModel{}))

	user := userModel.UserModel{Email: "a@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return db, user.ID
}

func insertActivity(t *testing.T, db *gorm.DB, userID uint, kind string, targetType string, targetID uint, valueInt int, at time.Time) {
	t.Helper()
	row := model.ActivityModel{UserID: userID, Kind: kind}
	if targetType != "" {
		row.TargetType = &targetType
		row.TargetID = &targetID
	}
	if valueInt != 0 {
		row.ValueInt = &valueInt
	}
	require.NoError(t, db.Create(&row).Error)
	// autoCreateTime stamps now(); rewrite for backdated rows
	require.NoError(t, db.Model(&model.ActivityModel{}).
		Where("id = ?", row.ID).
		UpdateColumn("created_at", at).Error)
}

func TestRecordAppendsRow(t *testing.T) {
	db, userID := setupActivityDB(t)

	target := uint(5)
	tt := "lesson"
	req := dto.RecordActivityRequest{Kind: model.KindPageView, TargetType: &tt, TargetID: &target}
	require.NoError(t, Record(db, userID, req))

	var rows []model.ActivityModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, model.KindPageView, rows[0].Kind)
	require.Equal(t, "lesson", *rows[0].TargetType)
	require.EqualValues(t, 5, *rows[0].TargetID)
}

// fixed mid-afternoon instant keeps the today/week windows deterministic
var testNow = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

func TestDashboardSumsTimeTicks(t *testing.T) {
	db, userID := setupActivityDB(t)
	now := testNow

	for i := 0; i < 3; i++ {
		insertActivity(t, db, userID, model.KindTimeTick, "", 0, 15, now.Add(-time.Duration(i)*time.Minute))
	}

	out, err := Dashboard(db, userID, now)
	require.NoError(t, err)
	require.Equal(t, 45, out.TimeToday)
	require.Equal(t, 45, out.TimeWeek)
}

func TestDashboardWindows(t *testing.T) {
	db, userID := setupActivityDB(t)
	now := testNow

	// in this week but before today's midnight
	insertActivity(t, db, userID, model.KindTimeTick, "", 0, 30, now.Add(-48*time.Hour))
	// outside both windows
	insertActivity(t, db, userID, model.KindTimeTick, "", 0, 60, now.Add(-8*24*time.Hour))

	out, err := Dashboard(db, userID, now)
	require.NoError(t, err)
	require.Equal(t, 0, out.TimeToday)
	require.Equal(t, 30, out.TimeWeek)
}

func TestDashboardDistinctCounts(t *testing.T) {
	db, userID := setupActivityDB(t)
	now := time.Now()

	// lesson 1 viewed twice counts once
	insertActivity(t, db, userID, model.KindPageView, "lesson", 1, 0, now)
	insertActivity(t, db, userID, model.KindPageView, "lesson", 1, 0, now)
	insertActivity(t, db, userID, model.KindPageView, "lesson", 2, 0, now)
	// subject page views stay out of lessonsViewed
	insertActivity(t, db, userID, model.KindPageView, "subject", 3, 0, now)

	insertActivity(t, db, userID, model.KindExerciseOpen, "exercise", 10, 0, now)
	insertActivity(t, db, userID, model.KindExerciseOpen, "exercise", 10, 0, now)
	// opens logged against a lesson do not count as exercises
	insertActivity(t, db, userID, model.KindExerciseOpen, "lesson", 10, 0, now)

	out, err := Dashboard(db, userID, now)
	require.NoError(t, err)
	require.Equal(t, 2, out.LessonsViewed)
	require.Equal(t, 1, out.ExercisesOpened)
}

func TestDashboardEmpty(t *testing.T) {
	db, userID := setupActivityDB(t)

	out, err := Dashboard(db, userID, time.Now())
	require.NoError(t, err)
	require.Equal(t, 0, out.TimeToday)
	require.Equal(t, 0, out.TimeWeek)
	require.Equal(t, 0, out.LessonsViewed)
	require.Equal(t, 0, out.ExercisesOpened)
}

func TestDashboardScopedToUser(t *testing.T) {
	db, userID := setupActivityDB(t)
	now := time.Now()

	other := userModel.UserModel{Email: "b@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)

	insertActivity(t, db, userID, model.KindTimeTick, "", 0, 15, now)
	insertActivity(t, db, other.ID, model.KindTimeTick, "", 0, 600, now)

	out, err := Dashboard(db, userID, now)
	require.NoError(t, err)
	require.Equal(t, 15, out.TimeToday)
}
