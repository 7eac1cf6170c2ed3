package service

import (
	"time"

	"gorm.io/gorm"

	"tunedu_backend/internals/features/activity/dto"
	"tunedu_backend/internals/features/activity/model"
)

// Record appends one activity event. Kinds are not validated beyond
// non-empty: unknown kinds are stored and simply never read by the
// dashboard aggregates.
func Record(db *gorm.DB, userID uint, req dto.RecordActivityRequest) error {
	row := model.ActivityModel{
		UserID:     userID,
		Kind:       req.Kind,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		ValueInt:   req.ValueInt,
	}
	return db.Create(&row).Error
}

// Dashboard answers "how has this user engaged lately" straight from the
// log, with no running counters. Day boundary is the server's local
// calendar day.
func Dashboard(db *gorm.DB, userID uint, now time.Time) (*dto.DashboardResponse, error) {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.Add(-7 * 24 * time.Hour)

	var out dto.DashboardResponse

	err := db.Model(&model.ActivityModel{}).
		Select("COALESCE(SUM(value_int), 0)").
		Where("user_id = ? AND kind = ? AND created_at >= ?", userID, model.KindTimeTick, todayStart).
		Scan(&out.TimeToday).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&model.ActivityModel{}).
		Select("COALESCE(SUM(value_int), 0)").
		Where("user_id = ? AND kind = ? AND created_at >= ?", userID, model.KindTimeTick, weekStart).
		Scan(&out.TimeWeek).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&model.ActivityModel{}).
		Select("COUNT(DISTINCT target_id)").
		Where("user_id = ? AND kind = ? AND target_type = ?", userID, model.KindPageView, "lesson").
		Scan(&out.LessonsViewed).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&model.ActivityModel{}).
		Select("COUNT(DISTINCT target_id)").
		Where("user_id = ? AND kind = ? AND target_type = ?", userID, model.KindExerciseOpen, "exercise").
		Scan(&out.ExercisesOpened).Error
	if err != nil {
		return nil, err
	}

	return &out, nil
}
