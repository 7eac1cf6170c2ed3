package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tunedu_backend/internals/features/interactions/votes/model"
)

var (
	ErrInvalidValue  = errors.New("value must be 1 or -1")
	ErrInvalidTarget = errors.New("targetType must be lesson, session or exercise")
)

// Static mapping from target type to the table holding the cached score.
var targetTables = map[string]string{
	model.TargetLesson:   "lessons",
	model.TargetSession:  "recorded_sessions",
	model.TargetExercise: "exercises",
}

// CastVote records one user's vote on a target and keeps the target's
// cached score in step with the ledger. A repeat of the same value is a
// no-op; switching sides applies the (new − old) delta. Vote upsert and
// score update run in one transaction, so a crash can never leave the
// cache out of step with the ledger.
func CastVote(db *gorm.DB, userID uint, targetType string, targetID uint, value int) error {
	if value != 1 && value != -1 {
		return ErrInvalidValue
	}
	table, ok := targetTables[targetType]
	if !ok {
		return ErrInvalidTarget
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing model.VoteModel
		err := tx.Where("user_id = ? AND target_type = ? AND target_id = ?",
			userID, targetType, targetID).
			First(&existing).Error

		var delta int
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := model.VoteModel{
				UserID:     userID,
				TargetType: targetType,
				TargetID:   targetID,
				Value:      value,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			delta = value
		case err != nil:
			return err
		case existing.Value != value:
			if err := tx.Model(&model.VoteModel{}).
				Where("id = ?", existing.ID).
				Update("value", value).Error; err != nil {
				return err
			}
			delta = value - existing.Value
		default:
			// same vote again, nothing to apply
			return nil
		}

		return tx.Table(table).
			Where("id = ?", targetID).
			UpdateColumn("score", gorm.Expr("score + ?", delta)).Error
	})
}

// RecountScore recomputes one target's cached score from the vote ledger
// and writes it back. Returns the recomputed score.
func RecountScore(db *gorm.DB, targetType string, targetID uint) (int, error) {
	table, ok := targetTables[targetType]
	if !ok {
		return 0, ErrInvalidTarget
	}

	var score int
	err := db.Model(&model.VoteModel{}).
		Select("COALESCE(SUM(value), 0)").
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Scan(&score).Error
	if err != nil {
		return 0, err
	}

	err = db.Table(table).
		Where("id = ?", targetID).
		UpdateColumn("score", score).Error
	return score, err
}

// RecountScores reconciles every cached score of a target type against the
// ledger in one statement. Returns the number of rows touched.
func RecountScores(db *gorm.DB, targetType string) (int64, error) {
	table, ok := targetTables[targetType]
	if !ok {
		return 0, ErrInvalidTarget
	}

	res := db.Exec(fmt.Sprintf(`
		UPDATE %s SET score = COALESCE(
			(SELECT SUM(v.value) FROM votes v
			 WHERE v.target_type = ? AND v.target_id = %s.id), 0)`,
		table, table), targetType)
	return res.RowsAffected, res.Error
}
