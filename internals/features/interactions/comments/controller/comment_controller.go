package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/interactions/comments/dto"
	"tunedu_backend/internals/features/interactions/comments/model"
	userModel "tunedu_backend/internals/features/users/auth/model"
	helper "tunedu_backend/internals/helpers"
)

var validate = validator.New()

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

const commentSelect = `c.id, c.body, c.parent_id, c.created_at,
	u.id AS user_id, u.email AS user_email,
	u.first_name AS user_first_name, u.last_name AS user_last_name`

// GetComments → GET /comments?targetType=&targetId=
func (ctrl *CommentController) GetComments(c *fiber.Ctx) error {
	targetType := c.Query("targetType")
	targetID := c.QueryInt("targetId")
	if targetType == "" || targetID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "targetType and targetId are required")
	}

	comments := make([]dto.CommentResponse, 0)
	if err := ctrl.DB.Table("comments c").
		Select(commentSelect).
		Joins("JOIN users u ON c.user_id = u.id").
		Where("c.target_type = ? AND c.target_id = ?", targetType, targetID).
		Order("c.created_at DESC").
		Scan(&comments).Error; err != nil {
		log.Printf("[ERROR] get comments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch comments")
	}

	return helper.JsonData(c, comments)
}

// CreateComment → POST /comments (auth)
func (ctrl *CommentController) CreateComment(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	comment := model.CommentModel{
		UserID:     userID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Body:       req.Body,
		ParentID:   req.ParentID,
	}
	if err := ctrl.DB.Create(&comment).Error; err != nil {
		log.Printf("[ERROR] create comment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create comment")
	}

	var out dto.CommentResponse
	if err := ctrl.DB.Table("comments c").
		Select(commentSelect).
		Joins("JOIN users u ON c.user_id = u.id").
		Where("c.id = ?", comment.ID).
		Take(&out).Error; err != nil {
		log.Printf("[ERROR] reload comment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create comment")
	}

	return helper.JsonCreated(c, out)
}

// DeleteComment → DELETE /comments/:id (author or ADMIN)
func (ctrl *CommentController) DeleteComment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}

	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
	}
	role, _ := helper.GetUserRole(c)

	var comment model.CommentModel
	if err := ctrl.DB.Select("id, user_id").First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete comment")
	}

	if comment.UserID != userID && role != userModel.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to delete this comment")
	}

	// replies go with it via the parent_id cascade
	if err := ctrl.DB.Delete(&model.CommentModel{}, "id = ?", id).Error; err != nil {
		log.Printf("[ERROR] delete comment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete comment")
	}

	return helper.JsonData(c, fiber.Map{"success": true})
}
