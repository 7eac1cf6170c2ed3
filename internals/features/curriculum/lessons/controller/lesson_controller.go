package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/curriculum/lessons/dto"
	lessonModel "tunedu_backend/internals/features/curriculum/lessons/model"
	"tunedu_backend/internals/features/curriculum/lessons/service"
	helper "tunedu_backend/internals/helpers"
)

var validate = validator.New()

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

// GetLesson → GET /lessons/:slug
func (ctrl *LessonController) GetLesson(c *fiber.Ctx) error {
	lesson, err := service.GetLessonBySlug(ctrl.DB, c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		log.Printf("[ERROR] get lesson: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lesson")
	}
	return helper.JsonData(c, lesson)
}

// CreateSession → POST /lessons/:slug/sessions (staff)
func (ctrl *LessonController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var lesson lessonModel.LessonModel
	if err := ctrl.DB.Select("id").First(&lesson, "slug = ?", c.Params("slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	session := lessonModel.RecordedSessionModel{
		LessonID:        lesson.ID,
		Title:           req.Title,
		VideoURL:        req.VideoURL,
		DurationSeconds: req.DurationSeconds,
	}
	if err := ctrl.DB.Create(&session).Error; err != nil {
		log.Printf("[ERROR] create session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	return helper.JsonCreated(c, session)
}

// CreateExercise → POST /lessons/:slug/exercises (staff, multipart; the PDF
// field "file" is optional)
func (ctrl *LessonController) CreateExercise(c *fiber.Ctx) error {
	var req dto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var filePath *string
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		name, err := helper.SavePDFUpload(fh, "exercises")
		if err != nil {
			if errors.Is(err, helper.ErrFileTooLarge) || errors.Is(err, helper.ErrNotPDF) {
				return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
			}
			log.Printf("[ERROR] save exercise file: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create exercise")
		}
		p := "exercises/" + name
		filePath = &p
	}

	var lesson lessonModel.LessonModel
	if err := ctrl.DB.Select("id").First(&lesson, "slug = ?", c.Params("slug")).Error; err != nil {
		if filePath != nil {
			helper.RemoveUpload("", *filePath)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create exercise")
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = lessonModel.DifficultyMedium
	}

	exercise := lessonModel.ExerciseModel{
		LessonID:    lesson.ID,
		Title:       req.Title,
		Description: optional(req.Description),
		FilePath:    filePath,
		Difficulty:  difficulty,
	}
	if err := ctrl.DB.Create(&exercise).Error; err != nil {
		if filePath != nil {
			helper.RemoveUpload("", *filePath)
		}
		log.Printf("[ERROR] create exercise: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create exercise")
	}

	return helper.JsonCreated(c, exercise)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
