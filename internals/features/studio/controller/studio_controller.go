package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonModel "tunedu_backend/internals/features/curriculum/lessons/model"
	subjectModel "tunedu_backend/internals/features/curriculum/subjects/model"
	voteDto "tunedu_backend/internals/features/interactions/votes/dto"
	voteService "tunedu_backend/internals/features/interactions/votes/service"
	"tunedu_backend/internals/features/studio/dto"
	helper "tunedu_backend/internals/helpers"
)

var validate = validator.New()

// StudioController groups the authoring endpoints used by the admin UI. All
// routes here sit behind the staff-only middleware.
type StudioController struct {
	DB *gorm.DB
}

func NewStudioController(db *gorm.DB) *StudioController {
	return &StudioController{DB: db}
}

// ListSubjects → GET /studio/subjects
//
// Flat list with level/year names for the authoring dropdowns, ordered the
// same way the public tree is.
func (ctrl *StudioController) ListSubjects(c *fiber.Ctx) error {
	var subjects []dto.SubjectOption
	err := ctrl.DB.Table("subjects s").
		Select(`s.id, s.class_year_id, s.name, s.slug, s.description,
			cy.name AS year_name, l.name AS level_name`).
		Joins("JOIN class_years cy ON cy.id = s.class_year_id").
		Joins("JOIN levels l ON l.id = cy.level_id").
		Order(`l."order", cy."order", s.name`).
		Scan(&subjects).Error
	if err != nil {
		log.Printf("[ERROR] studio list subjects: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}
	return helper.JsonData(c, subjects)
}

// ListLessons → GET /studio/lessons
func (ctrl *StudioController) ListLessons(c *fiber.Ctx) error {
	var lessons []dto.LessonOption
	err := ctrl.DB.Table("lessons le").
		Select(`le.id, le.title, le.slug, s.name AS subject_name,
			cy.name AS year_name, l.name AS level_name`).
		Joins("JOIN subjects s ON s.id = le.subject_id").
		Joins("JOIN class_years cy ON cy.id = s.class_year_id").
		Joins("JOIN levels l ON l.id = cy.level_id").
		Order(`l."order", cy."order", s.name, le."order"`).
		Scan(&lessons).Error
	if err != nil {
		log.Printf("[ERROR] studio list lessons: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lessons")
	}
	return helper.JsonData(c, lessons)
}

// CreateSubject → POST /studio/subjects
func (ctrl *StudioController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Table("class_years").Where("id = ?", req.ClassYearID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class year not found")
	}

	base := helper.GenerateSlug(req.Name)
	if base == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name must contain letters or digits")
	}
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "subjects", "slug")
	if err != nil {
		log.Printf("[ERROR] subject slug: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}

	subject := subjectModel.SubjectModel{
		ClassYearID: req.ClassYearID,
		Name:        req.Name,
		Slug:        slug,
		Description: optional(req.Description),
	}
	if err := ctrl.DB.Create(&subject).Error; err != nil {
		log.Printf("[ERROR] create subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}

	return helper.JsonCreated(c, subject)
}

// CreateLesson → POST /studio/lessons
//
// The order defaults to the next position within the subject.
func (ctrl *StudioController) CreateLesson(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Table("subjects").Where("id = ?", req.SubjectID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	var nextOrder int
	if err := ctrl.DB.Table("lessons").
		Where("subject_id = ?", req.SubjectID).
		Select(`COALESCE(MAX("order"), 0) + 1`).
		Scan(&nextOrder).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}

	base := helper.GenerateSlug(req.Title)
	if base == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title must contain letters or digits")
	}
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "lessons", "slug")
	if err != nil {
		log.Printf("[ERROR] lesson slug: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}

	lesson := lessonModel.LessonModel{
		SubjectID: req.SubjectID,
		Title:     req.Title,
		Slug:      slug,
		Summary:   optional(req.Description),
		Order:     nextOrder,
	}
	if err := ctrl.DB.Create(&lesson).Error; err != nil {
		log.Printf("[ERROR] create lesson: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}

	return helper.JsonCreated(c, lesson)
}

// CreateSession → POST /studio/sessions
func (ctrl *StudioController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Table("lessons").Where("id = ?", req.LessonID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}

	var duration *int
	if req.DurationMinutes != nil {
		secs := *req.DurationMinutes * 60
		duration = &secs
	}

	session := lessonModel.RecordedSessionModel{
		LessonID:        req.LessonID,
		Title:           req.Title,
		VideoURL:        req.VideoURL,
		DurationSeconds: duration,
	}
	if err := ctrl.DB.Create(&session).Error; err != nil {
		log.Printf("[ERROR] create session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	return helper.JsonCreated(c, session)
}

// CreateExercise → POST /studio/exercises (multipart; PDF field "file" optional)
func (ctrl *StudioController) CreateExercise(c *fiber.Ctx) error {
	var req dto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Table("lessons").Where("id = ?", req.LessonID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create exercise")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
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

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = lessonModel.DifficultyMedium
	}

	exercise := lessonModel.ExerciseModel{
		LessonID:    req.LessonID,
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

// UploadManual → POST /studio/manuals (multipart: subject_id + "file")
func (ctrl *StudioController) UploadManual(c *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(c.FormValue("subject_id"))
	if err != nil || subjectID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id is required")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.Select("id").First(&subject, "id = ?", subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload manual")
	}

	name, err := helper.SavePDFUpload(fh, "manuals")
	if err != nil {
		if errors.Is(err, helper.ErrFileTooLarge) || errors.Is(err, helper.ErrNotPDF) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] save manual: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload manual")
	}

	path := "manuals/" + name
	if err := ctrl.DB.Model(&subjectModel.SubjectModel{}).
		Where("id = ?", subject.ID).
		Update("manual_path", path).Error; err != nil {
		helper.RemoveUpload("manuals", name)
		log.Printf("[ERROR] store manual path: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload manual")
	}

	return helper.JsonData(c, fiber.Map{"manual_url": "/uploads/" + path})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Recount → POST /studio/recount
//
// Rebuilds cached scores from the vote ledger. With a target_id it recounts
// one row, otherwise every row of the target type.
func (ctrl *StudioController) Recount(c *fiber.Ctx) error {
	var req voteDto.RecountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.TargetID != 0 {
		score, err := voteService.RecountScore(ctrl.DB, req.TargetType, req.TargetID)
		if err != nil {
			if errors.Is(err, voteService.ErrInvalidTarget) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid target type")
			}
			log.Printf("[ERROR] recount score: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to recount")
		}
		return helper.JsonData(c, fiber.Map{"target_type": req.TargetType, "target_id": req.TargetID, "score": score})
	}

	updated, err := voteService.RecountScores(ctrl.DB, req.TargetType)
	if err != nil {
		if errors.Is(err, voteService.ErrInvalidTarget) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid target type")
		}
		log.Printf("[ERROR] recount scores: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to recount")
	}
	return helper.JsonData(c, fiber.Map{"target_type": req.TargetType, "updated": updated})
}
