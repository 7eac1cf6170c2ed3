package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonModel "tunedu_backend/internals/features/curriculum/lessons/model"
	"tunedu_backend/internals/features/curriculum/subjects/dto"
	subjectModel "tunedu_backend/internals/features/curriculum/subjects/model"
	"tunedu_backend/internals/features/curriculum/subjects/service"
	helper "tunedu_backend/internals/helpers"
)

var validate = validator.New()

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// GetSubjects → GET /years/:slug/subjects
func (ctrl *SubjectController) GetSubjects(c *fiber.Ctx) error {
	subjects, err := service.GetSubjectsByYearSlug(ctrl.DB, c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class year not found")
		}
		log.Printf("[ERROR] get subjects: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}
	return helper.JsonData(c, subjects)
}

// GetSubject → GET /subjects/:slug
func (ctrl *SubjectController) GetSubject(c *fiber.Ctx) error {
	subject, err := service.GetSubjectBySlug(ctrl.DB, c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		log.Printf("[ERROR] get subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}
	return helper.JsonData(c, subject)
}

// CreateLesson → POST /subjects/:slug/lessons (staff)
func (ctrl *SubjectController) CreateLesson(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.Select("id").First(&subject, "slug = ?", c.Params("slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
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
		SubjectID: subject.ID,
		Title:     req.Title,
		Slug:      slug,
		Summary:   optional(req.Summary),
		Order:     req.Order,
	}
	if err := ctrl.DB.Create(&lesson).Error; err != nil {
		log.Printf("[ERROR] create lesson: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}

	return helper.JsonCreated(c, lesson)
}

// UploadManual → POST /subjects/:slug/manual (staff, multipart "manual")
func (ctrl *SubjectController) UploadManual(c *fiber.Ctx) error {
	fh, err := c.FormFile("manual")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	name, err := helper.SavePDFUpload(fh, "manuals")
	if err != nil {
		if errors.Is(err, helper.ErrFileTooLarge) || errors.Is(err, helper.ErrNotPDF) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] save manual: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload manual")
	}

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.Select("id").First(&subject, "slug = ?", c.Params("slug")).Error; err != nil {
		helper.RemoveUpload("manuals", name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
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
