package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "tunedu_backend/internals/features/activity/route"
	assistantRoute "tunedu_backend/internals/features/assistant/route"
	lessonRoute "tunedu_backend/internals/features/curriculum/lessons/route"
	levelRoute "tunedu_backend/internals/features/curriculum/levels/route"
	subjectRoute "tunedu_backend/internals/features/curriculum/subjects/route"
	commentRoute "tunedu_backend/internals/features/interactions/comments/route"
	voteRoute "tunedu_backend/internals/features/interactions/votes/route"
	studioRoute "tunedu_backend/internals/features/studio/route"
	authRoute "tunedu_backend/internals/features/users/auth/route"
	helper "tunedu_backend/internals/helpers"
	authMw "tunedu_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under /api/v1. Authoring endpoints live
// behind auth + staff-role middleware; everything else manages its own auth.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1")

	authRoute.AuthRoutes(api, db)
	levelRoute.BrowseRoutes(api, db)
	subjectRoute.SubjectRoutes(api, db)
	lessonRoute.LessonRoutes(api, db)
	voteRoute.VoteRoutes(api, db)
	commentRoute.CommentRoutes(api, db)
	activityRoute.ActivityRoutes(api, db)
	assistantRoute.AssistantRoutes(api)

	staff := []fiber.Handler{authMw.AuthMiddleware(db), authMw.OnlyStaff()}
	studioRoute.StudioRoutes(api, db, staff...)
	subjectRoute.SubjectAdminRoutes(api, db, staff...)
	lessonRoute.LessonAdminRoutes(api, db, staff...)

	app.Use(func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
	})
}
