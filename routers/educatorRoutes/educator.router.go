package educatorRoutes

import (
	controllers "edemy/controllers/educator"
	"edemy/middleware"
	"edemy/models"
	"edemy/store"
	courseValidator "edemy/validators/course"
	validators "edemy/validators/educator"

	"github.com/gofiber/fiber/v2"
)

// SetupEducatorRoutes sets up the educator console routes
func SetupEducatorRoutes(app *fiber.App, st *store.Store, h *controllers.Controller) {
	educatorGroup := app.Group("/api/educator",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleEducator),
		middleware.SessionMiddleware(st),
	)

	educatorGroup.Get("/dashboard", h.Dashboard)
	educatorGroup.Get("/my-courses", h.MyCourses)
	educatorGroup.Get("/enrolled-students", h.EnrolledStudents)
	educatorGroup.Delete("/course/:id", courseValidator.CourseID("id"), h.DeleteCourse)

	// Drafts
	draftGroup := educatorGroup.Group("/drafts")
	draftGroup.Post("/", h.CreateDraft)
	draftGroup.Get("/", h.ListDrafts)
	draftGroup.Get("/:draftId", validators.DraftID(), h.GetDraft)
	draftGroup.Put("/:draftId", validators.DraftID(), validators.Details(), h.UpdateDetails)
	draftGroup.Delete("/:draftId", validators.DraftID(), h.DeleteDraft)
	draftGroup.Post("/:draftId/thumbnail", validators.DraftID(), validators.Thumbnail(), h.UploadThumbnail)
	draftGroup.Post("/:draftId/submit", validators.DraftID(), h.SubmitDraft)

	draftGroup.Post("/:draftId/chapters", validators.DraftID(), validators.Chapter(), h.AddChapter)
	draftGroup.Delete("/:draftId/chapters/:chapterId", validators.DraftID(), validators.ChapterID(), h.RemoveChapter)
	draftGroup.Patch("/:draftId/chapters/:chapterId/toggle", validators.DraftID(), validators.ChapterID(), h.ToggleChapter)
	draftGroup.Post("/:draftId/chapters/:chapterId/lectures", validators.DraftID(), validators.ChapterID(), validators.Lecture(), h.AddLecture)
	draftGroup.Delete("/:draftId/chapters/:chapterId/lectures/:index", validators.DraftID(), validators.ChapterID(), validators.LectureIndex(), h.RemoveLecture)
}
