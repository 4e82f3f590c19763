package courseRoutes

import (
	controllers "edemy/controllers/course"
	"edemy/middleware"
	"edemy/store"
	validators "edemy/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the storefront routes: catalog, course detail,
// checkout, enrollments and the lecture player
func SetupCourseRoutes(app *fiber.App, st *store.Store, h *controllers.Controller) {
	api := app.Group("/api")
	session := middleware.SessionMiddleware(st)

	// Catalog
	api.Get("/home", h.Home)
	api.Get("/course-list", validators.CourseSearch(), h.CourseList)
	api.Get("/course-list/:input", validators.CourseSearch(), h.CourseList)

	// Course detail and checkout
	courseGroup := api.Group("/course")
	courseGroup.Get("/:id", middleware.OptionalJWT, session, validators.CourseID("id"), h.CourseDetails)
	courseGroup.Post("/:id/purchase", middleware.JWTMiddleware, session, validators.CourseID("id"), h.Purchase)
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, session, validators.CourseID("id"), h.Enroll)

	api.Get("/courses/:courseId", middleware.JWTMiddleware, session, validators.CourseID("courseId"), validators.PaymentResult(), h.PaymentReturn)
	api.Get("/my-enrollments", middleware.JWTMiddleware, session, h.MyEnrollments)

	// Player
	playerGroup := api.Group("/player", middleware.JWTMiddleware, session)
	playerGroup.Get("/:courseId", validators.CourseID("courseId"), h.Player)
	playerGroup.Get("/:courseId/lecture/:lectureId", validators.CourseID("courseId"), validators.LectureID(), h.LectureVideo)
	playerGroup.Post("/:courseId/lecture/:lectureId/complete", validators.CourseID("courseId"), validators.LectureID(), h.CompleteLecture)
	playerGroup.Post("/:courseId/rating", validators.CourseID("courseId"), validators.Rating(), h.RateCourse)
}
