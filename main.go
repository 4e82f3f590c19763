package main

import (
	"context"
	"log"

	"edemy/backend"
	"edemy/config"
	courseController "edemy/controllers/course"
	educatorController "edemy/controllers/educator"
	userController "edemy/controllers/userControllers"
	"edemy/database"
	courseRoutes "edemy/routers/courseRoutes"
	educatorRoutes "edemy/routers/educatorRoutes"
	userProfileRoutes "edemy/routers/userRoutes"
	"edemy/store"
	"edemy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	cfg := config.AppConfig
	client := backend.New(cfg.BackendURL, cfg.BackendTimeout)
	snapshot := store.New(client, cfg.ProgressConcurrency)

	// Initial load; a failure leaves an empty catalog until the next refresh
	ctx, cancel := context.WithTimeout(context.Background(), cfg.BackendTimeout)
	if err := snapshot.LoadCatalog(ctx); err != nil {
		log.Printf("Initial catalog load failed: %v", err)
	}
	cancel()

	if _, err := utils.InitializeRefreshScheduler(snapshot, cfg.RefreshCron, cfg.BackendTimeout); err != nil {
		log.Fatalf("Invalid REFRESH_CRON %q: %v", cfg.RefreshCron, err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // thumbnails
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	courseRoutes.SetupCourseRoutes(app, snapshot, courseController.New(snapshot, client, cfg.Currency))
	userProfileRoutes.SetupUserRoutes(app, snapshot, userController.New(snapshot, client))
	educatorRoutes.SetupEducatorRoutes(app, snapshot, educatorController.New(
		snapshot, client, database.NewDraftRepository(database.Database.Db), cfg.UploadDir,
	))

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
