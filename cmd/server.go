package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/visuscan/visuscan/internal/config"
	"github.com/visuscan/visuscan/pkg/apix"
	"github.com/visuscan/visuscan/pkg/logx"
	"github.com/visuscan/visuscan/screening/jd/jdapi"
	"github.com/visuscan/visuscan/screening/match/matchapi"
	"github.com/visuscan/visuscan/screening/resume/resumeapi"
)

func main() {
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting VisuScan API server...")

	// Refuses to start without OPENAI_API_KEY.
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Configuration error: %v", err)
	}

	container := NewContainer(cfg)

	app := fiber.New(fiber.Config{
		AppName:               "VisuScan Resume Analysis API",
		DisableStartupMessage: true,
		ErrorHandler:          apix.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "VisuScan API is running successfully!",
		})
	})

	resumeapi.RegisterRoutes(app, container.ResumeHandlers)
	jdapi.RegisterRoutes(app, container.JDHandlers)
	matchapi.RegisterRoutes(app, container.MatchHandlers)

	go func() {
		logx.Infof("Server listening on port %s", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}
