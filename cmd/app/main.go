package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rdityas/weblog-core/injector"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/infrastructures"
	"github.com/sirupsen/logrus"
)

func main() {
	config := infrastructures.LoadConfig()

	app, err := injector.InitializeApplication()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// Fiber configuration
	fiberConfig := fiber.Config{
		ReadTimeout:  time.Second * 60,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	}

	router := fiber.New(fiberConfig)

	// Add CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        300,
	}))

	app.RegisterRoutes(router)

	// Unknown routes still produce the JSON error shape
	router.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(models.WebResponse[any]{
			Success: false,
			Message: "Not found",
			Detail: map[string]string{
				"message": fmt.Sprintf("Route %s %s does not exist", c.Method(), c.Path()),
			},
		})
	})

	port := config.PORT
	if port == "" {
		port = "8080"
	}

	logrus.Fatal(router.Listen(":" + port))
}
