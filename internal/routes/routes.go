package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jobportal/jobportal-backend/internal/config"
	"github.com/jobportal/jobportal-backend/internal/handlers"
	"github.com/jobportal/jobportal-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", healthHandler.Home)
	app.Get("/ping", healthHandler.Ping)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Credential endpoints get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	users := api.Group("/users")
	users.Get("/", authHandler.ListUsers)
	users.Post("/register", authLimiter, authHandler.Register)
	users.Post("/login", authLimiter, authHandler.Login)

	api.Get("/profile", middleware.JWTProtected(cfg), authHandler.Profile)
	api.Delete("/users/me", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Jobs — listing is public, mutation requires a token
	jobs := api.Group("/jobs")
	jobs.Get("/", jobHandler.List)
	jobs.Post("/", middleware.JWTProtected(cfg), jobHandler.Create)
	jobs.Put("/:id/bookmark", middleware.JWTProtected(cfg), jobHandler.ToggleBookmark)

	// Applications — fully protected
	applications := api.Group("/applications", middleware.JWTProtected(cfg))
	applications.Get("/", applicationHandler.List)
	applications.Post("/", applicationHandler.Create)
}
