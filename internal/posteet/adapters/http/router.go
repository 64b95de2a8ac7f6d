// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"posteet/internal/posteet/adapters/http/auth"
	"posteet/internal/posteet/adapters/http/middleware"
	"posteet/internal/posteet/adapters/http/notes"
	"posteet/internal/posteet/adapters/http/users"
	"posteet/internal/posteet/config"
	"posteet/internal/posteet/ports/api"
	"posteet/internal/posteet/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// Мосты токен/cookie регистрируются до маршрутов: входящий мост должен
// отработать раньше проверки токена, исходящий - обернуть всю цепочку.
func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	authUC api.AuthUseCase,
	userUC api.UserUseCase,
	posteetUC api.PosteetUseCase,
	tokenSvc services.TokenService,
) {
	authHandler := auth.NewHandler(authUC, &cfg.Cookie)
	userHandler := users.NewHandler(userUC)
	posteetHandler := notes.NewHandler(posteetUC)

	// Middleware для всех запросов.
	// AllowCredentials несовместим с wildcard-источником.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins(),
		AllowCredentials: !cfg.CORS.AllowAll(),
	}))
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewTokenToCookie(&cfg.Cookie))
	app.Use(middleware.NewCookieToHeader(cfg.Cookie.Name))

	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello World"})
	})

	// Auth routes (публичные).
	authRoutes := app.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/jwt/login", authHandler.Login)
	authRoutes.Post("/jwt/logout", authHandler.Logout, middleware.NewAuthMiddleware(tokenSvc))
	authRoutes.Post("/forgot-password", authHandler.ForgotPassword)
	authRoutes.Post("/reset-password", authHandler.ResetPassword)
	authRoutes.Post("/request-verify-token", authHandler.RequestVerifyToken)
	authRoutes.Get("/verify", authHandler.Verify)

	// Защищенные маршруты профиля.
	userRoutes := app.Group("/users")
	userRoutes.Use(middleware.NewAuthMiddleware(tokenSvc))
	userRoutes.Get("/me", userHandler.Me)
	userRoutes.Patch("/me", userHandler.UpdateMe)

	// Маршруты заметок (требуют авторизации).
	posteetRoutes := app.Group("/posteet")
	posteetRoutes.Use(middleware.NewAuthMiddleware(tokenSvc))
	posteetRoutes.Post("/", posteetHandler.Create)
	posteetRoutes.Get("/", posteetHandler.List)
	posteetRoutes.Get("/:postit_id", posteetHandler.Get)
	posteetRoutes.Put("/:postit_id", posteetHandler.Update)
	posteetRoutes.Delete("/:postit_id", posteetHandler.Delete)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
