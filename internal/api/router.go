package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/jobtrackr/jobtracker/docs"
	"github.com/jobtrackr/jobtracker/internal/api/handler"
	"github.com/jobtrackr/jobtracker/internal/api/middleware"
	"github.com/jobtrackr/jobtracker/internal/core/service"
	"github.com/jobtrackr/jobtracker/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobtracker"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	appRepo := postgres.NewApplicationRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	noteRepo := postgres.NewNoteRepository(db)
	timelineRepo := postgres.NewTimelineRepository(db)
	fileRepo := postgres.NewFileRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtSecret, 0, 0, log.With().Str("component", "auth").Logger())
	userService := service.NewUserService(userRepo, log.With().Str("component", "users").Logger())
	appService := service.NewApplicationService(appRepo, log.With().Str("component", "applications").Logger())
	contactService := service.NewContactService(contactRepo, appRepo, log.With().Str("component", "contacts").Logger())
	noteService := service.NewNoteService(noteRepo, appRepo, log.With().Str("component", "notes").Logger())
	timelineService := service.NewTimelineService(timelineRepo, appRepo, log.With().Str("component", "timeline").Logger())
	fileService := service.NewFileService(fileRepo, appRepo, log.With().Str("component", "files").Logger())
	dashboardService := service.NewDashboardService(appRepo, timelineRepo, time.Now, log.With().Str("component", "dashboard").Logger())
	csvService := service.NewCSVService(appRepo, log.With().Str("component", "csv").Logger())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	appHandler := handler.NewApplicationHandler(appService)
	contactHandler := handler.NewContactHandler(contactService)
	noteHandler := handler.NewNoteHandler(noteService)
	timelineHandler := handler.NewTimelineHandler(timelineService)
	fileHandler := handler.NewFileHandler(fileService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	csvHandler := handler.NewCSVHandler(csvService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout, authMiddleware)

	// --- User routes ---
	users := v1.Group("/users", authMiddleware)
	users.GET("/me", userHandler.Get)
	users.PUT("/me", userHandler.Update)
	users.PUT("/me/password", userHandler.ChangePassword)
	users.DELETE("/me", userHandler.Delete)

	// --- Application routes ---
	apps := v1.Group("/applications", authMiddleware)
	apps.GET("", appHandler.List)
	apps.POST("", appHandler.Create)
	apps.POST("/import", csvHandler.Import)
	apps.GET("/export", csvHandler.Export)
	apps.GET("/:id", appHandler.Get)
	apps.PUT("/:id", appHandler.Update)
	apps.PATCH("/:id/stage", appHandler.UpdateStage)
	apps.DELETE("/:id", appHandler.Delete)

	// --- Nested application resources ---
	apps.GET("/:id/notes", noteHandler.List)
	apps.POST("/:id/notes", noteHandler.Create)
	apps.GET("/:id/timeline", timelineHandler.List)
	apps.GET("/:id/files", fileHandler.List)
	apps.POST("/:id/files", fileHandler.Create)

	// --- Contact routes ---
	contacts := v1.Group("/contacts", authMiddleware)
	contacts.GET("", contactHandler.List)
	contacts.POST("", contactHandler.Create)
	contacts.GET("/:id", contactHandler.Get)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)

	// --- Note and file routes addressed by their own id ---
	notes := v1.Group("/notes", authMiddleware)
	notes.GET("/:id", noteHandler.Get)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)

	files := v1.Group("/files", authMiddleware)
	files.DELETE("/:id", fileHandler.Delete)

	// --- Dashboard routes ---
	dashboard := v1.Group("/dashboard", authMiddleware)
	dashboard.GET("", dashboardHandler.Overview)
	dashboard.GET("/kpis", dashboardHandler.KPIs)
	dashboard.GET("/weekly", dashboardHandler.WeeklySubmissions)
	dashboard.GET("/funnel", dashboardHandler.StageFunnel)

	return e
}
