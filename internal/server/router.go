package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/orchestrahub/orchestra-backend/internal/handlers"
	"github.com/orchestrahub/orchestra-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	UserHandler       *handlers.UserHandler
	ConductorHandler  *handlers.ConductorHandler
	OrchestraHandler  *handlers.OrchestraHandler
	PlayerHandler     *handlers.PlayerHandler
	SectionHandler    *handlers.SectionHandler
	InstrumentHandler *handlers.InstrumentHandler
	ConcertHandler    *handlers.ConcertHandler
	EnrollmentHandler *handlers.EnrollmentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")

	// Public: registration, login and all reads.
	api.POST("/register", cfg.AuthHandler.Register)
	api.POST("/login", cfg.AuthHandler.Login)

	api.GET("/users", cfg.UserHandler.GetAll)
	api.GET("/users/:id", cfg.UserHandler.GetByID)
	api.GET("/users/by-username/:username", cfg.UserHandler.GetByUsername)

	api.GET("/conductors", cfg.ConductorHandler.GetAll)
	api.GET("/conductors/:id", cfg.ConductorHandler.GetByID)

	api.GET("/orchestras", cfg.OrchestraHandler.GetAll)
	api.GET("/orchestras/:id", cfg.OrchestraHandler.GetByID)
	api.GET("/orchestras/:id/concerts", cfg.ConcertHandler.ListByOrchestra)

	api.GET("/players", cfg.PlayerHandler.GetAll)
	api.GET("/players/:id", cfg.PlayerHandler.GetByID)

	api.GET("/sections", cfg.SectionHandler.GetAll)
	api.GET("/sections/:id", cfg.SectionHandler.GetByID)
	api.GET("/sections/:id/instruments", cfg.InstrumentHandler.ListBySection)
	api.GET("/sections/:id/leaderboard", cfg.PlayerHandler.Leaderboard)

	api.GET("/instruments", cfg.InstrumentHandler.GetAll)
	api.GET("/instruments/:id", cfg.InstrumentHandler.GetByID)

	api.GET("/concerts", cfg.ConcertHandler.GetAll)
	api.GET("/concerts/:id", cfg.ConcertHandler.GetByID)

	// Protected: every mutation and the enrollment workflow.
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)

	protected.PUT("/users/:id", cfg.UserHandler.Update)
	protected.DELETE("/users/:id", cfg.UserHandler.Delete)

	protected.POST("/conductors", cfg.ConductorHandler.Create)
	protected.PUT("/conductors/:id", cfg.ConductorHandler.Update)
	protected.DELETE("/conductors/:id", cfg.ConductorHandler.Delete)

	protected.POST("/orchestras", cfg.OrchestraHandler.Create)
	protected.PUT("/orchestras/:id", cfg.OrchestraHandler.Update)
	protected.DELETE("/orchestras/:id", cfg.OrchestraHandler.Delete)

	protected.POST("/players", cfg.PlayerHandler.Create)
	protected.PUT("/players/:id", cfg.PlayerHandler.Update)
	protected.DELETE("/players/:id", cfg.PlayerHandler.Delete)

	protected.POST("/sections", cfg.SectionHandler.Create)
	protected.PUT("/sections/:id", cfg.SectionHandler.Update)
	protected.DELETE("/sections/:id", cfg.SectionHandler.Delete)

	protected.POST("/instruments", cfg.InstrumentHandler.Create)
	protected.PUT("/instruments/:id", cfg.InstrumentHandler.Update)
	protected.DELETE("/instruments/:id", cfg.InstrumentHandler.Delete)

	protected.POST("/concerts", cfg.ConcertHandler.Create)
	protected.PUT("/concerts/:id", cfg.ConcertHandler.Update)
	protected.DELETE("/concerts/:id", cfg.ConcertHandler.Delete)

	// Enrollment workflow.
	protected.POST("/enrollments", cfg.EnrollmentHandler.Enroll)
	api.GET("/orchestras/:id/enrollments/pending", cfg.EnrollmentHandler.ListPending)
	api.GET("/players/:id/enrollments", cfg.EnrollmentHandler.ListByPlayer)
	protected.POST("/orchestras/:id/enrollments/:playerId/approve", cfg.EnrollmentHandler.Approve)
	protected.POST("/orchestras/:id/enrollments/:playerId/materialize", cfg.EnrollmentHandler.Materialize)
	protected.POST("/orchestras/:id/enrollments/:playerId/accept", cfg.EnrollmentHandler.Accept)

	return router
}
