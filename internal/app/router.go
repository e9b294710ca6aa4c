package app

import (
	"github.com/gin-gonic/gin"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/server"
)

func wireRouter(log *logger.Logger, h Handlers, m Middleware) *gin.Engine {
	log.Info("Wiring router...")
	return server.NewRouter(server.RouterConfig{
		AuthHandler:       h.Auth,
		AuthMiddleware:    m.Auth,
		UserHandler:       h.User,
		ConductorHandler:  h.Conductor,
		OrchestraHandler:  h.Orchestra,
		PlayerHandler:     h.Player,
		SectionHandler:    h.Section,
		InstrumentHandler: h.Instrument,
		ConcertHandler:    h.Concert,
		EnrollmentHandler: h.Enrollment,
	})
}
