package app

import (
	"github.com/orchestrahub/orchestra-backend/internal/handlers"
	"github.com/orchestrahub/orchestra-backend/internal/logger"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Conductor  *handlers.ConductorHandler
	Orchestra  *handlers.OrchestraHandler
	Player     *handlers.PlayerHandler
	Section    *handlers.SectionHandler
	Instrument *handlers.InstrumentHandler
	Concert    *handlers.ConcertHandler
	Enrollment *handlers.EnrollmentHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:       handlers.NewAuthHandler(s.Auth),
		User:       handlers.NewUserHandler(s.User),
		Conductor:  handlers.NewConductorHandler(s.Conductor),
		Orchestra:  handlers.NewOrchestraHandler(s.Orchestra),
		Player:     handlers.NewPlayerHandler(s.Player),
		Section:    handlers.NewSectionHandler(s.Section),
		Instrument: handlers.NewInstrumentHandler(s.Instrument),
		Concert:    handlers.NewConcertHandler(s.Concert),
		Enrollment: handlers.NewEnrollmentHandler(s.Enrollment),
	}
}
