package app

import (
	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	User       services.UserService
	Conductor  services.ConductorService
	Orchestra  services.OrchestraService
	Player     services.PlayerService
	Section    services.SectionService
	Instrument services.InstrumentService
	Concert    services.ConcertService
	Enrollment services.EnrollmentService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth: services.NewAuthService(db, log, r.User, r.Conductor, r.Player, r.UserToken,
			cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		User:       services.NewUserService(db, log, r.User, r.Conductor, r.Player, r.UserToken, r.Orchestra, r.Enrollment),
		Conductor:  services.NewConductorService(db, log, r.Conductor, r.User, r.Orchestra),
		Orchestra:  services.NewOrchestraService(db, log, r.Orchestra, r.Conductor, r.Concert, r.Player, r.Enrollment),
		Player:     services.NewPlayerService(db, log, r.Player, r.User, r.Section, r.Concert, r.Enrollment),
		Section:    services.NewSectionService(db, log, r.Section, r.Instrument, r.Player, r.Enrollment),
		Instrument: services.NewInstrumentService(db, log, r.Instrument, r.Section, r.Player, r.Enrollment),
		Concert:    services.NewConcertService(db, log, r.Concert, r.Orchestra, r.Player),
		Enrollment: services.NewEnrollmentService(db, log, r.Enrollment, r.Player, r.Orchestra, r.Section, r.Instrument),
	}
}
