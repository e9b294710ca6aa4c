package app

import (
	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/repos"
)

type Repos struct {
	User       repos.UserRepo
	UserToken  repos.UserTokenRepo
	Conductor  repos.ConductorRepo
	Orchestra  repos.OrchestraRepo
	Player     repos.PlayerRepo
	Section    repos.SectionRepo
	Instrument repos.InstrumentRepo
	Concert    repos.ConcertRepo
	Enrollment repos.EnrollmentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:       repos.NewUserRepo(db, log),
		UserToken:  repos.NewUserTokenRepo(db, log),
		Conductor:  repos.NewConductorRepo(db, log),
		Orchestra:  repos.NewOrchestraRepo(db, log),
		Player:     repos.NewPlayerRepo(db, log),
		Section:    repos.NewSectionRepo(db, log),
		Instrument: repos.NewInstrumentRepo(db, log),
		Concert:    repos.NewConcertRepo(db, log),
		Enrollment: repos.NewEnrollmentRepo(db, log),
	}
}
