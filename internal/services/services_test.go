package services

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/repos"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

// fixture wires every repo and service onto one in-memory database so the
// workflow tests run against the real storage behavior instead of mocks.
type fixture struct {
	db         *gorm.DB
	auth       AuthService
	user       UserService
	conductor  ConductorService
	orchestra  OrchestraService
	player     PlayerService
	section    SectionService
	instrument InstrumentService
	concert    ConcertService
	enrollment EnrollmentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Conductor{},
		&types.Orchestra{},
		&types.Player{},
		&types.Section{},
		&types.Instrument{},
		&types.Concert{},
		&types.Enrollment{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	userRepo := repos.NewUserRepo(db, log)
	userTokenRepo := repos.NewUserTokenRepo(db, log)
	conductorRepo := repos.NewConductorRepo(db, log)
	orchestraRepo := repos.NewOrchestraRepo(db, log)
	playerRepo := repos.NewPlayerRepo(db, log)
	sectionRepo := repos.NewSectionRepo(db, log)
	instrumentRepo := repos.NewInstrumentRepo(db, log)
	concertRepo := repos.NewConcertRepo(db, log)
	enrollmentRepo := repos.NewEnrollmentRepo(db, log)

	return &fixture{
		db: db,
		auth: NewAuthService(db, log, userRepo, conductorRepo, playerRepo, userTokenRepo,
			"test-secret", time.Hour, 24*time.Hour),
		user:       NewUserService(db, log, userRepo, conductorRepo, playerRepo, userTokenRepo, orchestraRepo, enrollmentRepo),
		conductor:  NewConductorService(db, log, conductorRepo, userRepo, orchestraRepo),
		orchestra:  NewOrchestraService(db, log, orchestraRepo, conductorRepo, concertRepo, playerRepo, enrollmentRepo),
		player:     NewPlayerService(db, log, playerRepo, userRepo, sectionRepo, concertRepo, enrollmentRepo),
		section:    NewSectionService(db, log, sectionRepo, instrumentRepo, playerRepo, enrollmentRepo),
		instrument: NewInstrumentService(db, log, instrumentRepo, sectionRepo, playerRepo, enrollmentRepo),
		concert:    NewConcertService(db, log, concertRepo, orchestraRepo, playerRepo),
		enrollment: NewEnrollmentService(db, log, enrollmentRepo, playerRepo, orchestraRepo, sectionRepo, instrumentRepo),
	}
}

// seedWorkflow creates a section with one instrument, an orchestra and a
// player with the given ids, which the enrollment tests reference directly.
func (f *fixture) seedWorkflow(t *testing.T, playerID, orchestraID, sectionID, instrumentID uint) {
	t.Helper()
	rows := []interface{}{
		&types.Section{ID: sectionID, Name: "Strings"},
		&types.Instrument{ID: instrumentID, Name: "Violin", SectionID: sectionID},
		&types.Orchestra{ID: orchestraID, Name: "City Philharmonic"},
		&types.Player{ID: playerID, UserID: playerID + 100, Name: "Ana", Score: 10},
	}
	for _, row := range rows {
		if err := f.db.Create(row).Error; err != nil {
			t.Fatalf("seed %T: %v", row, err)
		}
	}
}
