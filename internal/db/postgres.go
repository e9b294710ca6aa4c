package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/types"
	"github.com/orchestrahub/orchestra-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "orchestrahub", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Conductor{},
		&types.Orchestra{},
		&types.Player{},
		&types.Section{},
		&types.Instrument{},
		&types.Concert{},
		&types.Enrollment{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// Reference integrity is enforced in the service layer (deletes are
	// refused while references exist); the profile-to-account links still
	// get real constraints since those rows live and die with the account.
	constraints := []struct {
		name string
		stmt string
	}{
		{"fk_user_token_user_id", `
ALTER TABLE "user_token"
ADD CONSTRAINT "fk_user_token_user_id"
FOREIGN KEY ("user_id") REFERENCES "user"("id")
ON DELETE CASCADE`},
		{"fk_conductor_user_id", `
ALTER TABLE "conductor"
ADD CONSTRAINT "fk_conductor_user_id"
FOREIGN KEY ("user_id") REFERENCES "user"("id")`},
		{"fk_player_user_id", `
ALTER TABLE "player"
ADD CONSTRAINT "fk_player_user_id"
FOREIGN KEY ("user_id") REFERENCES "user"("id")`},
	}
	for _, c := range constraints {
		var exists bool
		s.db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`, c.name).Scan(&exists)
		if exists {
			continue
		}
		if err := s.db.Exec(c.stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
