package repos

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// testDB opens a throwaway in-memory database with the full schema. One open
// connection keeps every statement on the same in-memory instance.
func testDB(t *testing.T) *gorm.DB {
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
	return db
}
