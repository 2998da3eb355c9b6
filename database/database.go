package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"spectrox/models"
)

var DB *gorm.DB

// InitDatabase opens dsn into the package-level DB, logging through zl.
func InitDatabase(dsn string, zl *zap.Logger) error {
	db, err := Open(dsn, NewLogger(zl, logger.Warn))
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// NewLogger adapts a zap logger for gorm. A nil zl discards output.
func NewLogger(zl *zap.Logger, level logger.LogLevel) logger.Interface {
	if zl == nil {
		zl = zap.NewNop()
	}
	return logger.New(
		zap.NewStdLog(zl),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true, // GetLatest on an empty store is normal
			Colorful:                  false,
		},
	)
}

// Open connects to SQLite and migrates the schema. In-memory databases are
// pinned to one connection so every query sees the same data.
func Open(dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if isMemory(dsn) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	if err := db.AutoMigrate(&models.Analysis{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:")
}

// MaxSequence returns the highest stored request sequence, or 0.
func MaxSequence(db *gorm.DB) (uint64, error) {
	var seq *uint64
	err := db.Model(&models.Analysis{}).Select("MAX(sequence)").Scan(&seq).Error
	if err != nil || seq == nil {
		return 0, err
	}
	return *seq, nil
}
