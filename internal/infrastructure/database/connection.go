package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/IT22898920/GYM-App-sub004/internal/config"
	pkgerrors "github.com/IT22898920/GYM-App-sub004/pkg/errors"
	"github.com/IT22898920/GYM-App-sub004/pkg/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// NewConnection opens a PostgreSQL connection pool with the zap-backed
// GORM logger attached.
func NewConnection(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.NewGormLogger(log, gormlogger.Warn, slowQueryThreshold, true),
	})
	if err != nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrUnavailable, "failed to connect to database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to get sql.DB", err)
	}

	maxIdle := cfg.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 10
	}
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 100
	}
	lifetime := cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = time.Hour
	}

	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(lifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrUnavailable, "failed to ping database", err)
	}

	log.Info("database connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("dbname", cfg.DBName),
	)
	return db, nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB, log *zap.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	log.Info("closing database connection")
	return sqlDB.Close()
}
