package database

import (
	"fmt"

	"trivia-api/internal/config"
	"trivia-api/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"         // PostgreSQL driver
	_ "github.com/sijms/go-ora/v2" // Oracle driver
	"go.uber.org/zap"
)

func init() {
	// go-ora registers as "oracle", which sqlx does not know; it takes :name binds.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// NewSQLXDB connects with the configured driver and verifies the connection.
func NewSQLXDB(cfg config.DBConfig, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	logger.Get().Info("Successfully connected to database",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.String("name", cfg.DBName),
	)
	return db, nil
}
