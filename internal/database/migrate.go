package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"trivia-api/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations applies all pending up migrations for driver.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	switch driver {
	case "postgres":
		return runPostgresMigrations(db)
	case "oracle":
		return runOracleMigrations(ctx, db)
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}
}

func runPostgresMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("could not open migration source: %w", err)
	}
	target, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", target)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Get().Info("Migrations already up to date")
			return nil
		}
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Get().Info("Migrations completed successfully", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// golang-migrate ships no Oracle driver, so Oracle migrations are plain
// ordered .up.sql files executed statement by statement.
func runOracleMigrations(ctx context.Context, db *sql.DB) error {
	files, err := UpMigrationFiles("oracle")
	if err != nil {
		return err
	}

	for _, file := range files {
		content, err := migrationsFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", file, err)
		}
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", file, err)
			}
		}
		logger.Get().Info("Executed migration", zap.String("file", path.Base(file)))
	}

	logger.Get().Info("Migrations completed successfully")
	return nil
}

// UpMigrationFiles lists the embedded .up.sql files for driver in apply order.
func UpMigrationFiles(driver string) ([]string, error) {
	dir := path.Join("migrations", driver)
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}
		files = append(files, path.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// SplitStatements splits a migration script on ';' terminators. Oracle
// rejects trailing semicolons and multiple statements per Exec.
func SplitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
