package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpMigrationFiles(t *testing.T) {
	for _, driver := range []string{"postgres", "oracle"} {
		t.Run(driver, func(t *testing.T) {
			files, err := UpMigrationFiles(driver)
			require.NoError(t, err)
			assert.Equal(t, []string{
				"migrations/" + driver + "/000001_create_trivia.up.sql",
				"migrations/" + driver + "/000002_create_drinks.up.sql",
				"migrations/" + driver + "/000003_create_venues.up.sql",
			}, files)
		})
	}

	_, err := UpMigrationFiles("mysql")
	assert.Error(t, err)
}

func TestSplitStatements(t *testing.T) {
	script := `
CREATE TABLE a (id INT);

CREATE INDEX idx_a ON a (id);
  ;
`
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE INDEX idx_a ON a (id)"}, SplitStatements(script))
	assert.Empty(t, SplitStatements("  \n"))
}

func TestRunMigrations_UnknownDriver(t *testing.T) {
	err := RunMigrations(context.Background(), nil, "sqlite")
	assert.Error(t, err)
}

func TestOracleMigrationsCreateAllTables(t *testing.T) {
	files, err := UpMigrationFiles("oracle")
	require.NoError(t, err)

	var stmts []string
	for _, f := range files {
		content, err := migrationsFS.ReadFile(f)
		require.NoError(t, err)
		stmts = append(stmts, SplitStatements(string(content))...)
	}
	require.Len(t, stmts, 11)
	assert.Contains(t, stmts[0], "CREATE TABLE categories")
	assert.Contains(t, stmts[1], "CREATE TABLE questions")
	assert.Contains(t, stmts[3], "CREATE TABLE drinks")
	assert.Contains(t, stmts[4], "CREATE TABLE venues")
	assert.Contains(t, stmts[5], "CREATE TABLE artists")
	assert.Contains(t, stmts[6], "CREATE TABLE shows")
	for _, stmt := range stmts[7:] {
		assert.Contains(t, stmt, "CREATE INDEX")
	}
}
