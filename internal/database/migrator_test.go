package database_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"sitelog-backend/internal/database"
)

func TestMigrator_RunIsIdempotent(t *testing.T) {
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	migrator, err := database.NewMigrator(db, zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, migrator.Run(ctx))
	require.NoError(t, migrator.Run(ctx))

	var applied []string
	require.NoError(t, db.Select(&applied, "SELECT name FROM schema_migrations ORDER BY name"))
	assert.Equal(t, []string{"001_initial_schema.sql", "002_daily_log_feed_view.sql"}, applied)

	var reasons int
	require.NoError(t, db.Get(&reasons, "SELECT COUNT(*) FROM reasons"))
	assert.Equal(t, 5, reasons)

	var feedRows int
	require.NoError(t, db.Get(&feedRows, "SELECT COUNT(*) FROM v_daily_log_feed"))
	assert.Zero(t, feedRows)
}

func TestNewMigrator_UnknownDriver(t *testing.T) {
	db := sqlx.NewDb(nil, "mysql")
	_, err := database.NewMigrator(db, zap.NewNop())
	assert.Error(t, err)
}
