package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB
}

func TestMigrate_Idempotent(t *testing.T) {
	sqlDB := openTestDB(t)

	// Replaying the full migration list must be a no-op.
	require.NoError(t, Migrate(sqlDB))
	require.NoError(t, Migrate(sqlDB))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	sqlDB := openTestDB(t)

	expected := []string{
		"plans", "teams", "team_members", "member_vacations",
		"activities", "team_estimates", "allocations", "holidays",
	}
	for _, table := range expected {
		var name string
		err := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	sqlDB := openTestDB(t)

	expected := []string{
		"idx_teams_plan",
		"idx_team_members_team",
		"idx_member_vacations_member",
		"idx_activities_plan",
		"idx_allocations_plan",
		"idx_holidays_plan",
	}
	for _, idx := range expected {
		var name string
		err := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_StatusConstraint(t *testing.T) {
	sqlDB := openTestDB(t)

	_, err := sqlDB.Exec(`INSERT INTO plans (id, name, status, start_date, num_sprints, sprint_duration_days, created_at)
		VALUES ('p1', 'Bad', 'frozen', '2025-01-06', 5, 14, '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown plan status must be rejected")
}

func TestForeignKeys_CascadeOnPlanDelete(t *testing.T) {
	sqlDB := openTestDB(t)

	_, err := sqlDB.Exec(`INSERT INTO plans (id, name, start_date, num_sprints, sprint_duration_days, created_at)
		VALUES ('p1', 'Q1', '2025-01-06', 5, 14, '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = sqlDB.Exec(`INSERT INTO teams (id, plan_id, name) VALUES ('t1', 'p1', 'Apollo')`)
	require.NoError(t, err)
	_, err = sqlDB.Exec(`INSERT INTO team_members (id, team_id, name) VALUES ('m1', 't1', 'Ada')`)
	require.NoError(t, err)

	_, err = sqlDB.Exec(`DELETE FROM plans WHERE id = 'p1'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM team_members`).Scan(&count))
	assert.Equal(t, 0, count, "member rows must cascade through teams")
}
