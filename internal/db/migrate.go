package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations in order. Statements are idempotent;
// ALTER TABLE reruns that hit an existing column are tolerated so the full
// list can be replayed against any database version.
func Migrate(sqlDB *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := sqlDB.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		status               TEXT NOT NULL DEFAULT 'draft'
		                     CHECK(status IN ('draft','active','closed')),
		start_date           TEXT NOT NULL,
		num_sprints          INTEGER NOT NULL CHECK(num_sprints > 0),
		sprint_duration_days INTEGER NOT NULL CHECK(sprint_duration_days > 0),
		baseline_captured    INTEGER NOT NULL DEFAULT 0,
		created_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id       TEXT PRIMARY KEY,
		plan_id  TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		name     TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_teams_plan ON teams(plan_id)`,

	`CREATE TABLE IF NOT EXISTS team_members (
		id       TEXT PRIMARY KEY,
		team_id  TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		name     TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_team_members_team ON team_members(team_id)`,

	`CREATE TABLE IF NOT EXISTS member_vacations (
		id         TEXT PRIMARY KEY,
		member_id  TEXT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_member_vacations_member ON member_vacations(member_id)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_included INTEGER NOT NULL DEFAULT 0,
		position    INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_plan ON activities(plan_id)`,

	`CREATE TABLE IF NOT EXISTS team_estimates (
		activity_id TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		team_id     TEXT NOT NULL,
		effort      REAL NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'todo'
		            CHECK(status IN ('todo','in_progress','done')),
		PRIMARY KEY (activity_id, team_id)
	)`,

	`CREATE TABLE IF NOT EXISTS allocations (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		activity_id TEXT NOT NULL,
		team_id     TEXT NOT NULL,
		sprint_id   TEXT NOT NULL,
		effort      REAL NOT NULL,
		is_baseline INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_allocations_plan ON allocations(plan_id, is_baseline)`,

	`CREATE TABLE IF NOT EXISTS holidays (
		id         TEXT PRIMARY KEY,
		plan_id    TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_holidays_plan ON holidays(plan_id)`,
}
