package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/nexusart/artplan/internal/db"
	"github.com/nexusart/artplan/internal/domain"
)

// SQLitePlanRepo implements PlanRepo over a DBTX, so the same code serves
// both plain reads and transactional saves.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a plan repository bound to the given handle.
func NewSQLitePlanRepo(dbtx db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: dbtx}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (id, name, status, start_date, num_sprints, sprint_duration_days, baseline_captured, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Status),
		p.Config.StartDate.Format(dateLayout),
		p.Config.NumberOfSprints,
		p.Config.SprintDurationDays,
		boolToInt(p.BaselineCaptured),
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return r.insertChildren(ctx, p)
}

// Save replaces the stored aggregate with the given one. Child rows are
// deleted and re-inserted wholesale; callers run it inside a UnitOfWork so
// a failure leaves the previous aggregate intact.
func (r *SQLitePlanRepo) Save(ctx context.Context, p *domain.Plan) error {
	query := `UPDATE plans SET name = ?, status = ?, start_date = ?, num_sprints = ?, sprint_duration_days = ?, baseline_captured = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		string(p.Status),
		p.Config.StartDate.Format(dateLayout),
		p.Config.NumberOfSprints,
		p.Config.SprintDurationDays,
		boolToInt(p.BaselineCaptured),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking plan update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("plan %s: %w", p.ID, ErrNotFound)
	}

	if err := r.deleteChildren(ctx, p.ID); err != nil {
		return err
	}
	return r.insertChildren(ctx, p)
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `SELECT id, name, status, start_date, num_sprints, sprint_duration_days, baseline_captured, created_at
		FROM plans WHERE id = ?`
	p, err := r.scanPlan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM plans ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning plan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}

	plans := make([]*domain.Plan, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) scanPlan(row *sql.Row) (*domain.Plan, error) {
	var p domain.Plan
	var statusStr, startDateStr, createdAtStr string
	var baselineCaptured int

	err := row.Scan(&p.ID, &p.Name, &statusStr, &startDateStr,
		&p.Config.NumberOfSprints, &p.Config.SprintDurationDays,
		&baselineCaptured, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	p.Status = domain.PlanStatus(statusStr)
	p.BaselineCaptured = intToBool(baselineCaptured)
	if p.Config.StartDate, err = parseDate(startDateStr); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing plan created_at: %w", err)
	}
	return &p, nil
}

func (r *SQLitePlanRepo) loadChildren(ctx context.Context, p *domain.Plan) error {
	var err error
	if p.Teams, err = r.loadTeams(ctx, p.ID); err != nil {
		return err
	}
	if p.Activities, err = r.loadActivities(ctx, p.ID); err != nil {
		return err
	}
	if p.Allocations, err = r.loadAllocations(ctx, p.ID, false); err != nil {
		return err
	}
	if p.BaselineAllocations, err = r.loadAllocations(ctx, p.ID, true); err != nil {
		return err
	}
	if p.Holidays, err = r.loadHolidays(ctx, p.ID); err != nil {
		return err
	}
	return nil
}

func (r *SQLitePlanRepo) loadTeams(ctx context.Context, planID string) ([]domain.Team, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM teams WHERE plan_id = ? ORDER BY position, id`, planID)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teams: %w", err)
	}

	for i := range teams {
		if teams[i].Members, err = r.loadMembers(ctx, teams[i].ID); err != nil {
			return nil, err
		}
	}
	return teams, nil
}

func (r *SQLitePlanRepo) loadMembers(ctx context.Context, teamID string) ([]domain.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM team_members WHERE team_id = ? ORDER BY position, id`, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	defer rows.Close()

	members := []domain.TeamMember{}
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scanning team member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team members: %w", err)
	}

	for i := range members {
		if members[i].Vacations, err = r.loadVacations(ctx, members[i].ID); err != nil {
			return nil, err
		}
	}
	return members, nil
}

func (r *SQLitePlanRepo) loadVacations(ctx context.Context, memberID string) ([]domain.VacationRange, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, start_date, end_date FROM member_vacations WHERE member_id = ? ORDER BY start_date, id`, memberID)
	if err != nil {
		return nil, fmt.Errorf("listing vacations: %w", err)
	}
	defer rows.Close()

	vacations := []domain.VacationRange{}
	for rows.Next() {
		var v domain.VacationRange
		var startStr, endStr string
		if err := rows.Scan(&v.ID, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("scanning vacation: %w", err)
		}
		if v.Range.Start, err = parseDate(startStr); err != nil {
			return nil, err
		}
		if v.Range.End, err = parseDate(endStr); err != nil {
			return nil, err
		}
		vacations = append(vacations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vacations: %w", err)
	}
	return vacations, nil
}

func (r *SQLitePlanRepo) loadActivities(ctx context.Context, planID string) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, is_included FROM activities WHERE plan_id = ? ORDER BY position, id`, planID)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		var a domain.Activity
		var included int
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &included); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		a.IsIncluded = intToBool(included)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}

	for i := range activities {
		if activities[i].Estimates, err = r.loadEstimates(ctx, activities[i].ID); err != nil {
			return nil, err
		}
	}
	return activities, nil
}

func (r *SQLitePlanRepo) loadEstimates(ctx context.Context, activityID string) ([]domain.TeamEstimate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT team_id, effort, status FROM team_estimates WHERE activity_id = ? ORDER BY rowid`, activityID)
	if err != nil {
		return nil, fmt.Errorf("listing estimates: %w", err)
	}
	defer rows.Close()

	estimates := []domain.TeamEstimate{}
	for rows.Next() {
		var e domain.TeamEstimate
		var statusStr string
		if err := rows.Scan(&e.TeamID, &e.Effort, &statusStr); err != nil {
			return nil, fmt.Errorf("scanning estimate: %w", err)
		}
		e.Status = domain.EstimateStatus(statusStr)
		estimates = append(estimates, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating estimates: %w", err)
	}
	return estimates, nil
}

func (r *SQLitePlanRepo) loadAllocations(ctx context.Context, planID string, baseline bool) ([]domain.Allocation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, activity_id, team_id, sprint_id, effort
		FROM allocations WHERE plan_id = ? AND is_baseline = ? ORDER BY rowid`,
		planID, boolToInt(baseline))
	if err != nil {
		return nil, fmt.Errorf("listing allocations: %w", err)
	}
	defer rows.Close()

	allocs := []domain.Allocation{}
	for rows.Next() {
		var a domain.Allocation
		if err := rows.Scan(&a.ID, &a.ActivityID, &a.TeamID, &a.SprintID, &a.Effort); err != nil {
			return nil, fmt.Errorf("scanning allocation: %w", err)
		}
		if baseline {
			a.ID = strings.TrimPrefix(a.ID, "bl-")
		}
		allocs = append(allocs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating allocations: %w", err)
	}
	if baseline && len(allocs) == 0 {
		return nil, nil
	}
	return allocs, nil
}

func (r *SQLitePlanRepo) loadHolidays(ctx context.Context, planID string) ([]domain.Holiday, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, start_date, end_date FROM holidays WHERE plan_id = ? ORDER BY start_date, id`, planID)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()

	holidays := []domain.Holiday{}
	for rows.Next() {
		var h domain.Holiday
		var startStr, endStr string
		if err := rows.Scan(&h.ID, &h.Name, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("scanning holiday: %w", err)
		}
		if h.Range.Start, err = parseDate(startStr); err != nil {
			return nil, err
		}
		if h.Range.End, err = parseDate(endStr); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return holidays, nil
}

func (r *SQLitePlanRepo) deleteChildren(ctx context.Context, planID string) error {
	// Vacations, members and estimates go with their parents via
	// ON DELETE CASCADE.
	for _, table := range []string{"teams", "activities", "allocations", "holidays"} {
		query := fmt.Sprintf("DELETE FROM %s WHERE plan_id = ?", table)
		if _, err := r.db.ExecContext(ctx, query, planID); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) insertChildren(ctx context.Context, p *domain.Plan) error {
	for pos, team := range p.Teams {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO teams (id, plan_id, name, position) VALUES (?, ?, ?, ?)`,
			team.ID, p.ID, team.Name, pos); err != nil {
			return fmt.Errorf("inserting team: %w", err)
		}
		for mpos, m := range team.Members {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO team_members (id, team_id, name, position) VALUES (?, ?, ?, ?)`,
				m.ID, team.ID, m.Name, mpos); err != nil {
				return fmt.Errorf("inserting team member: %w", err)
			}
			for _, v := range m.Vacations {
				if _, err := r.db.ExecContext(ctx,
					`INSERT INTO member_vacations (id, member_id, start_date, end_date) VALUES (?, ?, ?, ?)`,
					v.ID, m.ID, v.Range.Start.Format(dateLayout), v.Range.End.Format(dateLayout)); err != nil {
					return fmt.Errorf("inserting vacation: %w", err)
				}
			}
		}
	}

	for pos, act := range p.Activities {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO activities (id, plan_id, title, description, is_included, position) VALUES (?, ?, ?, ?, ?, ?)`,
			act.ID, p.ID, act.Title, act.Description, boolToInt(act.IsIncluded), pos); err != nil {
			return fmt.Errorf("inserting activity: %w", err)
		}
		for _, e := range act.Estimates {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO team_estimates (activity_id, team_id, effort, status) VALUES (?, ?, ?, ?)`,
				act.ID, e.TeamID, e.Effort, string(e.Status)); err != nil {
				return fmt.Errorf("inserting estimate: %w", err)
			}
		}
	}

	if err := r.insertAllocations(ctx, p.ID, p.Allocations, false); err != nil {
		return err
	}
	if err := r.insertAllocations(ctx, p.ID, p.BaselineAllocations, true); err != nil {
		return err
	}

	for _, h := range p.Holidays {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO holidays (id, plan_id, name, start_date, end_date) VALUES (?, ?, ?, ?, ?)`,
			h.ID, p.ID, h.Name, h.Range.Start.Format(dateLayout), h.Range.End.Format(dateLayout)); err != nil {
			return fmt.Errorf("inserting holiday: %w", err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) insertAllocations(ctx context.Context, planID string, allocs []domain.Allocation, baseline bool) error {
	for _, a := range allocs {
		id := a.ID
		if baseline {
			// Live and baseline copies of the same allocation share the
			// domain id; the row key must still be unique.
			id = "bl-" + a.ID
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO allocations (id, plan_id, activity_id, team_id, sprint_id, effort, is_baseline) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, planID, a.ActivityID, a.TeamID, a.SprintID, a.Effort, boolToInt(baseline)); err != nil {
			return fmt.Errorf("inserting allocation: %w", err)
		}
	}
	return nil
}
