package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hferris/pipecrm/internal/domain/activity"
	"github.com/hferris/pipecrm/internal/repository"
)

// ActivityRepository implements repository.ActivityRepository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts a new activity and assigns its ID.
func (r *ActivityRepository) Create(ctx context.Context, a *activity.Activity) error {
	query := `
		INSERT INTO activities (type, title, description, contact_id, deal_id, due_date, completed, priority, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		a.Type,
		a.Title,
		nullString(a.Description),
		a.ContactID,
		a.DealID,
		a.DueDate,
		a.Completed,
		a.Priority,
		a.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get activity id: %w", err)
	}
	a.ID = id

	return nil
}

const activityColumns = `
	a.id, a.type, a.title, a.description, a.contact_id, a.deal_id,
	a.due_date, a.completed, a.priority, a.created_at,
	c.first_name || ' ' || c.last_name AS contact_name,
	d.title AS deal_title
`

func scanActivity(scan func(dest ...any) error) (activity.Activity, error) {
	var a activity.Activity
	var description, contactName, dealTitle sql.NullString
	err := scan(
		&a.ID,
		&a.Type,
		&a.Title,
		&description,
		&a.ContactID,
		&a.DealID,
		&a.DueDate,
		&a.Completed,
		&a.Priority,
		&a.CreatedAt,
		&contactName,
		&dealTitle,
	)
	if err != nil {
		return activity.Activity{}, err
	}
	a.Description = stringValue(description)
	a.ContactName = stringValue(contactName)
	a.DealTitle = stringValue(dealTitle)
	return a, nil
}

// Get retrieves an activity by ID, with display names joined in.
func (r *ActivityRepository) Get(ctx context.Context, id int64) (*activity.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities a
		LEFT JOIN contacts c ON a.contact_id = c.id
		LEFT JOIN deals d ON a.deal_id = d.id
		WHERE a.id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	a, err := scanActivity(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return &a, nil
}

// List returns all activities ordered by due date ascending. Activities
// without a due date sort first (SQLite default NULL ordering).
func (r *ActivityRepository) List(ctx context.Context) ([]activity.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities a
		LEFT JOIN contacts c ON a.contact_id = c.id
		LEFT JOIN deals d ON a.deal_id = d.id
		ORDER BY a.due_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []activity.Activity
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activities, nil
}

// SetCompleted toggles an activity's completed flag.
func (r *ActivityRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE activities SET completed = ? WHERE id = ?`, completed, id)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Counts partitions activities into pending/completed and counts how many
// pending ones are overdue or due on now's calendar day.
func (r *ActivityRepository) Counts(ctx context.Context, now time.Time) (activity.Summary, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	query := `
		SELECT
			COUNT(CASE WHEN completed = 0 THEN 1 END),
			COUNT(CASE WHEN completed = 1 THEN 1 END),
			COUNT(CASE WHEN completed = 0 AND due_date IS NOT NULL AND due_date < ? THEN 1 END),
			COUNT(CASE WHEN completed = 0 AND due_date >= ? AND due_date < ? THEN 1 END)
		FROM activities
	`

	var sum activity.Summary
	err := r.db.QueryRowContext(ctx, query, now, dayStart, dayEnd).Scan(
		&sum.Pending,
		&sum.Completed,
		&sum.Overdue,
		&sum.DueToday,
	)
	if err != nil {
		return activity.Summary{}, fmt.Errorf("failed to count activities: %w", err)
	}

	return sum, nil
}
