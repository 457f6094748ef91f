package sqlite

import (
	"context"
	"fmt"

	"github.com/hferris/pipecrm/internal/domain/activity"
	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/domain/dashboard"
	"github.com/hferris/pipecrm/internal/domain/deal"
)

// StatsRepository implements repository.StatsRepository for SQLite. All
// queries treat a NULL deal value as 0 and zero matching rows as a valid
// result.
type StatsRepository struct {
	db *DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Stats returns the dashboard headline numbers.
func (r *StatsRepository) Stats(ctx context.Context) (dashboard.Stats, error) {
	var stats dashboard.Stats

	counts := []struct {
		query string
		dest  any
	}{
		{`SELECT COUNT(*) FROM contacts`, &stats.TotalContacts},
		{`SELECT COUNT(*) FROM companies`, &stats.TotalCompanies},
		{`SELECT COALESCE(SUM(value), 0) FROM deals WHERE stage NOT IN ('lost')`, &stats.TotalDealValue},
		{`SELECT COALESCE(SUM(value), 0) FROM deals WHERE stage = 'won'`, &stats.WonDealsValue},
		{`SELECT COALESCE(SUM(COALESCE(value, 0) * probability / 100.0), 0)
		  FROM deals WHERE stage NOT IN ('won', 'lost')`, &stats.WeightedPipelineValue},
		{`SELECT COUNT(*) FROM activities WHERE completed = 0`, &stats.PendingActivities},
	}

	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return dashboard.Stats{}, fmt.Errorf("failed to compute stats: %w", err)
		}
	}

	return stats, nil
}

// DealsByStage groups deals by pipeline stage. Stages with no deals are
// absent from the result; the dashboard service fills them in.
func (r *StatsRepository) DealsByStage(ctx context.Context) ([]dashboard.StageSummary, error) {
	query := `
		SELECT stage, COUNT(*) AS count, COALESCE(SUM(value), 0) AS value
		FROM deals
		GROUP BY stage
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to group deals by stage: %w", err)
	}
	defer rows.Close()

	var summaries []dashboard.StageSummary
	for rows.Next() {
		var s dashboard.StageSummary
		if err := rows.Scan(&s.Stage, &s.Count, &s.Value); err != nil {
			return nil, fmt.Errorf("failed to scan stage summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stage rows: %w", err)
	}

	return summaries, nil
}

// RecentDeals returns the newest deals with joined display names.
func (r *StatsRepository) RecentDeals(ctx context.Context, limit int) ([]deal.Deal, error) {
	query := `
		SELECT ` + dealColumns + `
		FROM deals d
		LEFT JOIN contacts c ON d.contact_id = c.id
		LEFT JOIN companies co ON d.company_id = co.id
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent deals: %w", err)
	}
	defer rows.Close()

	var deals []deal.Deal
	for rows.Next() {
		d, err := scanDeal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deal rows: %w", err)
	}

	return deals, nil
}

// UpcomingActivities returns pending activities with the soonest due
// dates first.
func (r *StatsRepository) UpcomingActivities(ctx context.Context, limit int) ([]activity.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities a
		LEFT JOIN contacts c ON a.contact_id = c.id
		LEFT JOIN deals d ON a.deal_id = d.id
		WHERE a.completed = 0
		ORDER BY a.due_date ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming activities: %w", err)
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

// RecentContacts returns the newest contacts with company names.
func (r *StatsRepository) RecentContacts(ctx context.Context, limit int) ([]contact.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts c
		LEFT JOIN companies co ON c.company_id = co.id
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent contacts: %w", err)
	}
	defer rows.Close()

	var contacts []contact.Contact
	for rows.Next() {
		c, err := scanContact(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}

	return contacts, nil
}
