package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hferris/pipecrm/internal/domain/deal"
	"github.com/hferris/pipecrm/internal/repository"
)

// DealRepository implements repository.DealRepository for SQLite
type DealRepository struct {
	db *DB
}

// NewDealRepository creates a new DealRepository
func NewDealRepository(db *DB) *DealRepository {
	return &DealRepository{db: db}
}

// Create inserts a new deal and assigns its ID.
func (r *DealRepository) Create(ctx context.Context, d *deal.Deal) error {
	query := `
		INSERT INTO deals (title, value, stage, probability, contact_id, company_id, expected_close, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		d.Title,
		d.Value,
		d.Stage,
		d.Probability,
		d.ContactID,
		d.CompanyID,
		d.ExpectedClose,
		nullString(d.Description),
		d.CreatedAt,
		d.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create deal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get deal id: %w", err)
	}
	d.ID = id

	return nil
}

const dealColumns = `
	d.id, d.title, d.value, d.stage, d.probability, d.contact_id, d.company_id,
	d.expected_close, d.description, d.created_at, d.updated_at,
	c.first_name || ' ' || c.last_name AS contact_name,
	co.name AS company_name
`

func scanDeal(scan func(dest ...any) error) (deal.Deal, error) {
	var d deal.Deal
	var description, contactName, companyName sql.NullString
	err := scan(
		&d.ID,
		&d.Title,
		&d.Value,
		&d.Stage,
		&d.Probability,
		&d.ContactID,
		&d.CompanyID,
		&d.ExpectedClose,
		&description,
		&d.CreatedAt,
		&d.UpdatedAt,
		&contactName,
		&companyName,
	)
	if err != nil {
		return deal.Deal{}, err
	}
	d.Description = stringValue(description)
	d.ContactName = stringValue(contactName)
	d.CompanyName = stringValue(companyName)
	return d, nil
}

// Get retrieves a deal by ID, with contact and company names joined in.
func (r *DealRepository) Get(ctx context.Context, id int64) (*deal.Deal, error) {
	query := `
		SELECT ` + dealColumns + `
		FROM deals d
		LEFT JOIN contacts c ON d.contact_id = c.id
		LEFT JOIN companies co ON d.company_id = co.id
		WHERE d.id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	d, err := scanDeal(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}

	return &d, nil
}

// List returns all deals with joined display names, newest first.
func (r *DealRepository) List(ctx context.Context) ([]deal.Deal, error) {
	query := `
		SELECT ` + dealColumns + `
		FROM deals d
		LEFT JOIN contacts c ON d.contact_id = c.id
		LEFT JOIN companies co ON d.company_id = co.id
		ORDER BY d.created_at DESC, d.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
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

// Update rewrites a deal's mutable columns.
func (r *DealRepository) Update(ctx context.Context, d *deal.Deal) error {
	query := `
		UPDATE deals
		SET title = ?, value = ?, stage = ?, probability = ?, contact_id = ?, company_id = ?,
		    expected_close = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		d.Title,
		d.Value,
		d.Stage,
		d.Probability,
		d.ContactID,
		d.CompanyID,
		d.ExpectedClose,
		nullString(d.Description),
		d.UpdatedAt,
		d.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update deal: %w", err)
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
