package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hferris/pipecrm/internal/domain/company"
	"github.com/hferris/pipecrm/internal/repository"
)

// CompanyRepository implements repository.CompanyRepository for SQLite
type CompanyRepository struct {
	db *DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create inserts a new company and assigns its ID.
func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (name, industry, website, size, revenue, location, logo_color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		c.Name,
		nullString(c.Industry),
		nullString(c.Website),
		nullString(c.Size),
		nullString(c.Revenue),
		nullString(c.Location),
		nullString(c.LogoColor),
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get company id: %w", err)
	}
	c.ID = id

	return nil
}

// Get retrieves a company by ID
func (r *CompanyRepository) Get(ctx context.Context, id int64) (*company.Company, error) {
	query := `
		SELECT id, name, industry, website, size, revenue, location, logo_color, created_at, updated_at
		FROM companies
		WHERE id = ?
	`

	var c company.Company
	var industry, website, size, revenue, location, logoColor sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&industry,
		&website,
		&size,
		&revenue,
		&location,
		&logoColor,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	c.Industry = stringValue(industry)
	c.Website = stringValue(website)
	c.Size = stringValue(size)
	c.Revenue = stringValue(revenue)
	c.Location = stringValue(location)
	c.LogoColor = stringValue(logoColor)

	return &c, nil
}

// List returns all companies newest first, each with its contact count,
// deal count, and total non-lost deal value.
func (r *CompanyRepository) List(ctx context.Context) ([]company.Overview, error) {
	query := `
		SELECT
			c.id, c.name, c.industry, c.website, c.size, c.revenue, c.location, c.logo_color,
			c.created_at, c.updated_at,
			COUNT(DISTINCT co.id) AS contact_count,
			COUNT(DISTINCT d.id) AS deal_count,
			COALESCE(SUM(CASE WHEN d.stage != 'lost' THEN d.value ELSE 0 END), 0) AS total_deal_value
		FROM companies c
		LEFT JOIN contacts co ON co.company_id = c.id
		LEFT JOIN deals d ON d.company_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC, c.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var overviews []company.Overview
	for rows.Next() {
		var o company.Overview
		var industry, website, size, revenue, location, logoColor sql.NullString
		err := rows.Scan(
			&o.ID,
			&o.Name,
			&industry,
			&website,
			&size,
			&revenue,
			&location,
			&logoColor,
			&o.CreatedAt,
			&o.UpdatedAt,
			&o.ContactCount,
			&o.DealCount,
			&o.TotalDealValue,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		o.Industry = stringValue(industry)
		o.Website = stringValue(website)
		o.Size = stringValue(size)
		o.Revenue = stringValue(revenue)
		o.Location = stringValue(location)
		o.LogoColor = stringValue(logoColor)
		overviews = append(overviews, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return overviews, nil
}

// Update rewrites a company's mutable columns.
func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	query := `
		UPDATE companies
		SET name = ?, industry = ?, website = ?, size = ?, revenue = ?, location = ?, logo_color = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		c.Name,
		nullString(c.Industry),
		nullString(c.Website),
		nullString(c.Size),
		nullString(c.Revenue),
		nullString(c.Location),
		nullString(c.LogoColor),
		c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
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
