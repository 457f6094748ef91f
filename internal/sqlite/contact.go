package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/repository"
)

// ContactRepository implements repository.ContactRepository for SQLite
type ContactRepository struct {
	db *DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact and assigns its ID.
func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	query := `
		INSERT INTO contacts (first_name, last_name, email, phone, title, company_id, status, avatar_color, last_contacted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		c.FirstName,
		c.LastName,
		nullString(c.Email),
		nullString(c.Phone),
		nullString(c.Title),
		c.CompanyID,
		c.Status,
		nullString(c.AvatarColor),
		c.LastContacted,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get contact id: %w", err)
	}
	c.ID = id

	return nil
}

const contactColumns = `
	c.id, c.first_name, c.last_name, c.email, c.phone, c.title, c.company_id,
	c.status, c.avatar_color, c.last_contacted, c.created_at, c.updated_at,
	co.name AS company_name
`

func scanContact(scan func(dest ...any) error) (contact.Contact, error) {
	var c contact.Contact
	var email, phone, title, avatarColor, companyName sql.NullString
	err := scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&email,
		&phone,
		&title,
		&c.CompanyID,
		&c.Status,
		&avatarColor,
		&c.LastContacted,
		&c.CreatedAt,
		&c.UpdatedAt,
		&companyName,
	)
	if err != nil {
		return contact.Contact{}, err
	}
	c.Email = stringValue(email)
	c.Phone = stringValue(phone)
	c.Title = stringValue(title)
	c.AvatarColor = stringValue(avatarColor)
	c.CompanyName = stringValue(companyName)
	return c, nil
}

// Get retrieves a contact by ID, with its company name joined in.
func (r *ContactRepository) Get(ctx context.Context, id int64) (*contact.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts c
		LEFT JOIN companies co ON c.company_id = co.id
		WHERE c.id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	c, err := scanContact(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return &c, nil
}

// List returns all contacts with company names, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]contact.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts c
		LEFT JOIN companies co ON c.company_id = co.id
		ORDER BY c.created_at DESC, c.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
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

// Update rewrites a contact's mutable columns.
func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	query := `
		UPDATE contacts
		SET first_name = ?, last_name = ?, email = ?, phone = ?, title = ?, company_id = ?,
		    status = ?, avatar_color = ?, last_contacted = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		c.FirstName,
		c.LastName,
		nullString(c.Email),
		nullString(c.Phone),
		nullString(c.Title),
		c.CompanyID,
		c.Status,
		nullString(c.AvatarColor),
		c.LastContacted,
		c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update contact: %w", err)
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
