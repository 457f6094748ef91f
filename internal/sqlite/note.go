package sqlite

import (
	"context"
	"fmt"

	"github.com/hferris/pipecrm/internal/domain/note"
	"github.com/hferris/pipecrm/internal/repository"
)

// NoteRepository implements repository.NoteRepository for SQLite
type NoteRepository struct {
	db *DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a new note and assigns its ID.
func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	query := `
		INSERT INTO notes (content, contact_id, deal_id, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, n.Content, n.ContactID, n.DealID, n.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get note id: %w", err)
	}
	n.ID = id

	return nil
}

// List returns notes matching the filter, newest first.
func (r *NoteRepository) List(ctx context.Context, opts note.ListOptions) ([]note.Note, error) {
	query := `SELECT id, content, contact_id, deal_id, created_at FROM notes`

	var args []any
	switch {
	case opts.ContactID != nil:
		query += ` WHERE contact_id = ?`
		args = append(args, *opts.ContactID)
	case opts.DealID != nil:
		query += ` WHERE deal_id = ?`
		args = append(args, *opts.DealID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.Content, &n.ContactID, &n.DealID, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}
