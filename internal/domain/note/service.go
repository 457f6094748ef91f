package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrInvalidInput indicates invalid note input.
var ErrInvalidInput = errors.New("invalid note input")

// ListOptions filters notes by their attachment.
type ListOptions struct {
	ContactID *int64
	DealID    *int64
}

// Repository defines note persistence operations needed by the service.
type Repository interface {
	Create(ctx context.Context, n *Note) error
	List(ctx context.Context, opts ListOptions) ([]Note, error)
}

// Service handles note operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new note service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines note creation inputs.
type CreateRequest struct {
	Content   string `json:"content"`
	ContactID *int64 `json:"contact_id"`
	DealID    *int64 `json:"deal_id"`
}

// Create creates a new note.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Note, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	n := &Note{
		Content:   req.Content,
		ContactID: req.ContactID,
		DealID:    req.DealID,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	return n, nil
}

// List returns notes matching the filter, newest first.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Note, error) {
	return s.repo.List(ctx, opts)
}
