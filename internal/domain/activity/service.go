package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hferris/pipecrm/internal/repository"
)

// Service handles activity operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines activity creation inputs. Omitted priority
// defaults to medium; completed always starts false.
type CreateRequest struct {
	Type        Type       `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ContactID   *int64     `json:"contact_id"`
	DealID      *int64     `json:"deal_id"`
	DueDate     *time.Time `json:"due_date"`
	Priority    Priority   `json:"priority"`
}

// Create creates a new activity.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Activity, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unrecognized type %q", ErrInvalidInput, req.Type)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unrecognized priority %q", ErrInvalidInput, req.Priority)
	}

	a := &Activity{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		ContactID:   req.ContactID,
		DealID:      req.DealID,
		DueDate:     req.DueDate,
		Completed:   false,
		Priority:    priority,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("creating activity: %w", err)
	}
	return a, nil
}

// Get fetches an activity by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Activity, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("getting activity: %w", err)
	}
	return a, nil
}

// List returns all activities with contact names and deal titles, ordered
// by due date ascending (activities without one sort first).
func (s *Service) List(ctx context.Context) ([]Activity, error) {
	return s.repo.List(ctx)
}

// SetCompleted marks an activity completed or pending.
func (s *Service) SetCompleted(ctx context.Context, id int64, completed bool) error {
	if err := s.repo.SetCompleted(ctx, id, completed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("updating activity completion: %w", err)
	}
	return nil
}

// Summarize returns pending/completed/overdue/due-today counts as of now.
func (s *Service) Summarize(ctx context.Context, now time.Time) (Summary, error) {
	sum, err := s.repo.Counts(ctx, now)
	if err != nil {
		return Summary{}, fmt.Errorf("counting activities: %w", err)
	}
	return sum, nil
}
