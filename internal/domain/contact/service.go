package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hferris/pipecrm/internal/repository"
)

const defaultAvatarColor = "#c9a962"

// Service handles contact operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new contact service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines contact creation inputs. Omitted status defaults
// to active; omitted avatar color gets the standard fallback.
type CreateRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Title       string `json:"title"`
	CompanyID   *int64 `json:"company_id"`
	Status      Status `json:"status"`
	AvatarColor string `json:"avatar_color"`
}

// Create creates a new contact.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Contact, error) {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unrecognized status %q", ErrInvalidInput, req.Status)
	}

	avatarColor := req.AvatarColor
	if avatarColor == "" {
		avatarColor = defaultAvatarColor
	}

	now := time.Now()
	c := &Contact{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Title:       req.Title,
		CompanyID:   req.CompanyID,
		Status:      status,
		AvatarColor: avatarColor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, req.Email)
		}
		return nil, fmt.Errorf("creating contact: %w", err)
	}
	return c, nil
}

// Get fetches a contact by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Contact, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("getting contact: %w", err)
	}
	return c, nil
}

// List returns all contacts with their company names, newest first.
func (s *Service) List(ctx context.Context) ([]Contact, error) {
	return s.repo.List(ctx)
}

// UpdateRequest defines contact update inputs.
type UpdateRequest struct {
	ID            int64      `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Title         string     `json:"title"`
	CompanyID     *int64     `json:"company_id"`
	Status        Status     `json:"status"`
	AvatarColor   string     `json:"avatar_color"`
	LastContacted *time.Time `json:"last_contacted"`
}

// Update replaces a contact's writable fields and refreshes updated_at.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Contact, error) {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unrecognized status %q", ErrInvalidInput, req.Status)
	}

	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	current.FirstName = req.FirstName
	current.LastName = req.LastName
	current.Email = req.Email
	current.Phone = req.Phone
	current.Title = req.Title
	current.CompanyID = req.CompanyID
	if req.Status != "" {
		current.Status = req.Status
	}
	if req.AvatarColor != "" {
		current.AvatarColor = req.AvatarColor
	}
	if req.LastContacted != nil {
		current.LastContacted = req.LastContacted
	}
	current.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, current); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrContactNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, req.Email)
		}
		return nil, fmt.Errorf("updating contact: %w", err)
	}
	return current, nil
}
