package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hferris/pipecrm/internal/repository"
)

// defaultLogoColor matches the fallback the original dashboard assigns
// when a company is created without an explicit color.
const defaultLogoColor = "#c9a962"

// Service handles company operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new company service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines company creation inputs.
type CreateRequest struct {
	Name      string `json:"name"`
	Industry  string `json:"industry"`
	Website   string `json:"website"`
	Size      string `json:"size"`
	Revenue   string `json:"revenue"`
	Location  string `json:"location"`
	LogoColor string `json:"logo_color"`
}

// Create creates a new company.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Company, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	logoColor := req.LogoColor
	if logoColor == "" {
		logoColor = defaultLogoColor
	}

	now := time.Now()
	c := &Company{
		Name:      req.Name,
		Industry:  req.Industry,
		Website:   req.Website,
		Size:      req.Size,
		Revenue:   req.Revenue,
		Location:  req.Location,
		LogoColor: logoColor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}
	return c, nil
}

// Get fetches a company by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Company, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("getting company: %w", err)
	}
	return c, nil
}

// List returns all companies with contact/deal rollups, newest first.
func (s *Service) List(ctx context.Context) ([]Overview, error) {
	return s.repo.List(ctx)
}

// UpdateRequest defines company update inputs.
type UpdateRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Industry  string `json:"industry"`
	Website   string `json:"website"`
	Size      string `json:"size"`
	Revenue   string `json:"revenue"`
	Location  string `json:"location"`
	LogoColor string `json:"logo_color"`
}

// Update replaces a company's writable fields and refreshes updated_at.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Company, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	current.Name = req.Name
	current.Industry = req.Industry
	current.Website = req.Website
	current.Size = req.Size
	current.Revenue = req.Revenue
	current.Location = req.Location
	if req.LogoColor != "" {
		current.LogoColor = req.LogoColor
	}
	current.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("updating company: %w", err)
	}
	return current, nil
}
