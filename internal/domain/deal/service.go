package deal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hferris/pipecrm/internal/repository"
)

const defaultProbability = 10

// Service handles deal operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new deal service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines deal creation inputs. Omitted stage defaults to
// lead, omitted probability to 10.
type CreateRequest struct {
	Title         string     `json:"title"`
	Value         *float64   `json:"value"`
	Stage         Stage      `json:"stage"`
	Probability   *int       `json:"probability"`
	ContactID     *int64     `json:"contact_id"`
	CompanyID     *int64     `json:"company_id"`
	ExpectedClose *time.Time `json:"expected_close"`
	Description   string     `json:"description"`
}

// Create creates a new deal.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Deal, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	stage := req.Stage
	if stage == "" {
		stage = StageLead
	}
	if !stage.Valid() {
		return nil, fmt.Errorf("%w: unrecognized stage %q", ErrInvalidInput, req.Stage)
	}

	probability := defaultProbability
	if req.Probability != nil {
		probability = *req.Probability
	}
	if probability < 0 || probability > 100 {
		return nil, fmt.Errorf("%w: probability %d outside [0, 100]", ErrInvalidInput, probability)
	}

	now := time.Now()
	d := &Deal{
		Title:         req.Title,
		Value:         req.Value,
		Stage:         stage,
		Probability:   probability,
		ContactID:     req.ContactID,
		CompanyID:     req.CompanyID,
		ExpectedClose: req.ExpectedClose,
		Description:   req.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("creating deal: %w", err)
	}
	return d, nil
}

// Get fetches a deal by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Deal, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("getting deal: %w", err)
	}
	return d, nil
}

// List returns all deals with contact and company names, newest first.
func (s *Service) List(ctx context.Context) ([]Deal, error) {
	return s.repo.List(ctx)
}

// UpdateRequest defines deal update inputs.
type UpdateRequest struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Value         *float64   `json:"value"`
	Stage         Stage      `json:"stage"`
	Probability   *int       `json:"probability"`
	ContactID     *int64     `json:"contact_id"`
	CompanyID     *int64     `json:"company_id"`
	ExpectedClose *time.Time `json:"expected_close"`
	Description   string     `json:"description"`
}

// Update replaces a deal's writable fields and refreshes updated_at.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Deal, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.Stage != "" && !req.Stage.Valid() {
		return nil, fmt.Errorf("%w: unrecognized stage %q", ErrInvalidInput, req.Stage)
	}
	if req.Probability != nil && (*req.Probability < 0 || *req.Probability > 100) {
		return nil, fmt.Errorf("%w: probability %d outside [0, 100]", ErrInvalidInput, *req.Probability)
	}

	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	current.Title = req.Title
	current.Value = req.Value
	if req.Stage != "" {
		current.Stage = req.Stage
	}
	if req.Probability != nil {
		current.Probability = *req.Probability
	}
	current.ContactID = req.ContactID
	current.CompanyID = req.CompanyID
	current.ExpectedClose = req.ExpectedClose
	current.Description = req.Description
	current.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("updating deal: %w", err)
	}
	return current, nil
}

// ChangeStage moves a deal to a new pipeline stage.
func (s *Service) ChangeStage(ctx context.Context, id int64, stage Stage) (*Deal, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("%w: unrecognized stage %q", ErrInvalidInput, stage)
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Stage = stage
	current.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("changing deal stage: %w", err)
	}
	return current, nil
}
