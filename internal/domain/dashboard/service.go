package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hferris/pipecrm/internal/domain/activity"
	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/domain/deal"
)

const (
	recentDealsLimit        = 5
	upcomingActivitiesLimit = 5
	recentContactsLimit     = 4
)

// Repository defines the aggregation queries the dashboard reads from.
// Every method is a pure function of current store state.
type Repository interface {
	Stats(ctx context.Context) (Stats, error)
	DealsByStage(ctx context.Context) ([]StageSummary, error)
	RecentDeals(ctx context.Context, limit int) ([]deal.Deal, error)
	UpcomingActivities(ctx context.Context, limit int) ([]activity.Activity, error)
	RecentContacts(ctx context.Context, limit int) ([]contact.Contact, error)
}

// Service assembles the dashboard summary.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Summary produces the full dashboard payload. Stages with no deals are
// reported with zero count and value rather than omitted.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stats: %w", err)
	}

	byStage, err := s.repo.DealsByStage(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading deals by stage: %w", err)
	}

	recentDeals, err := s.repo.RecentDeals(ctx, recentDealsLimit)
	if err != nil {
		return nil, fmt.Errorf("loading recent deals: %w", err)
	}

	upcoming, err := s.repo.UpcomingActivities(ctx, upcomingActivitiesLimit)
	if err != nil {
		return nil, fmt.Errorf("loading upcoming activities: %w", err)
	}

	recentContacts, err := s.repo.RecentContacts(ctx, recentContactsLimit)
	if err != nil {
		return nil, fmt.Errorf("loading recent contacts: %w", err)
	}

	// Empty lists render as [], not null.
	if recentDeals == nil {
		recentDeals = []deal.Deal{}
	}
	if upcoming == nil {
		upcoming = []activity.Activity{}
	}
	if recentContacts == nil {
		recentContacts = []contact.Contact{}
	}

	return &Summary{
		Stats:              stats,
		DealsByStage:       FillStages(byStage),
		RecentDeals:        recentDeals,
		UpcomingActivities: upcoming,
		RecentContacts:     recentContacts,
	}, nil
}

// FillStages expands raw GROUP BY results to the full pipeline in display
// order, inserting zero rows for stages with no deals. Stages outside the
// pipeline order (lost, or values written around the application boundary)
// are appended after it so nothing the store returned is dropped.
func FillStages(raw []StageSummary) []StageSummary {
	byStage := make(map[deal.Stage]StageSummary, len(raw))
	for _, row := range raw {
		byStage[row.Stage] = row
	}

	out := make([]StageSummary, 0, len(deal.PipelineStages))
	for _, stage := range deal.PipelineStages {
		if row, ok := byStage[stage]; ok {
			out = append(out, row)
			delete(byStage, stage)
		} else {
			out = append(out, StageSummary{Stage: stage})
		}
	}
	for _, row := range raw {
		if _, ok := byStage[row.Stage]; ok {
			out = append(out, row)
		}
	}
	return out
}
