package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hferris/pipecrm/internal/domain/activity"
	"github.com/hferris/pipecrm/internal/domain/company"
	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/domain/dashboard"
	"github.com/hferris/pipecrm/internal/domain/deal"
	"github.com/hferris/pipecrm/internal/domain/note"
)

// CompanyRepository is a mock for repository.CompanyRepository.
type CompanyRepository struct {
	mock.Mock
}

func (m *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CompanyRepository) Get(ctx context.Context, id int64) (*company.Company, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*company.Company); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompanyRepository) List(ctx context.Context) ([]company.Overview, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]company.Overview); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// ContactRepository is a mock for repository.ContactRepository.
type ContactRepository struct {
	mock.Mock
}

func (m *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ContactRepository) Get(ctx context.Context, id int64) (*contact.Contact, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*contact.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ContactRepository) List(ctx context.Context) ([]contact.Contact, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]contact.Contact); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// DealRepository is a mock for repository.DealRepository.
type DealRepository struct {
	mock.Mock
}

func (m *DealRepository) Create(ctx context.Context, d *deal.Deal) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *DealRepository) Get(ctx context.Context, id int64) (*deal.Deal, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*deal.Deal); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DealRepository) List(ctx context.Context) ([]deal.Deal, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]deal.Deal); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DealRepository) Update(ctx context.Context, d *deal.Deal) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Create(ctx context.Context, a *activity.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ActivityRepository) Get(ctx context.Context, id int64) (*activity.Activity, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*activity.Activity); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) List(ctx context.Context) ([]activity.Activity, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]activity.Activity); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	args := m.Called(ctx, id, completed)
	return args.Error(0)
}

func (m *ActivityRepository) Counts(ctx context.Context, now time.Time) (activity.Summary, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(activity.Summary), args.Error(1)
}

// NoteRepository is a mock for repository.NoteRepository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NoteRepository) List(ctx context.Context, opts note.ListOptions) ([]note.Note, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]note.Note); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// StatsRepository is a mock for repository.StatsRepository.
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) Stats(ctx context.Context) (dashboard.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(dashboard.Stats), args.Error(1)
}

func (m *StatsRepository) DealsByStage(ctx context.Context) ([]dashboard.StageSummary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]dashboard.StageSummary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatsRepository) RecentDeals(ctx context.Context, limit int) ([]deal.Deal, error) {
	args := m.Called(ctx, limit)
	if list, ok := args.Get(0).([]deal.Deal); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatsRepository) UpcomingActivities(ctx context.Context, limit int) ([]activity.Activity, error) {
	args := m.Called(ctx, limit)
	if list, ok := args.Get(0).([]activity.Activity); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatsRepository) RecentContacts(ctx context.Context, limit int) ([]contact.Contact, error) {
	args := m.Called(ctx, limit)
	if list, ok := args.Get(0).([]contact.Contact); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
