package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hferris/pipecrm/internal/domain/company"
	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/repository"
)

func insertCompany(t *testing.T, db *DB, name string) int64 {
	t.Helper()
	now := time.Now()
	c := &company.Company{Name: name, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, NewCompanyRepository(db).Create(context.Background(), c))
	return c.ID
}

func TestContactCreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	companyID := insertCompany(t, db, "Meridian Ventures")

	now := time.Now()
	lastContacted := now.Add(-48 * time.Hour)
	c := &contact.Contact{
		FirstName:     "Alexandra",
		LastName:      "Chen",
		Email:         "a.chen@meridianvc.com",
		Phone:         "+1 (415) 555-0142",
		Title:         "Managing Partner",
		CompanyID:     &companyID,
		Status:        contact.StatusActive,
		AvatarColor:   "#c9a962",
		LastContacted: &lastContacted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := repo.Create(ctx, c)
	require.NoError(t, err)
	require.NotZero(t, c.ID)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Alexandra", got.FirstName)
	require.Equal(t, "a.chen@meridianvc.com", got.Email)
	require.Equal(t, contact.StatusActive, got.Status)
	require.Equal(t, "Meridian Ventures", got.CompanyName)
	require.NotNil(t, got.LastContacted)
}

func TestContactGetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContactRepository(db)

	_, err := repo.Get(context.Background(), 999)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContactDuplicateEmail(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	now := time.Now()
	first := &contact.Contact{
		FirstName: "Alexandra", LastName: "Chen",
		Email: "a.chen@meridianvc.com", Status: contact.StatusActive,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, first))

	dup := &contact.Contact{
		FirstName: "Alex", LastName: "Chenoweth",
		Email: "a.chen@meridianvc.com", Status: contact.StatusActive,
		CreatedAt: now, UpdatedAt: now,
	}
	err := repo.Create(ctx, dup)
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestContactEmptyEmailNotUnique(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	// Empty emails are stored as NULL, which the unique index ignores.
	now := time.Now()
	for _, name := range []string{"First", "Second"} {
		c := &contact.Contact{
			FirstName: name, LastName: "NoEmail",
			Status: contact.StatusLead, CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, repo.Create(ctx, c))
	}

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
}

func TestContactCreateBadCompany(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContactRepository(db)

	now := time.Now()
	badID := int64(12345)
	c := &contact.Contact{
		FirstName: "Nobody", LastName: "Nowhere",
		CompanyID: &badID, Status: contact.StatusActive,
		CreatedAt: now, UpdatedAt: now,
	}
	err := repo.Create(context.Background(), c)
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestContactListOrder(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	base := time.Now()
	for i, name := range []string{"Oldest", "Middle", "Newest"} {
		ts := base.Add(time.Duration(i) * time.Minute)
		c := &contact.Contact{
			FirstName: name, LastName: "Ordered",
			Status: contact.StatusActive, CreatedAt: ts, UpdatedAt: ts,
		}
		require.NoError(t, repo.Create(ctx, c))
	}

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	require.Equal(t, "Newest", contacts[0].FirstName)
	require.Equal(t, "Oldest", contacts[2].FirstName)
}

func TestContactUpdate(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	now := time.Now()
	c := &contact.Contact{
		FirstName: "Michael", LastName: "Torres",
		Status: contact.StatusLead, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, c))

	c.Status = contact.StatusActive
	c.Title = "Business Development Lead"
	c.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, contact.StatusActive, got.Status)
	require.Equal(t, "Business Development Lead", got.Title)
}

func TestContactUpdateNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContactRepository(db)

	now := time.Now()
	c := &contact.Contact{
		ID: 999, FirstName: "Ghost", LastName: "Row",
		Status: contact.StatusActive, CreatedAt: now, UpdatedAt: now,
	}
	err := repo.Update(context.Background(), c)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
