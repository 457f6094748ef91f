package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hferris/pipecrm/internal/domain/company"
	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/domain/deal"
	"github.com/hferris/pipecrm/internal/repository"
)

func TestCompanyCreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	now := time.Now()
	c := &company.Company{
		Name:      "Novus Therapeutics",
		Industry:  "Biotechnology",
		Website:   "novusthera.com",
		Size:      "100-250",
		Revenue:   "$100M-250M",
		Location:  "Boston, MA",
		LogoColor: "#8b7355",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, c))
	require.NotZero(t, c.ID)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Novus Therapeutics", got.Name)
	require.Equal(t, "Biotechnology", got.Industry)
	require.Equal(t, "#8b7355", got.LogoColor)
}

func TestCompanyGetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCompanyRepository(db)

	_, err := repo.Get(context.Background(), 999)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCompanyListRollups(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	companyID := insertCompany(t, db, "Atlas Architecture")

	now := time.Now()
	for _, name := range []string{"Marcus", "Catherine"} {
		c := &contact.Contact{
			FirstName: name, LastName: "AtAtlas",
			CompanyID: &companyID, Status: contact.StatusActive,
			CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, NewContactRepository(db).Create(ctx, c))
	}

	dealRepo := NewDealRepository(db)
	deals := []struct {
		title string
		value float64
		stage deal.Stage
	}{
		{"Headquarters Redesign", 180000, deal.StageQualified},
		{"Office Expansion", 220000, deal.StageLost},
	}
	for _, spec := range deals {
		d := &deal.Deal{
			Title: spec.title, Value: floatPtr(spec.value),
			Stage: spec.stage, Probability: 50, CompanyID: &companyID,
			CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, dealRepo.Create(ctx, d))
	}

	overviews, err := NewCompanyRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, overviews, 1)

	o := overviews[0]
	require.Equal(t, 2, o.ContactCount)
	require.Equal(t, 2, o.DealCount)
	require.InDelta(t, 180000, o.TotalDealValue, 0.001, "lost deals excluded from the rollup")
}

func TestCompanyListEmptyRollups(t *testing.T) {
	db := NewTestDB(t)

	insertCompany(t, db, "Helix Consulting")

	overviews, err := NewCompanyRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, overviews, 1)
	require.Equal(t, 0, overviews[0].ContactCount)
	require.Equal(t, 0, overviews[0].DealCount)
	require.InDelta(t, 0, overviews[0].TotalDealValue, 0.001)
}

func TestCompanyUpdate(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	now := time.Now()
	c := &company.Company{Name: "Lumen Media", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, c))

	c.Industry = "Digital Media"
	c.Location = "Los Angeles, CA"
	c.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Digital Media", got.Industry)
	require.Equal(t, "Los Angeles, CA", got.Location)
}

func TestCompanyUpdateNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCompanyRepository(db)

	now := time.Now()
	c := &company.Company{ID: 999, Name: "Ghost", CreatedAt: now, UpdatedAt: now}
	err := repo.Update(context.Background(), c)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
