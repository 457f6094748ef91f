package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/domain/deal"
	"github.com/hferris/pipecrm/internal/domain/note"
	"github.com/hferris/pipecrm/internal/repository"
)

func TestNoteCreateAndFilter(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	now := time.Now()
	person := &contact.Contact{
		FirstName: "Elena", LastName: "Vasquez",
		Status: contact.StatusActive, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, NewContactRepository(db).Create(ctx, person))

	d := &deal.Deal{
		Title: "Supply Chain Platform", Stage: deal.StageProposal, Probability: 55,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, NewDealRepository(db).Create(ctx, d))

	contactNote := &note.Note{Content: "Prefers morning calls.", ContactID: &person.ID, CreatedAt: now}
	dealNote := &note.Note{Content: "Demo scheduled.", DealID: &d.ID, CreatedAt: now.Add(time.Second)}
	looseNote := &note.Note{Content: "General observation.", CreatedAt: now.Add(2 * time.Second)}
	for _, n := range []*note.Note{contactNote, dealNote, looseNote} {
		require.NoError(t, repo.Create(ctx, n))
	}

	all, err := repo.List(ctx, note.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "General observation.", all[0].Content, "newest first")

	byContact, err := repo.List(ctx, note.ListOptions{ContactID: &person.ID})
	require.NoError(t, err)
	require.Len(t, byContact, 1)
	require.Equal(t, "Prefers morning calls.", byContact[0].Content)

	byDeal, err := repo.List(ctx, note.ListOptions{DealID: &d.ID})
	require.NoError(t, err)
	require.Len(t, byDeal, 1)
	require.Equal(t, "Demo scheduled.", byDeal[0].Content)
}

func TestNoteCreateBadContact(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNoteRepository(db)

	n := &note.Note{Content: "Orphan", ContactID: int64Ptr(12345), CreatedAt: time.Now()}
	err := repo.Create(context.Background(), n)
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}
