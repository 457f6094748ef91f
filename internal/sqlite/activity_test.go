package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hferris/pipecrm/internal/domain/activity"
	"github.com/hferris/pipecrm/internal/repository"
)

func insertActivity(t *testing.T, db *DB, title string, due *time.Time, completed bool) *activity.Activity {
	t.Helper()
	a := &activity.Activity{
		Type:      activity.TypeTask,
		Title:     title,
		DueDate:   due,
		Completed: completed,
		Priority:  activity.PriorityMedium,
		CreatedAt: time.Now(),
	}
	require.NoError(t, NewActivityRepository(db).Create(context.Background(), a))
	return a
}

func TestActivityCreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	due := time.Now().Add(24 * time.Hour)
	a := insertActivity(t, db, "Prepare demo environment", &due, false)

	got, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, activity.TypeTask, got.Type)
	require.Equal(t, "Prepare demo environment", got.Title)
	require.False(t, got.Completed)
	require.NotNil(t, got.DueDate)
}

func TestActivityListNullDueDatesFirst(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	due := time.Now().Add(time.Hour)
	insertActivity(t, db, "Dated", &due, false)
	insertActivity(t, db, "Undated", nil, false)

	activities, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	require.Equal(t, "Undated", activities[0].Title)
	require.Equal(t, "Dated", activities[1].Title)
}

func TestActivitySetCompleted(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	a := insertActivity(t, db, "Quarterly check-in", nil, false)

	require.NoError(t, repo.SetCompleted(ctx, a.ID, true))

	got, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, got.Completed)

	require.NoError(t, repo.SetCompleted(ctx, a.ID, false))

	got, err = repo.Get(ctx, a.ID)
	require.NoError(t, err)
	require.False(t, got.Completed)
}

func TestActivitySetCompletedNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)

	err := repo.SetCompleted(context.Background(), 999, true)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityCounts(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	// A fixed reference noon keeps the day-boundary buckets deterministic.
	now := time.Date(2024, 12, 12, 12, 0, 0, 0, time.Local)
	yesterday := now.Add(-24 * time.Hour)
	laterToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 0, 0, 0, now.Location())
	nextWeek := now.Add(7 * 24 * time.Hour)

	insertActivity(t, db, "Overdue", &yesterday, false)
	insertActivity(t, db, "Due today", &laterToday, false)
	insertActivity(t, db, "Future", &nextWeek, false)
	insertActivity(t, db, "Undated", nil, false)
	insertActivity(t, db, "Done", &yesterday, true)

	sum, err := repo.Counts(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 4, sum.Pending)
	require.Equal(t, 1, sum.Completed)
	require.Equal(t, 1, sum.Overdue, "completed and undated activities are never overdue")
	require.Equal(t, 1, sum.DueToday)
}

func TestActivityJoinedProjections(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	seeded, err := db.Seed(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	repo := NewActivityRepository(db)
	activities, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 10)

	var attached, detached int
	for _, a := range activities {
		if a.ContactName != "" {
			attached++
		} else {
			detached++
		}
	}
	require.Equal(t, 9, attached)
	require.Equal(t, 1, detached, "the standalone CRM hygiene task has no contact")
}
