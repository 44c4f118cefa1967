package memory

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repomanager.RepositoryManager = (*Manager)(nil)

func TestUsers_UniqueEmail(t *testing.T) {
	repo := NewStore().Users()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "1", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{ID: "2", Email: "a@x.com"})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	_, err = repo.Create(ctx, &models.User{ID: "3", Email: "A@x.com"})
	require.NoError(t, err, "emails match case-sensitively")

	u, err := repo.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	_, err = repo.GetUserByID(ctx, "9")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestTasks_OwnerScoping(t *testing.T) {
	repo := NewStore().Tasks()
	ctx := context.Background()
	now := time.Now().UTC()

	task, err := repo.Create(ctx, &models.Task{UserID: "alice", Title: "t", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	_, err = repo.Get(ctx, "bob", task.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.Update(ctx, &models.Task{ID: task.ID, UserID: "bob", Title: "pwned"})
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.SetCompleted(ctx, "bob", task.ID, true, now)
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.ErrorIs(t, repo.Delete(ctx, "bob", task.ID), common.ErrorNotFound)

	list, err := repo.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := repo.Get(ctx, "alice", task.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
	assert.False(t, got.Completed)
}

func TestTasks_SetCompletedClampsUpdatedAt(t *testing.T) {
	repo := NewStore().Tasks()
	ctx := context.Background()
	created := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	task, err := repo.Create(ctx, &models.Task{UserID: "alice", Title: "t", CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)

	got, err := repo.SetCompleted(ctx, "alice", task.ID, true, created.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, created, got.UpdatedAt)
}
