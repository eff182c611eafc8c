package repository_test

import (
	"context"
	"testing"

	"mela-ticketing/internal/repository"
	apperrors "mela-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository_CreateIfAbsent(t *testing.T) {
	requireDB(t)

	repo := repository.NewAdminRepository(testDB)
	ctx := context.Background()

	t.Run("Creates on first call", func(t *testing.T) {
		setupTestWithTruncate(t)

		created, err := repo.CreateIfAbsent(ctx, "admin", "hash-1")

		require.NoError(t, err)
		assert.True(t, created)
		assertRowCount(t, "admins", 1)
	})

	t.Run("Idempotent - existing admin untouched", func(t *testing.T) {
		setupTestWithTruncate(t)

		created, err := repo.CreateIfAbsent(ctx, "admin", "hash-1")
		require.NoError(t, err)
		require.True(t, created)

		created, err = repo.CreateIfAbsent(ctx, "admin", "hash-2")
		require.NoError(t, err)
		assert.False(t, created)

		// 原本的密碼雜湊不被覆寫
		admin, err := repo.FindByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "hash-1", admin.PasswordHash)
	})
}

func TestAdminRepository_FindByUsername(t *testing.T) {
	requireDB(t)

	repo := repository.NewAdminRepository(testDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)

		_, err := repo.CreateIfAbsent(ctx, "admin", "hash-1")
		require.NoError(t, err)

		admin, err := repo.FindByUsername(ctx, "admin")

		require.NoError(t, err)
		assert.Equal(t, "admin", admin.Username)
		assert.Equal(t, "hash-1", admin.PasswordHash)
		assert.NotZero(t, admin.CreatedAt)
	})

	t.Run("NotFound", func(t *testing.T) {
		setupTestWithTruncate(t)

		_, err := repo.FindByUsername(ctx, "ghost")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)
	})
}
