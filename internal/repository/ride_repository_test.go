package repository_test

import (
	"context"
	"testing"

	"mela-ticketing/internal/model"
	"mela-ticketing/internal/repository"
	apperrors "mela-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRideRepository_Create(t *testing.T) {
	requireDB(t)
	setupTestWithTruncate(t)

	repo := repository.NewRideRepository(testDB)
	ctx := context.Background()

	desc := "The big wheel"
	ride := &model.Ride{
		Name:        "Ferris Wheel",
		Price:       100,
		Description: &desc,
		Capacity:    40,
	}

	created, err := repo.Create(ctx, ride)

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ferris Wheel", created.Name)
	assert.Equal(t, 100, created.Price)
	require.NotNil(t, created.Description)
	assert.Equal(t, "The big wheel", *created.Description)
	assert.Equal(t, 40, created.Capacity)
	assert.NotZero(t, created.CreatedAt)
}

func TestRideRepository_FindByID(t *testing.T) {
	requireDB(t)

	repo := repository.NewRideRepository(testDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)

		rideID := createTestRide(t, "Carousel", 60)

		found, err := repo.FindByID(ctx, rideID)

		require.NoError(t, err)
		assert.Equal(t, rideID, found.ID)
		assert.Equal(t, "Carousel", found.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		setupTestWithTruncate(t)

		_, err := repo.FindByID(ctx, 99999)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrRideNotFound)
	})
}

func TestRideRepository_List(t *testing.T) {
	requireDB(t)

	repo := repository.NewRideRepository(testDB)
	ctx := context.Background()

	t.Run("EmptyList", func(t *testing.T) {
		setupTestWithTruncate(t)

		rides, err := repo.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, rides)
	})

	t.Run("OrderByCreatedAtDesc", func(t *testing.T) {
		setupTestWithTruncate(t)

		createTestRide(t, "Ride A", 50)
		createTestRide(t, "Ride B", 60)
		createTestRide(t, "Ride C", 70)

		rides, err := repo.List(ctx)

		require.NoError(t, err)
		assert.Len(t, rides, 3)
	})
}

func TestRideRepository_Update(t *testing.T) {
	requireDB(t)

	repo := repository.NewRideRepository(testDB)
	ctx := context.Background()

	t.Run("Success - partial update", func(t *testing.T) {
		setupTestWithTruncate(t)

		rideID := createTestRide(t, "Original", 100)

		price := 120
		updated, err := repo.Update(ctx, rideID, model.UpdateRideParams{Price: &price})

		require.NoError(t, err)
		assert.Equal(t, 120, updated.Price)
		assert.Equal(t, "Original", updated.Name)
	})

	t.Run("Failed - no fields", func(t *testing.T) {
		setupTestWithTruncate(t)

		rideID := createTestRide(t, "Original", 100)

		_, err := repo.Update(ctx, rideID, model.UpdateRideParams{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		setupTestWithTruncate(t)

		name := "New Name"
		_, err := repo.Update(ctx, 99999, model.UpdateRideParams{Name: &name})

		assert.ErrorIs(t, err, apperrors.ErrRideNotFound)
	})
}

func TestRideRepository_DeleteTx(t *testing.T) {
	requireDB(t)

	repo := repository.NewRideRepository(testDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)

		rideID := createTestRide(t, "Doomed Ride", 100)

		tx, err := testDB.Begin(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.DeleteTx(ctx, tx, rideID))
		require.NoError(t, tx.Commit(ctx))

		assertRowCount(t, "rides", 0)
	})

	t.Run("NotFound", func(t *testing.T) {
		setupTestWithTruncate(t)

		tx, err := testDB.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		err = repo.DeleteTx(ctx, tx, 99999)

		assert.ErrorIs(t, err, apperrors.ErrRideNotFound)
	})

	t.Run("RollbackKeepsRide", func(t *testing.T) {
		setupTestWithTruncate(t)

		rideID := createTestRide(t, "Survivor", 100)

		tx, err := testDB.Begin(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.DeleteTx(ctx, tx, rideID))
		require.NoError(t, tx.Rollback(ctx))

		assertRowCount(t, "rides", 1)
	})
}
