package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mela-ticketing/internal/model"
	apperrors "mela-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RideRepository interface {
	Create(ctx context.Context, ride *model.Ride) (*model.Ride, error)
	List(ctx context.Context) ([]*model.Ride, error)
	FindByID(ctx context.Context, id int) (*model.Ride, error)
	Update(ctx context.Context, id int, params model.UpdateRideParams) (*model.Ride, error)

	// Transaction methods
	// DeleteTx 刪除設施本體；關聯預訂的清除由 service 在同一交易內先行處理
	DeleteTx(ctx context.Context, tx pgx.Tx, id int) error
}

type RideRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRideRepository(pool *pgxpool.Pool) RideRepository {
	return &RideRepositoryImpl{
		pool: pool,
	}
}

func (r *RideRepositoryImpl) Create(ctx context.Context, ride *model.Ride) (*model.Ride, error) {
	query := `
		INSERT INTO rides (name, price, description, image, capacity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, price, description, image, capacity, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		ride.Name, ride.Price, ride.Description, ride.Image, ride.Capacity,
	).Scan(
		&ride.ID,
		&ride.Name,
		&ride.Price,
		&ride.Description,
		&ride.Image,
		&ride.Capacity,
		&ride.CreatedAt,
		&ride.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}
	return ride, nil
}

func (r *RideRepositoryImpl) List(ctx context.Context) ([]*model.Ride, error) {
	query := `
		SELECT id, name, price, description, image, capacity, created_at, updated_at
		FROM rides
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := make([]*model.Ride, 0)
	for rows.Next() {
		var ride model.Ride
		err := rows.Scan(
			&ride.ID,
			&ride.Name,
			&ride.Price,
			&ride.Description,
			&ride.Image,
			&ride.Capacity,
			&ride.CreatedAt,
			&ride.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rides = append(rides, &ride)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rides, nil
}

func (r *RideRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Ride, error) {
	query := `
		SELECT id, name, price, description, image, capacity, created_at, updated_at
		FROM rides
		WHERE id = $1
	`

	var ride model.Ride
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ride.ID,
		&ride.Name,
		&ride.Price,
		&ride.Description,
		&ride.Image,
		&ride.Capacity,
		&ride.CreatedAt,
		&ride.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRideNotFound
		}
		return nil, err
	}

	return &ride, nil
}

func (r *RideRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateRideParams) (*model.Ride, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}

	if params.Price != nil {
		sets = append(sets, fmt.Sprintf("price = $%d", argPos))
		args = append(args, *params.Price)
		argPos++
	}

	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}

	if params.Image != nil {
		sets = append(sets, fmt.Sprintf("image = $%d", argPos))
		args = append(args, *params.Image)
		argPos++
	}

	if params.Capacity != nil {
		sets = append(sets, fmt.Sprintf("capacity = $%d", argPos))
		args = append(args, *params.Capacity)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE rides
		SET %s
		WHERE id = $%d
		RETURNING id, name, price, description, image, capacity, created_at, updated_at
	`, strings.Join(sets, ", "), argPos)

	var ride model.Ride
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&ride.ID,
		&ride.Name,
		&ride.Price,
		&ride.Description,
		&ride.Image,
		&ride.Capacity,
		&ride.CreatedAt,
		&ride.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRideNotFound
		}
		return nil, err
	}

	return &ride, nil
}

func (r *RideRepositoryImpl) DeleteTx(ctx context.Context, tx pgx.Tx, id int) error {
	query := `
		DELETE FROM rides
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRideNotFound
	}

	return nil
}
