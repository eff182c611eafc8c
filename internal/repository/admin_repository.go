package repository

import (
	"context"

	"mela-ticketing/internal/model"
	apperrors "mela-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	// CreateIfAbsent 冪等建立管理員；帳號已存在時回傳 false 且不覆寫
	CreateIfAbsent(ctx context.Context, username, passwordHash string) (bool, error)
}

type AdminRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &AdminRepositoryImpl{
		pool: pool,
	}
}

func (r *AdminRepositoryImpl) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM admins
		WHERE username = $1
	`

	var admin model.Admin
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, err
	}

	return &admin, nil
}

func (r *AdminRepositoryImpl) CreateIfAbsent(ctx context.Context, username, passwordHash string) (bool, error) {
	query := `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`

	result, err := r.pool.Exec(ctx, query, username, passwordHash)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}
