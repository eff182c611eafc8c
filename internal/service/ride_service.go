package service

import (
	"context"

	"mela-ticketing/internal/model"
	"mela-ticketing/internal/repository"
	"mela-ticketing/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type RideService interface {
	List(ctx context.Context) ([]*model.Ride, error)
	GetByID(ctx context.Context, id int) (*model.Ride, error)
	Create(ctx context.Context, ride *model.Ride) (*model.Ride, error)
	Update(ctx context.Context, id int, params model.UpdateRideParams) (*model.Ride, error)
	// Delete 刪除設施並連帶刪除其所有預訂，兩者在同一交易內完成
	Delete(ctx context.Context, id int) error
}

type RideServiceImpl struct {
	pool              *pgxpool.Pool
	repository        repository.RideRepository
	bookingRepository repository.BookingRepository
}

func NewRideService(
	pool *pgxpool.Pool,
	rideRepository repository.RideRepository,
	bookingRepository repository.BookingRepository,
) RideService {
	return &RideServiceImpl{
		pool:              pool,
		repository:        rideRepository,
		bookingRepository: bookingRepository,
	}
}

func (s *RideServiceImpl) List(ctx context.Context) ([]*model.Ride, error) {
	return s.repository.List(ctx)
}

func (s *RideServiceImpl) GetByID(ctx context.Context, id int) (*model.Ride, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *RideServiceImpl) Create(ctx context.Context, ride *model.Ride) (*model.Ride, error) {
	if ride.Capacity <= 0 {
		ride.Capacity = 100
	}
	return s.repository.Create(ctx, ride)
}

func (s *RideServiceImpl) Update(ctx context.Context, id int, params model.UpdateRideParams) (*model.Ride, error) {
	return s.repository.Update(ctx, id, params)
}

func (s *RideServiceImpl) Delete(ctx context.Context, id int) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// 先清掉關聯預訂，再刪設施本體
	removed, err := s.bookingRepository.DeleteByRideIDTx(ctx, tx, id)
	if err != nil {
		return err
	}

	if err := s.repository.DeleteTx(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	logger.WithComponent("ride_service").Info("ride deleted",
		zap.Int("ride_id", id), zap.Int64("bookings_removed", removed))

	return nil
}
