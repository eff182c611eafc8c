package mocks

import (
	"context"
	"time"

	"mela-ticketing/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type BookingRepositoryMock struct {
	mock.Mock
}

func NewBookingRepositoryMock() *BookingRepositoryMock {
	return &BookingRepositoryMock{}
}

func (m *BookingRepositoryMock) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) List(ctx context.Context) ([]*model.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) FindByID(ctx context.Context, id int) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) SetQRData(ctx context.Context, id int, qrData string) error {
	args := m.Called(ctx, id, qrData)
	return args.Error(0)
}

func (m *BookingRepositoryMock) AttachGatewayOrder(ctx context.Context, id int, orderID string) error {
	args := m.Called(ctx, id, orderID)
	return args.Error(0)
}

func (m *BookingRepositoryMock) MarkPaid(ctx context.Context, id int, paymentID, orderID string) (*model.Booking, error) {
	args := m.Called(ctx, id, paymentID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) Redeem(ctx context.Context, id int, requirePaid bool) error {
	args := m.Called(ctx, id, requirePaid)
	return args.Error(0)
}

func (m *BookingRepositoryMock) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *BookingRepositoryMock) SumRevenue(ctx context.Context, statuses []model.BookingStatus) (int, error) {
	args := m.Called(ctx, statuses)
	return args.Int(0), args.Error(1)
}

func (m *BookingRepositoryMock) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	args := m.Called(ctx, start, end)
	return args.Int(0), args.Error(1)
}

func (m *BookingRepositoryMock) DeleteByRideIDTx(ctx context.Context, tx pgx.Tx, rideID int) (int64, error) {
	args := m.Called(ctx, tx, rideID)
	return args.Get(0).(int64), args.Error(1)
}
