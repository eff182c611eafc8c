package mocks

import (
	"context"

	"mela-ticketing/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type RideRepositoryMock struct {
	mock.Mock
}

func NewRideRepositoryMock() *RideRepositoryMock {
	return &RideRepositoryMock{}
}

func (m *RideRepositoryMock) Create(ctx context.Context, ride *model.Ride) (*model.Ride, error) {
	args := m.Called(ctx, ride)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ride), args.Error(1)
}

func (m *RideRepositoryMock) List(ctx context.Context) ([]*model.Ride, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ride), args.Error(1)
}

func (m *RideRepositoryMock) FindByID(ctx context.Context, id int) (*model.Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ride), args.Error(1)
}

func (m *RideRepositoryMock) Update(ctx context.Context, id int, params model.UpdateRideParams) (*model.Ride, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ride), args.Error(1)
}

func (m *RideRepositoryMock) DeleteTx(ctx context.Context, tx pgx.Tx, id int) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}
