package mocks

import (
	"context"

	"mela-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type RideServiceMock struct {
	mock.Mock
}

func NewRideServiceMock() *RideServiceMock {
	return &RideServiceMock{}
}

func (m *RideServiceMock) List(ctx context.Context) ([]*model.Ride, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ride), args.Error(1)
}

func (m *RideServiceMock) GetByID(ctx context.Context, id int) (*model.Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ride), args.Error(1)
}

func (m *RideServiceMock) Create(ctx context.Context, ride *model.Ride) (*model.Ride, error) {
	args := m.Called(ctx, ride)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ride), args.Error(1)
}

func (m *RideServiceMock) Update(ctx context.Context, id int, params model.UpdateRideParams) (*model.Ride, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ride), args.Error(1)
}

func (m *RideServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
