package mocks

import (
	"context"
	"time"

	"mela-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type DashboardCacheMock struct {
	mock.Mock
}

func NewDashboardCacheMock() *DashboardCacheMock {
	return &DashboardCacheMock{}
}

func (m *DashboardCacheMock) Get(ctx context.Context) (*model.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardSummary), args.Error(1)
}

func (m *DashboardCacheMock) Set(ctx context.Context, summary *model.DashboardSummary, ttl time.Duration) error {
	args := m.Called(ctx, summary, ttl)
	return args.Error(0)
}

func (m *DashboardCacheMock) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
