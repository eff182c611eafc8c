package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type GatewayMock struct {
	mock.Mock
}

func NewGatewayMock() *GatewayMock {
	return &GatewayMock{}
}

func (m *GatewayMock) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error) {
	args := m.Called(ctx, amountMinor, currency, receipt)
	return args.String(0), args.Error(1)
}

func (m *GatewayMock) KeyID() string {
	args := m.Called()
	return args.String(0)
}
