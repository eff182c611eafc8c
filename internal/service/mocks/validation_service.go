package mocks

import (
	"context"

	"mela-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type ValidationServiceMock struct {
	mock.Mock
}

func NewValidationServiceMock() *ValidationServiceMock {
	return &ValidationServiceMock{}
}

func (m *ValidationServiceMock) Validate(ctx context.Context, token string) (int, error) {
	args := m.Called(ctx, token)
	return args.Int(0), args.Error(1)
}

func (m *ValidationServiceMock) Lookup(ctx context.Context, token string) (*model.TicketLookup, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TicketLookup), args.Error(1)
}
