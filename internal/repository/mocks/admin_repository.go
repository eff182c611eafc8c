package mocks

import (
	"context"

	"mela-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type AdminRepositoryMock struct {
	mock.Mock
}

func NewAdminRepositoryMock() *AdminRepositoryMock {
	return &AdminRepositoryMock{}
}

func (m *AdminRepositoryMock) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *AdminRepositoryMock) CreateIfAbsent(ctx context.Context, username, passwordHash string) (bool, error) {
	args := m.Called(ctx, username, passwordHash)
	return args.Bool(0), args.Error(1)
}
