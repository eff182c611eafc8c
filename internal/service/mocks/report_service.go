package mocks

import (
	"context"

	"mela-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type ReportServiceMock struct {
	mock.Mock
}

func NewReportServiceMock() *ReportServiceMock {
	return &ReportServiceMock{}
}

func (m *ReportServiceMock) DashboardSummary(ctx context.Context) (*model.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardSummary), args.Error(1)
}
