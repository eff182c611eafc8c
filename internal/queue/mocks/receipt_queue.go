package mocks

import (
	"context"

	"mela-ticketing/internal/queue"

	"github.com/stretchr/testify/mock"
)

type ReceiptQueueMock struct {
	mock.Mock
}

func NewReceiptQueueMock() *ReceiptQueueMock {
	return &ReceiptQueueMock{}
}

func (m *ReceiptQueueMock) PublishReceipt(ctx context.Context, job *queue.ReceiptJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *ReceiptQueueMock) SubscribeReceipts(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
