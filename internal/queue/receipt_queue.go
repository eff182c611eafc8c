package queue

import (
	"context"

	"mela-ticketing/internal/model"
)

// ReceiptJob 一筆待出收據的付款完成預訂
type ReceiptJob struct {
	Booking  *model.Booking
	RideName string
}

type Delivery struct {
	Data *ReceiptJob
	Ack  func()
	Nack func(requeue bool)
}

type ReceiptQueue interface {
	// 發送收據任務到隊列
	PublishReceipt(ctx context.Context, job *ReceiptJob) error
	// 訂閱收據任務隊列
	SubscribeReceipts(ctx context.Context) (<-chan Delivery, error)
}

type ReceiptQueueImpl struct {
	// 單進程部署用 channel 就足夠；收據屬 best-effort 副作用
	ch chan *ReceiptJob
}

func NewReceiptQueue(bufferSize int) ReceiptQueue {
	return &ReceiptQueueImpl{
		ch: make(chan *ReceiptJob, bufferSize),
	}
}

func (q *ReceiptQueueImpl) PublishReceipt(ctx context.Context, job *ReceiptJob) error {
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ReceiptQueueImpl) SubscribeReceipts(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: job,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- job
						}
					},
				}
			}
		}
	}()

	return out, nil
}
