package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"mela-ticketing/internal/queue"
	"mela-ticketing/pkg/logger"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

type ReceiptWorker interface {
	// 訂閱收據任務隊列
	Start(ctx context.Context) error
}

type ReceiptWorkerImpl struct {
	queue      queue.ReceiptQueue
	receiptDir string
}

func NewReceiptWorker(queue queue.ReceiptQueue, receiptDir string) ReceiptWorker {
	return &ReceiptWorkerImpl{
		queue:      queue,
		receiptDir: receiptDir,
	}
}

func (w *ReceiptWorkerImpl) Start(ctx context.Context) error {
	if err := os.MkdirAll(w.receiptDir, 0o755); err != nil {
		return err
	}

	msgs, err := w.queue.SubscribeReceipts(ctx)
	if err != nil {
		return err
	}

	log := logger.WithComponent("receipt_worker")

	go func() {
		for msg := range msgs {
			path, err := w.render(msg.Data)
			if err != nil {
				// 收據是 best-effort 副作用，失敗記錄後丟棄，不重回隊列
				log.Error("failed to render receipt",
					zap.Int("booking_id", msg.Data.Booking.ID), zap.Error(err))
				msg.Nack(false)
				continue
			}
			log.Info("receipt written",
				zap.Int("booking_id", msg.Data.Booking.ID), zap.String("path", path))
			msg.Ack()
		}
	}()
	return nil
}

func (w *ReceiptWorkerImpl) render(job *queue.ReceiptJob) (string, error) {
	booking := job.Booking

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(190, 10, "Fairground Ticket Receipt")

	pdf.SetFont("Arial", "", 12)
	pdf.Ln(10)
	pdf.Cell(190, 10, fmt.Sprintf("Booking ID: %d", booking.ID))
	pdf.Ln(10)
	pdf.Cell(190, 10, fmt.Sprintf("Ride: %s", job.RideName))
	pdf.Ln(10)
	pdf.Cell(190, 10, fmt.Sprintf("Name: %s", booking.Name))
	pdf.Ln(10)
	pdf.Cell(190, 10, fmt.Sprintf("Quantity: %d", booking.Quantity))
	pdf.Ln(10)
	pdf.Cell(190, 10, fmt.Sprintf("Amount: INR %d", booking.TotalAmount))
	pdf.Ln(10)
	pdf.Cell(190, 10, fmt.Sprintf("Date: %s", booking.CreatedAt.Format("2006-01-02 15:04:05")))
	if booking.GatewayPaymentID != nil {
		pdf.Ln(10)
		pdf.Cell(190, 10, fmt.Sprintf("Payment ID: %s", *booking.GatewayPaymentID))
	}

	filename := fmt.Sprintf("receipt_%d_%s.pdf", booking.ID, uuid.New().String())
	path := filepath.Join(w.receiptDir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
