package service

import (
	"context"
	"fmt"

	"mela-ticketing/internal/model"
	"mela-ticketing/internal/payment"
	"mela-ticketing/internal/queue"
	"mela-ticketing/internal/repository"
	"mela-ticketing/pkg/logger"

	"go.uber.org/zap"
)

const orderCurrency = "INR"

type BookingService interface {
	// CreateBooking 建立預訂；設定金流時會一併開立遠端訂單
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.BookingResult, error)
	GetBooking(ctx context.Context, id int) (*model.Booking, error)
	ListBookings(ctx context.Context) ([]*model.Booking, error)
	// ConfirmPayment 金流回調：標記已付款並記錄閘道識別碼
	ConfirmPayment(ctx context.Context, req model.ConfirmPaymentRequest) (*model.Booking, error)
}

type BookingServiceImpl struct {
	repository     repository.BookingRepository
	rideRepository repository.RideRepository
	gateway        payment.Gateway
	verifier       payment.SignatureVerifier
	receiptQueue   queue.ReceiptQueue
}

// NewBookingService gateway、verifier、receiptQueue 皆可為 nil：
// 無金流時直接出票，無驗章時信任回調內容，無隊列時不出收據
func NewBookingService(
	bookingRepository repository.BookingRepository,
	rideRepository repository.RideRepository,
	gateway payment.Gateway,
	verifier payment.SignatureVerifier,
	receiptQueue queue.ReceiptQueue,
) BookingService {
	return &BookingServiceImpl{
		repository:     bookingRepository,
		rideRepository: rideRepository,
		gateway:        gateway,
		verifier:       verifier,
		receiptQueue:   receiptQueue,
	}
}

func (s *BookingServiceImpl) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.BookingResult, error) {
	ride, err := s.rideRepository.FindByID(ctx, req.RideID)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	booking := &model.Booking{
		RideID:      ride.ID,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Quantity:    quantity,
		TotalAmount: ride.Price * quantity,
		Status:      model.BookingStatusBooked,
	}

	booking, err = s.repository.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	// qr_data 需要已知的 booking id，insert 之後再補寫一次
	qrData := model.FormatTicketToken(booking.ID, booking.CreatedAt)
	if err := s.repository.SetQRData(ctx, booking.ID, qrData); err != nil {
		return nil, err
	}
	booking.QRData = qrData
	booking.Ride = ride

	if s.gateway == nil {
		return &model.BookingResult{Booking: booking}, nil
	}

	// 盧比 → paise
	amountMinor := int64(booking.TotalAmount) * 100
	receipt := fmt.Sprintf("order_rcptid_%d", booking.ID)

	orderID, err := s.gateway.CreateOrder(ctx, amountMinor, orderCurrency, receipt)
	if err != nil {
		return nil, err
	}

	if err := s.repository.AttachGatewayOrder(ctx, booking.ID, orderID); err != nil {
		return nil, err
	}
	booking.GatewayOrderID = &orderID

	return &model.BookingResult{
		Booking:        booking,
		PaymentPending: true,
		GatewayKeyID:   s.gateway.KeyID(),
	}, nil
}

func (s *BookingServiceImpl) GetBooking(ctx context.Context, id int) (*model.Booking, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *BookingServiceImpl) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	return s.repository.List(ctx)
}

func (s *BookingServiceImpl) ConfirmPayment(ctx context.Context, req model.ConfirmPaymentRequest) (*model.Booking, error) {
	if s.verifier != nil {
		if err := s.verifier.Verify(req.GatewayOrderID, req.GatewayPaymentID, req.Signature); err != nil {
			return nil, err
		}
	}

	if _, err := s.repository.FindByID(ctx, req.BookingID); err != nil {
		return nil, err
	}

	booking, err := s.repository.MarkPaid(ctx, req.BookingID, req.GatewayPaymentID, req.GatewayOrderID)
	if err != nil {
		return nil, err
	}

	s.publishReceipt(ctx, booking)

	return booking, nil
}

func (s *BookingServiceImpl) publishReceipt(ctx context.Context, booking *model.Booking) {
	if s.receiptQueue == nil {
		return
	}

	log := logger.WithComponent("booking_service")

	rideName := ""
	if ride, err := s.rideRepository.FindByID(ctx, booking.RideID); err == nil {
		rideName = ride.Name
	}

	job := &queue.ReceiptJob{Booking: booking, RideName: rideName}
	if err := s.receiptQueue.PublishReceipt(ctx, job); err != nil {
		// 收據出不來不影響付款結果
		log.Warn("failed to publish receipt job",
			zap.Int("booking_id", booking.ID), zap.Error(err))
	}
}
