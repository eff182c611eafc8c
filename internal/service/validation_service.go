package service

import (
	"context"

	"mela-ticketing/internal/model"
	"mela-ticketing/internal/repository"
)

type ValidationService interface {
	// Validate 核銷票券：成功回傳 booking id；已使用時回傳 id 與 ErrAlreadyUsed
	Validate(ctx context.Context, token string) (int, error)
	// Lookup 掃描端唯讀查詢，只回傳 id / 設施名 / 狀態
	Lookup(ctx context.Context, token string) (*model.TicketLookup, error)
}

type ValidationServiceImpl struct {
	repository     repository.BookingRepository
	rideRepository repository.RideRepository
	admitUnpaid    bool
}

// NewValidationService admitUnpaid 為 true 時沿用現場流程：未付款的票同樣可入場
func NewValidationService(
	bookingRepository repository.BookingRepository,
	rideRepository repository.RideRepository,
	admitUnpaid bool,
) ValidationService {
	return &ValidationServiceImpl{
		repository:     bookingRepository,
		rideRepository: rideRepository,
		admitUnpaid:    admitUnpaid,
	}
}

func (s *ValidationServiceImpl) Validate(ctx context.Context, token string) (int, error) {
	id, err := model.ParseTicketToken(token)
	if err != nil {
		return 0, err
	}

	if err := s.repository.Redeem(ctx, id, !s.admitUnpaid); err != nil {
		return id, err
	}

	return id, nil
}

func (s *ValidationServiceImpl) Lookup(ctx context.Context, token string) (*model.TicketLookup, error) {
	id, err := model.ParseTicketToken(token)
	if err != nil {
		return nil, err
	}

	booking, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rideName := ""
	if ride, err := s.rideRepository.FindByID(ctx, booking.RideID); err == nil {
		rideName = ride.Name
	}

	return &model.TicketLookup{
		ID:     booking.ID,
		Ride:   rideName,
		Status: booking.Status,
	}, nil
}
