package model_test

import (
	"testing"

	"mela-ticketing/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_IsValid(t *testing.T) {
	valid := []model.BookingStatus{
		model.BookingStatusBooked,
		model.BookingStatusPaid,
		model.BookingStatusUsed,
		model.BookingStatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, model.BookingStatus("refunded").IsValid())
	assert.False(t, model.BookingStatus("").IsValid())
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, model.BookingStatusBooked.CanTransitionTo(model.BookingStatusPaid))
	assert.True(t, model.BookingStatusBooked.CanTransitionTo(model.BookingStatusUsed))
	assert.True(t, model.BookingStatusBooked.CanTransitionTo(model.BookingStatusCancelled))
	assert.True(t, model.BookingStatusPaid.CanTransitionTo(model.BookingStatusUsed))
	assert.True(t, model.BookingStatusPaid.CanTransitionTo(model.BookingStatusCancelled))

	// used 與 cancelled 為吸收態
	assert.False(t, model.BookingStatusUsed.CanTransitionTo(model.BookingStatusPaid))
	assert.False(t, model.BookingStatusUsed.CanTransitionTo(model.BookingStatusCancelled))
	assert.False(t, model.BookingStatusCancelled.CanTransitionTo(model.BookingStatusBooked))
	assert.False(t, model.BookingStatusCancelled.CanTransitionTo(model.BookingStatusUsed))

	// 不允許倒退
	assert.False(t, model.BookingStatusPaid.CanTransitionTo(model.BookingStatusBooked))
}

func TestBooking_IsRedeemed(t *testing.T) {
	b := &model.Booking{Status: model.BookingStatusPaid}
	assert.False(t, b.IsRedeemed())

	b.Status = model.BookingStatusUsed
	assert.True(t, b.IsRedeemed())
}
