package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mela-ticketing/internal/model"
	"mela-ticketing/internal/qr"
	"mela-ticketing/internal/service"
	apperrors "mela-ticketing/pkg/app_errors"
	"mela-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("bookings", h.CreateBooking)
		router.GET("bookings/:id", h.GetBooking)
		router.POST("payments/confirm", h.ConfirmPayment)
	}
}

// TicketResponse 票券視圖：預訂內容加上可直接嵌入頁面的 QR 圖
type TicketResponse struct {
	Booking *model.Booking `json:"booking"`
	QRImage string         `json:"qr_image,omitempty"`
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.CreateBooking(c, req)
	if err != nil {
		h.handleError(c, err, "CreateBooking")
		return
	}

	if result.PaymentPending {
		c.JSON(http.StatusCreated, result)
		return
	}

	// 未設定金流：直接出票
	qrImage, err := qr.DataURI(result.Booking.QRData)
	if err != nil {
		h.handleError(c, err, "CreateBooking")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"booking":  result.Booking,
		"qr_image": qrImage,
	})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	booking, err := h.service.GetBooking(c, id)
	if err != nil {
		h.handleError(c, err, "GetBooking")
		return
	}

	qrImage := ""
	if booking.QRData != "" {
		if qrImage, err = qr.DataURI(booking.QRData); err != nil {
			h.handleError(c, err, "GetBooking")
			return
		}
	}

	c.JSON(http.StatusOK, TicketResponse{Booking: booking, QRImage: qrImage})
}

func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	var req model.ConfirmPaymentRequest
	if err := BindForm(c, &req); err != nil {
		return
	}

	booking, err := h.service.ConfirmPayment(c, req)
	if err != nil {
		h.handleError(c, err, "ConfirmPayment")
		return
	}

	qrImage, err := qr.DataURI(booking.QRData)
	if err != nil {
		h.handleError(c, err, "ConfirmPayment")
		return
	}

	c.JSON(http.StatusOK, TicketResponse{Booking: booking, QRImage: qrImage})
}

func (h *BookingHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrRideNotFound):
		log.Warn("Ride not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found"})
	case errors.Is(err, apperrors.ErrBookingNotFound):
		log.Warn("Booking not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, apperrors.ErrAlreadyUsed):
		log.Warn("Ticket already used")
		c.JSON(http.StatusConflict, gin.H{"error": "Ticket already used"})
	case errors.Is(err, apperrors.ErrInvalidSignature):
		log.Warn("Invalid payment signature")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment signature"})
	case errors.Is(err, apperrors.ErrPaymentGateway):
		log.Error("Payment gateway error")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway error"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
