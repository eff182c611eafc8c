package handler

import (
	"errors"
	"fmt"
	"net/http"

	"mela-ticketing/internal/service"
	apperrors "mela-ticketing/pkg/app_errors"
	"mela-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ValidationHandler struct {
	service service.ValidationService
}

func NewValidationHandler(service service.ValidationService) *ValidationHandler {
	return &ValidationHandler{service: service}
}

func (h *ValidationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		// 外部掃描器用的唯讀查詢
		router.GET("bookings/lookup", h.Lookup)
	}
}

func (h *ValidationHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("validate", h.Validate)
}

// ValidateRequest 驗票請求；token 可為完整 QR 內容或純數字 id
type ValidateRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *ValidationHandler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	id, err := h.service.Validate(c, req.Token)
	if err != nil {
		h.handleError(c, err, id, "Validate")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":     "validated",
		"booking_id": id,
		"message":    fmt.Sprintf("Ticket #%d validated successfully", id),
	})
}

func (h *ValidationHandler) Lookup(c *gin.Context) {
	payload := c.Query("payload")
	if payload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no payload"})
		return
	}

	lookup, err := h.service.Lookup(c, payload)
	if err != nil {
		h.handleError(c, err, 0, "Lookup")
		return
	}

	c.JSON(http.StatusOK, lookup)
}

func (h *ValidationHandler) handleError(c *gin.Context, err error, bookingID int, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidToken):
		log.Warn("Invalid token")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid QR or ID"})
	case errors.Is(err, apperrors.ErrBookingNotFound):
		log.Warn("Booking not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, apperrors.ErrAlreadyUsed):
		log.Warn("Ticket already used", zap.Int("booking_id", bookingID))
		c.JSON(http.StatusConflict, gin.H{
			"result":     "already_used",
			"booking_id": bookingID,
			"error":      fmt.Sprintf("Ticket #%d already used!", bookingID),
		})
	case errors.Is(err, apperrors.ErrPaymentRequired):
		log.Warn("Ticket not paid", zap.Int("booking_id", bookingID))
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Ticket not paid"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
