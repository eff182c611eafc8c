package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"mela-ticketing/internal/model"
	"mela-ticketing/internal/service"
	apperrors "mela-ticketing/pkg/app_errors"
	"mela-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	authService    service.AuthService
	reportService  service.ReportService
	bookingService service.BookingService
}

func NewAdminHandler(
	authService service.AuthService,
	reportService service.ReportService,
	bookingService service.BookingService,
) *AdminHandler {
	return &AdminHandler{
		authService:    authService,
		reportService:  reportService,
		bookingService: bookingService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/v1/admin/login", h.Login)
}

func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("dashboard", h.Dashboard)
	rg.GET("bookings", h.ListBookings)
	rg.GET("bookings/export", h.ExportBookingsCSV)
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	token, err := h.authService.Login(c, req.Username, req.Password)
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	summary, err := h.reportService.DashboardSummary(c)
	if err != nil {
		h.handleError(c, err, "Dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c)
	if err != nil {
		h.handleError(c, err, "ListBookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *AdminHandler) ExportBookingsCSV(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c)
	if err != nil {
		h.handleError(c, err, "ExportBookingsCSV")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=bookings.csv")

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"booking_id", "ride", "name", "phone", "email", "qty", "total", "status", "created_at"})

	for _, b := range bookings {
		rideName := ""
		if b.Ride != nil {
			rideName = b.Ride.Name
		}
		_ = w.Write([]string{
			strconv.Itoa(b.ID),
			rideName,
			b.Name,
			deref(b.Phone),
			deref(b.Email),
			strconv.Itoa(b.Quantity),
			strconv.Itoa(b.TotalAmount),
			string(b.Status),
			b.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		logger.WithComponent("handler").Error("csv export failed", zap.Error(err))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *AdminHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		log.Error(fmt.Sprintf("Unexpected error in %s", operation))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
