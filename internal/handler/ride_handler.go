package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mela-ticketing/internal/model"
	"mela-ticketing/internal/service"
	apperrors "mela-ticketing/pkg/app_errors"
	"mela-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RideHandler struct {
	service service.RideService
}

func NewRideHandler(service service.RideService) *RideHandler {
	return &RideHandler{service: service}
}

func (h *RideHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("rides", h.List)
		router.GET("rides/:id", h.GetByID)
	}
}

// RegisterAdminRoutes 綁在帶 JWT 驗證的 admin group 底下
func (h *RideHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("rides", h.Create)
	rg.PUT("rides/:id", h.Update)
	rg.DELETE("rides/:id", h.Delete)
}

// CreateRideRequest 建立設施請求
type CreateRideRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       int     `json:"price" binding:"required,min=0"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Capacity    int     `json:"capacity"`
}

// UpdateRideRequest 更新設施請求
type UpdateRideRequest struct {
	Name        *string `json:"name"`
	Price       *int    `json:"price"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Capacity    *int    `json:"capacity"`
}

func (h *RideHandler) List(c *gin.Context) {
	rides, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, rides)
}

func (h *RideHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ride id"})
		return
	}
	ride, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, ride)
}

func (h *RideHandler) Create(c *gin.Context) {
	var req CreateRideRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	ride := &model.Ride{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Capacity:    req.Capacity,
	}
	created, err := h.service.Create(c, ride)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RideHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ride id"})
		return
	}
	var req UpdateRideRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.UpdateRideParams{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Capacity:    req.Capacity,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RideHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ride id"})
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RideHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrRideNotFound):
		log.Warn("Ride not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
