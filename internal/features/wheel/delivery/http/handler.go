package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/features/wheel/service"
)

// SpinRequest carries the wheel's current resting angle.
type SpinRequest struct {
	From float64 `json:"from" example:"211.5"`
}

type WheelHandler struct {
	service service.WheelService
}

func NewWheelHandler(service service.WheelService) *WheelHandler {
	return &WheelHandler{
		service: service,
	}
}

func (h *WheelHandler) RegisterRoutes(router *gin.RouterGroup, admin gin.HandlerFunc) {
	router.POST("/wheel/spin", admin, h.spin)
}

// @Summary Spin the wheel
// @Description Draws a winner among current participants on the server
// @Tags wheel
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param request body SpinRequest false "Start angle"
// @Success 200 {object} service.SpinResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/wheel/spin [post]
func (h *WheelHandler) spin(c *gin.Context) {
	var req SpinRequest
	// пустое тело означает старт с 0°
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	result, err := h.service.Spin(c.Request.Context(), req.From)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
