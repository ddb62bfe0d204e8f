package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giveaway-wheel-backend/internal/common/validation"
	"giveaway-wheel-backend/internal/features/broadcast/service"
)

// CustomBroadcastRequest is the body of the custom broadcast routes.
type CustomBroadcastRequest struct {
	Message  string `json:"message" binding:"required" example:"The draw starts in 10 minutes!"`
	PhotoURL string `json:"photoUrl,omitempty" example:"https://example.com/photos/1710000000000-abc.jpg"`
}

type BroadcastHandler struct {
	service service.BroadcastService
}

func NewBroadcastHandler(service service.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{
		service: service,
	}
}

func (h *BroadcastHandler) RegisterRoutes(router *gin.RouterGroup, admin gin.HandlerFunc) {
	group := router.Group("")
	group.Use(admin)
	{
		group.POST("/broadcast", h.preset)
		group.POST("/broadcast-custom", h.custom(service.TargetCurrent))
		group.POST("/broadcast-custom-all", h.custom(service.TargetHistory))
	}
}

// @Summary Broadcast preset message
// @Description Sends the configured message and photo to the current draw
// @Tags broadcast
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} service.Result
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /api/broadcast [post]
func (h *BroadcastHandler) preset(c *gin.Context) {
	result, err := h.service.Preset(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Broadcast custom message
// @Description /broadcast-custom targets the current draw, /broadcast-custom-all the full history
// @Tags broadcast
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param request body CustomBroadcastRequest true "Message and optional photo"
// @Success 200 {object} service.Result
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /api/broadcast-custom [post]
// @Router /api/broadcast-custom-all [post]
func (h *BroadcastHandler) custom(target service.Target) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CustomBroadcastRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(validation.BindingError(err))
			return
		}

		result, err := h.service.Broadcast(c.Request.Context(), service.Job{
			Target:   target,
			Message:  req.Message,
			PhotoURL: req.PhotoURL,
		})
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
