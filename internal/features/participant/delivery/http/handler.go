package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giveaway-wheel-backend/internal/features/participant/models"
	"giveaway-wheel-backend/internal/features/participant/service"
)

type ParticipantHandler struct {
	service service.ParticipantService
}

func NewParticipantHandler(service service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		service: service,
	}
}

func (h *ParticipantHandler) RegisterRoutes(router *gin.RouterGroup, admin gin.HandlerFunc) {
	group := router.Group("")
	group.Use(admin)
	{
		group.GET("/participants", h.list)
		group.GET("/stats", h.stats)
		group.POST("/participants/clear", h.clear)
	}
}

// @Summary List current participants
// @Description Participants of the current draw, oldest first
// @Tags participants
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.ParticipantsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/participants [get]
func (h *ParticipantHandler) list(c *gin.Context) {
	participants, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.ParticipantsResponse{Participants: participants})
}

// @Summary Participant counters
// @Tags participants
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.Stats
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/stats [get]
func (h *ParticipantHandler) stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Clear current draw
// @Description Deletes every current-draw participant. History is kept.
// @Tags participants
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.ClearResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/participants/clear [post]
func (h *ParticipantHandler) clear(c *gin.Context) {
	result, err := h.service.Clear(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
