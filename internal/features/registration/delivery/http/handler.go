package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	tgmodels "github.com/go-telegram/bot/models"

	"giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/features/registration/service"
)

// WebhookResponse acknowledges an inbound update.
type WebhookResponse struct {
	OK               bool  `json:"ok" example:"true"`
	IsNewParticipant *bool `json:"isNewParticipant,omitempty" example:"true"`
	UserID           int64 `json:"userId,omitempty" example:"123456789"`
}

type WebhookHandler struct {
	service service.RegistrationService
}

func NewWebhookHandler(service service.RegistrationService) *WebhookHandler {
	return &WebhookHandler{
		service: service,
	}
}

// RegisterRoutes mounts the inbound webhook. guard checks the Telegram secret header.
func (h *WebhookHandler) RegisterRoutes(router *gin.RouterGroup, guard gin.HandlerFunc) {
	router.POST("/webhook/telegram", guard, h.receive)
}

// @Summary Telegram webhook
// @Description Receives bot updates. Senders of "go" are registered for the current draw.
// @Tags webhook
// @Accept json
// @Produce json
// @Param update body object true "Telegram Update"
// @Success 200 {object} WebhookResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/webhook/telegram [post]
func (h *WebhookHandler) receive(c *gin.Context) {
	var update tgmodels.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		_ = c.Error(errors.NewValidationError("body", "invalid update payload"))
		return
	}

	result, err := h.service.Register(c.Request.Context(), &update)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !result.Handled {
		c.JSON(http.StatusOK, WebhookResponse{OK: true})
		return
	}

	isNew := result.IsNewParticipant
	c.JSON(http.StatusOK, WebhookResponse{
		OK:               true,
		IsNewParticipant: &isNew,
		UserID:           result.UserID,
	})
}
