package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giveaway-wheel-backend/internal/common/validation"
	"giveaway-wheel-backend/internal/features/webhook/service"
)

// SetupRequest is the body of POST /telegram/setup-webhook.
type SetupRequest struct {
	WebhookURL string `json:"webhookUrl" binding:"required" example:"https://giveaway.example.com/api/webhook/telegram"`
}

type SetupHandler struct {
	service service.WebhookService
}

func NewSetupHandler(service service.WebhookService) *SetupHandler {
	return &SetupHandler{
		service: service,
	}
}

func (h *SetupHandler) RegisterRoutes(router *gin.RouterGroup, admin gin.HandlerFunc) {
	telegram := router.Group("/telegram")
	telegram.Use(admin)
	{
		telegram.GET("/setup-webhook", h.info)
		telegram.POST("/setup-webhook", h.setup)
	}
}

// @Summary Get webhook info
// @Tags telegram
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} service.InfoResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /api/telegram/setup-webhook [get]
func (h *SetupHandler) info(c *gin.Context) {
	info, err := h.service.Info(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// @Summary Set webhook
// @Description Points the bot webhook to webhookUrl
// @Tags telegram
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param request body SetupRequest true "Webhook URL"
// @Success 200 {object} service.SetupResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /api/telegram/setup-webhook [post]
func (h *SetupHandler) setup(c *gin.Context) {
	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(validation.BindingError(err))
		return
	}

	result, err := h.service.Setup(c.Request.Context(), req.WebhookURL)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
