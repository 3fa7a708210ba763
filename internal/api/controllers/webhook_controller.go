package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripweaver/internal/services"
	"tripweaver/pkg/logger"
	"tripweaver/pkg/utils"
)

type WebhookController struct {
	webhookService services.WebhookServiceInterface
	token          string
}

func NewWebhookController(webhookService services.WebhookServiceInterface, token string) *WebhookController {
	return &WebhookController{
		webhookService: webhookService,
		token:          token,
	}
}

// Receive godoc
// @Summary Receive a provider webhook
// @Description Accept booking and payment lifecycle events from the hotel provider. Always acknowledges accepted events with 200.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-Webhook-Token header string true "Shared webhook token"
// @Success 200 {object} map[string]any
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /webhook [post]
func (w *WebhookController) Receive(c *gin.Context) {
	if w.token != "" && c.GetHeader("X-Webhook-Token") != w.token {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid webhook token")
		return
	}

	var event services.WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}
	if event.EventName == "" || (len(event.Response) == 0 && len(event.Request) == 0) {
		utils.RespondError(c, http.StatusBadRequest, "Webhook payload must include eventName and a response or request body")
		return
	}

	logger.Get().Info("webhook received", zap.String("event", event.EventName))
	w.webhookService.Process(c.Request.Context(), event)

	// The provider retries non-200 responses; processing errors are
	// logged, not surfaced.
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"received": true,
		"event":    event.EventName,
	})
}

// Liveness godoc
// @Summary Webhook liveness check
// @Description Lets the provider verify the webhook endpoint is reachable
// @Tags Webhook
// @Produce json
// @Success 200 {object} map[string]any
// @Router /webhook [get]
func (w *WebhookController) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
