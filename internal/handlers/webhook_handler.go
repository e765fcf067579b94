package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"terek_backend/internal/appErrors"
	"terek_backend/internal/gateway/ioka"
	"terek_backend/internal/logger"
	"terek_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	*BaseHandler
	paymentService services.PaymentService
	gateway        ioka.Gateway
}

func NewWebhookHandler(base *BaseHandler, paymentService services.PaymentService, gateway ioka.Gateway) *WebhookHandler {
	return &WebhookHandler{
		BaseHandler:    base,
		paymentService: paymentService,
		gateway:        gateway,
	}
}

// HandleIoka handles POST /api/webhooks/ioka. The signature covers the raw
// body, so it is read and verified before anything is decoded or mutated.
func (h *WebhookHandler) HandleIoka(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Failed to read webhook body"))
		return
	}

	signature := c.GetHeader("X-Ioka-Signature")
	if !h.gateway.VerifySignature(body, signature) {
		logger.CtxWarn(ctx, "webhook signature rejected", "ip", c.ClientIP())
		appErrors.HandleError(c, appErrors.ErrInvalidSignature)
		return
	}

	var event ioka.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid webhook payload"))
		return
	}

	if err := h.paymentService.HandleWebhook(ctx, &event); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
