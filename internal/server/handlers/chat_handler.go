package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	service "github.com/1005Studio/1005ManagmentV02/internal/service/whatsapp"
)

// ChatHandler exposes the WhatsApp webhook and the manual send endpoint.
type ChatHandler struct {
	svc    service.MessagingService
	logger *zap.Logger
}

// NewChatHandler constructs the chat HTTP adapter.
func NewChatHandler(svc service.MessagingService, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{svc: svc, logger: logger}
}

// Verify echoes hub.challenge once the verify token matches.
func (h *ChatHandler) Verify(c *gin.Context) {
	challenge, err := h.svc.VerifyWebhookToken(
		c.Query("hub.mode"),
		c.Query("hub.verify_token"),
		c.Query("hub.challenge"),
	)
	if err != nil {
		h.logger.Warn("webhook verification rejected", zap.Error(err), zap.String("client_ip", c.ClientIP()))
		c.String(http.StatusForbidden, "verification failed")
		return
	}
	c.String(http.StatusOK, challenge)
}

// Receive answers the chat commands of a webhook delivery.
// Meta redelivers anything not acknowledged with 200, so reply failures are only logged.
func (h *ChatHandler) Receive(c *gin.Context) {
	var payload models.WebhookPayload
	if !bindJSON(c, &payload) {
		return
	}

	if err := h.svc.HandleWebhook(c.Request.Context(), payload); err != nil {
		h.logger.Error("chat commands not fully answered", zap.Error(err))
	}
	c.Status(http.StatusOK)
}

// SendMessage pushes an operator-written message to a WhatsApp number.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req models.OutboundMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.svc.SendOutbound(c.Request.Context(), req)
	switch {
	case err == nil:
		c.Status(http.StatusAccepted)
	case errors.Is(err, service.ErrMessagingDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		h.logger.Error("outbound message failed", zap.Error(err), zap.String("to", req.To))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to send message"})
	}
}
