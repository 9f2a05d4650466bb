package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/config"
	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/service/commands"
	client "github.com/1005Studio/1005ManagmentV02/pkg/clients/whatsapp"
)

const sendTimeout = 10 * time.Second

// ErrMessagingDisabled is returned when no WhatsApp credentials are configured.
var ErrMessagingDisabled = errors.New("whatsapp messaging is not configured")

// MessagingService describes the operations the HTTP layer and scheduler can perform.
type MessagingService interface {
	VerifyWebhookToken(mode, verifyToken, challenge string) (string, error)
	HandleWebhook(ctx context.Context, payload models.WebhookPayload) error
	SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error
}

// MetaWhatsAppService is the production implementation backed by WhatsApp Cloud API.
type MetaWhatsAppService struct {
	cfg        config.WhatsAppConfig
	client     client.Client
	dispatcher commands.Dispatcher
	logger     *zap.Logger
}

// NewMetaWhatsAppService wires a new service instance. client may be nil when messaging is disabled.
func NewMetaWhatsAppService(cfg config.WhatsAppConfig, client client.Client, dispatcher commands.Dispatcher, logger *zap.Logger) *MetaWhatsAppService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetaWhatsAppService{
		cfg:        cfg,
		client:     client,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// VerifyWebhookToken validates the callback verification token.
func (s *MetaWhatsAppService) VerifyWebhookToken(mode, verifyToken, challenge string) (string, error) {
	if mode == "" || verifyToken == "" {
		return "", errors.New("missing mode or verify token")
	}

	if !strings.EqualFold(mode, "subscribe") {
		return "", fmt.Errorf("unsupported hub.mode %s", mode)
	}

	if s.cfg.VerifyToken == "" || verifyToken != s.cfg.VerifyToken {
		return "", errors.New("invalid verify token")
	}

	return challenge, nil
}

// HandleWebhook answers every text message of the payload. The first failure is returned
// after all messages were attempted.
func (s *MetaWhatsAppService) HandleWebhook(ctx context.Context, payload models.WebhookPayload) error {
	texts := payload.TextMessages()
	if len(texts) == 0 {
		s.logger.Debug("webhook carried no text messages", zap.String("object", payload.Object))
		return nil
	}

	var firstErr error
	for _, msg := range texts {
		if err := s.answer(ctx, msg); err != nil {
			s.logger.Error("failed to answer chat command", zap.Error(err), zap.String("message_id", msg.MessageID))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *MetaWhatsAppService) answer(ctx context.Context, msg models.ChatText) error {
	if !s.senderAllowed(msg.From) {
		s.logger.Warn("ignoring chat command from unlisted sender", zap.String("from", msg.From))
		return nil
	}

	cmd := models.ParseCommand(msg.Body)
	s.logger.Info("parsed inbound command",
		zap.String("from", msg.From),
		zap.String("command", string(cmd.Type)),
		zap.Strings("args", cmd.Args))

	reply, err := s.dispatcher.HandleCommand(ctx, cmd, msg.From)
	switch {
	case errors.Is(err, commands.ErrUnsupportedCommand):
		reply = commands.HelpReply()
	case errors.Is(err, commands.ErrInvalidArguments):
		reply = models.ChatReply{Title: "Geçersiz komut", Message: err.Error()}
	case err != nil:
		_ = s.send(ctx, msg.From, "Rapor şu anda hazırlanamadı, lütfen tekrar deneyin.", false)
		return fmt.Errorf("dispatch %s: %w", cmd.Type, err)
	}

	return s.send(ctx, msg.From, reply.Text(), false)
}

// senderAllowed matches on digits only, so "+90 555 111 22 33" and "905551112233" are the same sender.
func (s *MetaWhatsAppService) senderAllowed(from string) bool {
	if len(s.cfg.AllowedSenders) == 0 {
		return true
	}
	want := digitsOnly(from)
	for _, allowed := range s.cfg.AllowedSenders {
		if digitsOnly(allowed) == want {
			return true
		}
	}
	return false
}

func digitsOnly(number string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, number)
}

// SendOutbound lets internal operators and the scheduler push messages.
func (s *MetaWhatsAppService) SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error {
	return s.send(ctx, req.To, req.Message, req.PreviewURL)
}

func (s *MetaWhatsAppService) send(ctx context.Context, to, body string, previewURL bool) error {
	if s.client == nil {
		return ErrMessagingDisabled
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	id, err := s.client.SendText(ctxWithTimeout, client.TextMessage{
		To:         to,
		Body:       body,
		PreviewURL: previewURL,
	})
	if err != nil {
		return err
	}
	s.logger.Debug("whatsapp message sent", zap.String("to", to), zap.String("message_id", id))
	return nil
}
