package whatsapp

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/1005Studio/1005ManagmentV02/internal/config"
)

// MaxBodyLength is the longest text body the Cloud API accepts, in characters.
const MaxBodyLength = 4096

const truncationMarker = "\n…"

// Client sends messages through the WhatsApp Cloud API.
type Client interface {
	SendText(ctx context.Context, msg TextMessage) (string, error)
}

// TextMessage is a plain text message to a single recipient.
type TextMessage struct {
	To         string
	Body       string
	PreviewURL bool
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	http          *resty.Client
	phoneNumberID string
}

// NewClient builds a Cloud API client. Rate-limited and server-side failures are retried twice.
func NewClient(cfg config.WhatsAppConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	httpClient := resty.New().
		SetBaseURL(fmt.Sprintf("%s/%s", base, cfg.APIVersion)).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil || resp == nil {
				return false
			}
			return resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= http.StatusInternalServerError
		})

	return &APIClient{http: httpClient, phoneNumberID: cfg.PhoneNumberID}
}

type outgoingText struct {
	MessagingProduct string   `json:"messaging_product"`
	RecipientType    string   `json:"recipient_type"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

type errorResponse struct {
	Error struct {
		Message   string `json:"message"`
		Code      int    `json:"code"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}

// APIError is a failure reported by the Cloud API.
type APIError struct {
	Status  int
	Code    int
	Message string
	TraceID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp api error: status=%d code=%d message=%s", e.Status, e.Code, e.Message)
}

// SendText delivers msg and returns the message ID assigned by WhatsApp.
// Bodies longer than MaxBodyLength are cut.
func (c *APIClient) SendText(ctx context.Context, msg TextMessage) (string, error) {
	payload := outgoingText{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               msg.To,
		Type:             "text",
		Text:             textBody{Body: Truncate(msg.Body), PreviewURL: msg.PreviewURL},
	}

	var (
		result  sendResponse
		failure errorResponse
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		SetError(&failure).
		Post(c.phoneNumberID + "/messages")
	if err != nil {
		return "", fmt.Errorf("send whatsapp message: %w", err)
	}

	if resp.IsError() {
		return "", &APIError{
			Status:  resp.StatusCode(),
			Code:    failure.Error.Code,
			Message: failure.Error.Message,
			TraceID: failure.Error.FBTraceID,
		}
	}

	if len(result.Messages) == 0 {
		return "", nil
	}
	return result.Messages[0].ID, nil
}

// Truncate shortens body to MaxBodyLength characters, marking the cut.
func Truncate(body string) string {
	if utf8.RuneCountInString(body) <= MaxBodyLength {
		return body
	}
	keep := MaxBodyLength - utf8.RuneCountInString(truncationMarker)
	return string([]rune(body)[:keep]) + truncationMarker
}
