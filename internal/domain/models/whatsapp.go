package models

import "strings"

// WebhookPayload is the body Meta posts for whatsapp_business_account events.
// Only the fields needed to answer chat commands are decoded.
type WebhookPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		ID      string `json:"id"`
		Changes []struct {
			Field string       `json:"field"`
			Value WebhookValue `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// WebhookValue holds the user messages of one change notification.
// Delivery receipts arrive in the same envelope and are ignored.
type WebhookValue struct {
	Contacts []struct {
		WaID    string `json:"wa_id"`
		Profile struct {
			Name string `json:"name"`
		} `json:"profile"`
	} `json:"contacts"`
	Messages []InboundMessage `json:"messages"`
}

// InboundMessage is one message received from a user.
type InboundMessage struct {
	ID   string `json:"id"`
	From string `json:"from"`
	Type string `json:"type"`
	Text *struct {
		Body string `json:"body"`
	} `json:"text,omitempty"`
}

// ChatText is a non-empty text message ready for command parsing.
type ChatText struct {
	MessageID string
	From      string
	Body      string
}

// TextMessages flattens the payload into its text messages, in delivery order.
// Media, reactions and blank bodies are skipped.
func (p WebhookPayload) TextMessages() []ChatText {
	var out []ChatText
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Text == nil || strings.TrimSpace(msg.Text.Body) == "" {
					continue
				}
				out = append(out, ChatText{MessageID: msg.ID, From: msg.From, Body: msg.Text.Body})
			}
		}
	}
	return out
}
