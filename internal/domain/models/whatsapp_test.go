package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookBody = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "WABA",
    "changes": [{
      "field": "messages",
      "value": {
        "messaging_product": "whatsapp",
        "contacts": [{"wa_id": "905551112233", "profile": {"name": "Ece"}}],
        "messages": [
          {"id": "wamid.1", "from": "905551112233", "type": "text", "text": {"body": "rapor"}},
          {"id": "wamid.2", "from": "905551112233", "type": "image"},
          {"id": "wamid.3", "from": "905551112233", "type": "text", "text": {"body": "   "}},
          {"id": "wamid.4", "from": "905559998877", "type": "text", "text": {"body": "hafta 2024-03-04"}}
        ],
        "statuses": [{"id": "wamid.0", "status": "read"}]
      }
    }]
  }]
}`

func TestWebhookPayloadTextMessages(t *testing.T) {
	var payload WebhookPayload
	require.NoError(t, json.Unmarshal([]byte(webhookBody), &payload))

	assert.Equal(t, []ChatText{
		{MessageID: "wamid.1", From: "905551112233", Body: "rapor"},
		{MessageID: "wamid.4", From: "905559998877", Body: "hafta 2024-03-04"},
	}, payload.TextMessages())
}

func TestWebhookPayloadStatusOnly(t *testing.T) {
	var payload WebhookPayload
	require.NoError(t, json.Unmarshal([]byte(`{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"statuses":[{"id":"x"}]}}]}]}`), &payload))
	assert.Empty(t, payload.TextMessages())
}
