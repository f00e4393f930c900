package services

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

// Notifier mirrors moderation events to a chat webhook. Delivery is
// best-effort: calls never block the request that triggered them and
// errors are swallowed, only logged locally.
type Notifier struct {
	WebhookURL string
	Enabled    bool
	client     *http.Client
}

func NewNotifier() *Notifier {
	url := os.Getenv("MODERATION_WEBHOOK_URL")
	enabled := url != ""
	if !enabled {
		log.Println("Notifier disabled: MODERATION_WEBHOOK_URL not set")
	}

	return &Notifier{
		WebhookURL: url,
		Enabled:    enabled,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify posts the message asynchronously. No-op when unconfigured.
func (n *Notifier) Notify(message string, context map[string]interface{}) {
	if !n.Enabled {
		return
	}
	go n.post(message, context)
}

func (n *Notifier) post(message string, context map[string]interface{}) {
	blocks := []map[string]interface{}{
		{
			"type": "section",
			"text": map[string]interface{}{"type": "mrkdwn", "text": "*" + message + "*"},
		},
	}
	if len(context) > 0 {
		pretty, err := json.MarshalIndent(context, "", "  ")
		if err == nil {
			blocks = append(blocks, map[string]interface{}{
				"type": "section",
				"text": map[string]interface{}{"type": "mrkdwn", "text": "```" + string(pretty) + "```"},
			})
		}
	}

	body, err := json.Marshal(map[string]interface{}{
		"text":   message,
		"blocks": blocks,
	})
	if err != nil {
		log.Printf("Failed to encode moderation webhook payload: %v", err)
		return
	}

	resp, err := n.client.Post(n.WebhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("Failed to send moderation webhook: %v", err)
		return
	}
	resp.Body.Close()
}
