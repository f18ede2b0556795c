package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dogusotomat/dogi-support-backend/internal/models"
)

// WebhookDispatcher posts reports as JSON to a configured endpoint, for
// deployments without an SMTP relay.
type WebhookDispatcher struct {
	url    string
	client *http.Client
}

// NewWebhookDispatcher returns nil when REPORT_WEBHOOK_URL is not set
func NewWebhookDispatcher() *WebhookDispatcher {
	url := os.Getenv("REPORT_WEBHOOK_URL")
	if url == "" {
		return nil
	}

	return &WebhookDispatcher{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendReport posts the report payload to the webhook
func (w *WebhookDispatcher) SendReport(report *models.Report) error {
	payload := map[string]interface{}{
		"type":      "support_report",
		"data":      report,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}

	resp, err := w.client.Post(w.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: webhook returned HTTP %d", ErrDispatchFailed, resp.StatusCode)
	}

	return nil
}
