// Package notifier delivers composed notifications to the external
// notification gateway over HTTP. Delivery is best effort: the dispatch job
// retries failed envelopes on the next cycle, so this client only reports
// errors and never retries on its own.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"remont/internal/core/ports"
)

// notificationPayload is the wire format of the gateway's send endpoint.
type notificationPayload struct {
	NotificationID string  `json:"notificationId"`
	OrderID        string  `json:"orderId"`
	Role           string  `json:"role"`
	RecipientID    *string `json:"recipientId,omitempty"`
	Message        string  `json:"message"`
}

// HTTPNotificationClient implements NotificationClient against the
// notification gateway's REST API.
type HTTPNotificationClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPNotificationClient creates a client for the given gateway base URL.
func NewHTTPNotificationClient(baseURL string) *HTTPNotificationClient {
	return &HTTPNotificationClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send delivers a single envelope. A non-2xx response is an error so the
// dispatch job keeps the envelope pending.
func (c *HTTPNotificationClient) Send(ctx context.Context, envelope ports.NotificationEnvelope) error {
	payload := notificationPayload{
		NotificationID: envelope.ID.String(),
		OrderID:        envelope.OrderID.String(),
		Role:           envelope.Role.String(),
		Message:        envelope.Message,
	}
	if envelope.RecipientID != nil {
		recipient := envelope.RecipientID.String()
		payload.RecipientID = &recipient
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/notifications", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call notification gateway: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notification gateway returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
