// Package notifications forwards accepted contact submissions to a webhook.
package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/danishanwar/portfolio/internal/contact"
)

// Payload is the JSON body posted to the webhook.
type Payload struct {
	Event      string    `json:"event"`
	ReceivedAt time.Time `json:"received_at"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	RemoteAddr string    `json:"remote_addr,omitempty"`
}

// EventContact identifies contact form payloads.
const EventContact = "contact.submitted"

// Dispatcher delivers submissions to a webhook subscriber. Delivery failures
// are logged and never fail the submission itself.
type Dispatcher struct {
	url    string
	client *http.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewDispatcher creates a Dispatcher posting to url.
func NewDispatcher(url string, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

// Record implements contact.Recorder.
func (d *Dispatcher) Record(ctx context.Context, s contact.Submission) error {
	payload, err := json.Marshal(Payload{
		Event:      EventContact,
		ReceivedAt: d.now().UTC(),
		Name:       s.Name,
		Email:      s.Email,
		Message:    s.Message,
		RemoteAddr: contact.RemoteAddr(ctx),
	})
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	if err := d.SendWebhook(ctx, payload); err != nil {
		d.logger.Warn("contact webhook delivery failed", zap.String("url", d.url), zap.Error(err))
	}
	return nil
}

// SendWebhook POSTs payload to the configured URL.
func (d *Dispatcher) SendWebhook(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
