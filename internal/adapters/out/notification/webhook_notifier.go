// Package notification implements the advisory receiver-notification port.
// The channel is best-effort: callers treat a failed notification as "package
// stays Pending", never as an operation failure.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
)

// WebhookNotifier delivers arrival notifications by posting to an external
// notification gateway. A 2xx response is the channel's delivery confirmation.
type WebhookNotifier struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewWebhookNotifier creates a notifier posting to the given gateway endpoint.
func NewWebhookNotifier(endpoint string, logger *slog.Logger) (*WebhookNotifier, error) {
	if endpoint == "" {
		return nil, errs.NewValueIsRequiredError("endpoint")
	}

	return &WebhookNotifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}, nil
}

type arrivalPayload struct {
	TrackingRef   string `json:"trackingRef"`
	ReceiverEmail string `json:"receiverEmail"`
}

// NotifyArrival posts the arrival notice to the gateway. Returns nil only when
// the gateway confirmed delivery with a 2xx status.
func (n *WebhookNotifier) NotifyArrival(ctx context.Context, trackingRef kernel.TrackingRef, receiverEmail string) error {
	body, err := json.Marshal(arrivalPayload{
		TrackingRef:   trackingRef.String(),
		ReceiverEmail: receiverEmail,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("arrival notification failed",
			"trackingRef", trackingRef.String(), "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		n.logger.Warn("arrival notification rejected",
			"trackingRef", trackingRef.String(), "status", resp.StatusCode)
		return fmt.Errorf("notification gateway returned status %d", resp.StatusCode)
	}

	return nil
}
