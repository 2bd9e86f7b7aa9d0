package ports

import (
	"context"

	"deliveryledger/internal/core/domain/model/kernel"
)

// ReceiverNotifier is the advisory notification channel for receivers. The
// channel is best-effort: a failed notification never fails the operation that
// attempted it, it only leaves the package in Pending status.
type ReceiverNotifier interface {
	// NotifyArrival tells the receiver their package has arrived for
	// collection. Returns nil only when the channel confirmed delivery.
	NotifyArrival(ctx context.Context, trackingRef kernel.TrackingRef, receiverEmail string) error
}
