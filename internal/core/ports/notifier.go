package ports

import (
	"context"

	"foodorder/internal/core/domain/model/notification"
)

// Notifier broadcasts an event to every connected staff session. Delivery is
// best effort: there is no acknowledgement, retry or persistence.
type Notifier interface {
	Notify(ctx context.Context, event notification.Event)
}
