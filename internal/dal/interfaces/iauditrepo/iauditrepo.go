package iauditrepo

import (
	"context"

	"github.com/pollosrrj/pos/internal/service/models/auditevent"
)

// IAuditRepository publishes order lifecycle events.
type IAuditRepository interface {
	LogEvents(ctx context.Context, events []auditevent.Event) error
}
