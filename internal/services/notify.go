package services

import "context"

// Notifier delivers out-of-band member notifications (email today). Delivery
// is best-effort: failures are logged by the implementation and never affect
// the ledger transaction that triggered them.
type Notifier interface {
	Notify(ctx context.Context, memberID string, subject string, message string)
}

// NoopNotifier is used when no mail transport is configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, memberID string, subject string, message string) {}
