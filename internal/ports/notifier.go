//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import "context"

//counterfeiter:generate -o ../mocks/notifier.go . Notifier

// Notifier delivers user-facing notifications. Delivery is at-least-once,
// the idempotency key lets the downstream service de-duplicate.
type Notifier interface {
	Notify(ctx context.Context, idempotencyKey, referenceID, message string) error
}
