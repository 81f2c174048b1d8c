package payment

import "context"

// Gateway creates payment orders with the external payment provider. The
// amount is in the smallest currency unit. The returned handle maps back to
// a durable booking record via referenceID. Implementations fail soft: the
// booking engine absorbs any error and substitutes a placeholder handle.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, referenceID string) (string, error)
}
