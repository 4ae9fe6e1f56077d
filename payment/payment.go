// Package payment wraps the hosted payment provider behind a small
// interface so handlers can be tested against a fake and no global client
// instance is shared across requests.
package payment

import (
	"context"
	"fmt"
)

// Session statuses as reported by the provider.
const StatusPaid = "paid"

// LineItem mirrors one validated cart entry. UnitAmount is in minor
// currency units. ImageURL must already be absolute and valid, or empty.
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
	ImageURL   string
}

// CheckoutParams describes one hosted checkout session to be created.
type CheckoutParams struct {
	LineItems     []LineItem
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// Session is the provider-side view of one payment attempt.
type Session struct {
	ID              string
	URL             string
	PaymentIntentID string
	PaymentStatus   string
}

type Provider interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*Session, error)
}

// ProviderError carries the provider-supplied error type and message so the
// handler can surface them verbatim. It is never retried.
type ProviderError struct {
	Type    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider error (%s): %s", e.Type, e.Message)
}
