// Package payments wraps the hosted-checkout provider behind a narrow
// contract: given priced line items and redirect URLs it returns a session,
// and a later webhook (the source of truth for payment success) is verified
// and decoded here.
package payments

import "context"

type LineItem struct {
	Name       string
	UnitAmount float64 // dollars; converted to cents at the provider boundary
	Quantity   int64
}

type Session struct {
	ID  string
	URL string
}

// WebhookEvent is the decoded, signature-verified webhook payload.
type WebhookEvent struct {
	Type      string
	SessionID string
	Metadata  map[string]string
}

// EventCheckoutCompleted is the only event type the core acts on.
const EventCheckoutCompleted = "checkout.session.completed"

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, items []LineItem, successURL, cancelURL string, metadata map[string]string) (*Session, error)
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
