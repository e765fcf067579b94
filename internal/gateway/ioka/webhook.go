package ioka

// Webhook event types the provider delivers.
const (
	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentFailed    = "payment.failed"
	EventPaymentCancelled = "payment.cancelled"
)

// WebhookEvent is the decoded webhook body. The order's external id carries
// the donation id set at order creation.
type WebhookEvent struct {
	Event string `json:"event"`
	Order *Order `json:"order"`
}

// DonationID extracts the donation reference, or "" when the payload does
// not carry one.
func (e *WebhookEvent) DonationID() string {
	if e.Order == nil {
		return ""
	}
	return e.Order.ExternalID
}
