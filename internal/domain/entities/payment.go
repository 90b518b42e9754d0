package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// QuotePayment is a payment taken against an accepted quote.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (quote_id-index): quote_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original provider response (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type QuotePayment struct {
	ID       string        `json:"id"`
	QuoteID  string        `json:"quote_id"`
	Date     time.Time     `json:"date"`
	Status   PaymentStatus `json:"status"`
	Amount   float64       `json:"amount"`
	Currency string        `json:"currency"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
