package request

import "encoding/json"

// QuotePaymentCreateRequest carries the provider payload for paying a quote.
//
// `provider_payload` is stored as-is (raw JSON) to support varying Mercado
// Pago schemas; the amount inside it is always overridden by the quote total.

type QuotePaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
