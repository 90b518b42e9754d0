package response

import (
	"time"

	"cnc_quote/internal/domain/entities"
)

type QuotePaymentResponse struct {
	ID       string    `json:"id"`
	QuoteID  string    `json:"quote_id"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Date:               p.Date,
		Status:             string(p.Status),
		Amount:             p.Amount,
		Currency:           p.Currency,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
