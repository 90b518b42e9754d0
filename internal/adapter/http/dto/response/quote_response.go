package response

import (
	"time"

	"cnc_quote/internal/domain/entities"
)

// QuoteLineItemResponse mirrors the stored line item, breakdown included, so
// a customer can see exactly how the price was built.
type QuoteLineItemResponse struct {
	PartID       string                    `json:"part_id"`
	MaterialID   string                    `json:"material_id"`
	FinishID     string                    `json:"finish_id"`
	ToleranceID  string                    `json:"tolerance_id"`
	MachineClass string                    `json:"machine_class"`
	Quantity     int                       `json:"quantity"`
	Region       string                    `json:"region"`
	UnitPrice    float64                   `json:"unit_price"`
	LineTotal    float64                   `json:"line_total"`
	Currency     string                    `json:"currency"`
	Breakdown    entities.PricingBreakdown `json:"breakdown"`
}

type QuoteResponse struct {
	ID         string                  `json:"id"`
	CustomerID string                  `json:"customer_id"`
	Region     string                  `json:"region"`
	Currency   string                  `json:"currency"`
	Status     string                  `json:"status"`
	Total      float64                 `json:"total"`
	LineItems  []QuoteLineItemResponse `json:"line_items"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

func FromQuoteLineItem(li entities.QuoteLineItem) QuoteLineItemResponse {
	return QuoteLineItemResponse{
		PartID:       li.PartID,
		MaterialID:   li.MaterialID,
		FinishID:     li.FinishID,
		ToleranceID:  li.ToleranceID,
		MachineClass: string(li.MachineClass),
		Quantity:     li.Quantity,
		Region:       li.Region,
		UnitPrice:    li.UnitPrice,
		LineTotal:    li.LineTotal,
		Currency:     li.Currency,
		Breakdown:    li.Breakdown,
	}
}

func FromQuote(q entities.Quote) QuoteResponse {
	lines := make([]QuoteLineItemResponse, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		lines = append(lines, FromQuoteLineItem(li))
	}
	return QuoteResponse{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		Region:     q.Region,
		Currency:   q.Currency,
		Status:     string(q.Status),
		Total:      q.Total,
		LineItems:  lines,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}
