package response

import (
	"testing"
	"time"

	"cnc_quote/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:         "q-1",
		CustomerID: "cust-1",
		Region:     "us-east",
		Currency:   "USD",
		Status:     entities.QuoteStatusSubmitted,
		Total:      261.82,
		LineItems: []entities.QuoteLineItem{
			{
				PartID:       "part-1",
				MachineClass: entities.MachineClassFiveAxis,
				Quantity:     4,
				Region:       "eu-west",
				UnitPrice:    65.46,
				LineTotal:    261.82,
				Currency:     "USD",
				Breakdown:    entities.PricingBreakdown{TotalPrice: 261.82, Currency: "USD"},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.Status != "submitted" || res.Total != 261.82 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.LineItems) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(res.LineItems))
	}
	li := res.LineItems[0]
	if li.MachineClass != "five_axis" || li.UnitPrice != 65.46 || li.Region != "eu-west" {
		t.Fatalf("unexpected line item: %+v", li)
	}
	if li.Breakdown.TotalPrice != 261.82 {
		t.Fatalf("expected breakdown carried through: %+v", li.Breakdown)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromQuotePayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.QuotePayment{
		ID:                 "pay-1",
		QuoteID:            "q-1",
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		Amount:             261.82,
		Currency:           "USD",
		ProviderPayloadRaw: []byte(`{"id":"pay-1"}`),
		ProviderPayload:    map[string]interface{}{"id": "pay-1"},
	}

	res := FromQuotePayment(p)
	if res.ID != "pay-1" || res.QuoteID != "q-1" || res.Status != "approved" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Amount != 261.82 || res.Currency != "USD" {
		t.Fatalf("unexpected amount fields: %+v", res)
	}
	if res.ProviderPayloadRaw != `{"id":"pay-1"}` {
		t.Fatalf("unexpected raw payload: %q", res.ProviderPayloadRaw)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
}
