package entities

import "time"

// QuoteStatus represents the lifecycle of a customer quote.
//
// Transitions: draft -> submitted -> accepted | rejected. Payment is only
// allowed against an accepted quote.

type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusSubmitted QuoteStatus = "submitted"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
)

// PricingBreakdown itemizes how a line item price was built. Monetary fields
// are rounded to 2 decimal places; DiscountRate is kept at 4.
type PricingBreakdown struct {
	MaterialMassKg         float64 `json:"material_mass_kg"`
	MaterialCostRaw        float64 `json:"material_cost_raw"`
	MaterialCostTotal      float64 `json:"material_cost_total"`
	MachiningTimeMin       float64 `json:"machining_time_min"`
	MachiningCostRaw       float64 `json:"machining_cost_raw"`
	MachiningCostTotal     float64 `json:"machining_cost_total"`
	FinishCostRaw          float64 `json:"finish_cost_raw"`
	FinishCostTotal        float64 `json:"finish_cost_total"`
	SubtotalBeforeDiscount float64 `json:"subtotal_before_discount"`
	DiscountRate           float64 `json:"discount_rate"`
	DiscountAmount         float64 `json:"discount_amount"`
	SubtotalAfterDiscount  float64 `json:"subtotal_after_discount"`
	ToleranceMultiplier    float64 `json:"tolerance_multiplier"`
	FinalSubtotal          float64 `json:"final_subtotal"`
	Tax                    float64 `json:"tax"`
	Shipping               float64 `json:"shipping"`
	TotalPrice             float64 `json:"total_price"`
	Currency               string  `json:"currency"`
}

// QuoteLineItem is one priced part at a given quantity. Region records which
// rate card the line was actually priced against, so a reprice resolves the
// same card again.
type QuoteLineItem struct {
	PartID       string           `json:"part_id"`
	MaterialID   string           `json:"material_id"`
	FinishID     string           `json:"finish_id"`
	ToleranceID  string           `json:"tolerance_id"`
	MachineClass MachineClass     `json:"machine_class"`
	Quantity     int              `json:"quantity"`
	Region       string           `json:"region"`
	UnitPrice    float64          `json:"unit_price"`
	LineTotal    float64          `json:"line_total"`
	Currency     string           `json:"currency"`
	Breakdown    PricingBreakdown `json:"breakdown"`
}

// Quote is a persisted set of priced line items.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Line items are stored denormalized on the quote; the breakdown captured at
// pricing time is the record of how the total was computed even if catalog
// rows change later.

type Quote struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Region     string          `json:"region"`
	Currency   string          `json:"currency"`
	Status     QuoteStatus     `json:"status"`
	Total      float64         `json:"total"`
	LineItems  []QuoteLineItem `json:"line_items"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
