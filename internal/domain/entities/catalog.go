package entities

import "time"

// Catalog rows are admin-managed and read by the pricing engine as current
// snapshots. Deactivated rows stay in the table for historical quotes but are
// never used for new pricing.
//
// Storage model (DynamoDB): one table per type, PK: id.

// Material is a machinable stock material.
type Material struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	DensityKgM3         float64   `json:"density_kg_m3"`
	CostPerKg           float64   `json:"cost_per_kg"`
	MachinabilityFactor float64   `json:"machinability_factor"`
	Active              bool      `json:"active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Finish is a post-machining surface treatment priced per square meter.
type Finish struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CostPerM2    float64   `json:"cost_per_m2"`
	SetupFee     float64   `json:"setup_fee"`
	LeadTimeDays int       `json:"lead_time_days"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Tolerance is a dimensional precision band. Tighter bands carry a cost
// multiplier applied to the discounted subtotal.
type Tolerance struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	MinMM          float64   `json:"min_mm"`
	MaxMM          float64   `json:"max_mm"`
	CostMultiplier float64   `json:"cost_multiplier"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
