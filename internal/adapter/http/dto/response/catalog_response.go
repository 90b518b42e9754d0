package response

import (
	"time"

	"cnc_quote/internal/domain/entities"
)

type MaterialResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	DensityKgM3         float64   `json:"density_kg_m3"`
	CostPerKg           float64   `json:"cost_per_kg"`
	MachinabilityFactor float64   `json:"machinability_factor"`
	Active              bool      `json:"active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:                  m.ID,
		Name:                m.Name,
		DensityKgM3:         m.DensityKgM3,
		CostPerKg:           m.CostPerKg,
		MachinabilityFactor: m.MachinabilityFactor,
		Active:              m.Active,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func FromMaterials(ms []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMaterial(m))
	}
	return out
}

type FinishResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CostPerM2    float64   `json:"cost_per_m2"`
	SetupFee     float64   `json:"setup_fee"`
	LeadTimeDays int       `json:"lead_time_days"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromFinish(f entities.Finish) FinishResponse {
	return FinishResponse{
		ID:           f.ID,
		Name:         f.Name,
		CostPerM2:    f.CostPerM2,
		SetupFee:     f.SetupFee,
		LeadTimeDays: f.LeadTimeDays,
		Active:       f.Active,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func FromFinishes(fs []entities.Finish) []FinishResponse {
	out := make([]FinishResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, FromFinish(f))
	}
	return out
}

type ToleranceResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	MinMM          float64   `json:"min_mm"`
	MaxMM          float64   `json:"max_mm"`
	CostMultiplier float64   `json:"cost_multiplier"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromTolerance(t entities.Tolerance) ToleranceResponse {
	return ToleranceResponse{
		ID:             t.ID,
		Name:           t.Name,
		MinMM:          t.MinMM,
		MaxMM:          t.MaxMM,
		CostMultiplier: t.CostMultiplier,
		Active:         t.Active,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func FromTolerances(ts []entities.Tolerance) []ToleranceResponse {
	out := make([]ToleranceResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTolerance(t))
	}
	return out
}

type RateCardResponse struct {
	ID              string             `json:"id"`
	Region          string             `json:"region"`
	Currency        string             `json:"currency"`
	RatesPerMinute  map[string]float64 `json:"rates_per_minute"`
	MachineSetupFee float64            `json:"machine_setup_fee"`
	TaxRate         float64            `json:"tax_rate"`
	ShippingFlat    float64            `json:"shipping_flat"`
	Active          bool               `json:"active"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromRateCard(rc entities.RateCard) RateCardResponse {
	rates := make(map[string]float64, len(rc.RatesPerMinute))
	for class, rate := range rc.RatesPerMinute {
		rates[string(class)] = rate
	}
	return RateCardResponse{
		ID:              rc.ID,
		Region:          rc.Region,
		Currency:        rc.Currency,
		RatesPerMinute:  rates,
		MachineSetupFee: rc.MachineSetupFee,
		TaxRate:         rc.TaxRate,
		ShippingFlat:    rc.ShippingFlat,
		Active:          rc.Active,
		CreatedAt:       rc.CreatedAt,
		UpdatedAt:       rc.UpdatedAt,
	}
}

func FromRateCards(rcs []entities.RateCard) []RateCardResponse {
	out := make([]RateCardResponse, 0, len(rcs))
	for _, rc := range rcs {
		out = append(out, FromRateCard(rc))
	}
	return out
}
