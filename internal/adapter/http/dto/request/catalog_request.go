package request

import (
	"cnc_quote/internal/domain/entities"
)

// Catalog admin payloads. Updates reuse the create shape; the id comes from
// the path so it is never part of the body.

type MaterialRequest struct {
	Name                string  `json:"name" binding:"required"`
	DensityKgM3         float64 `json:"density_kg_m3" binding:"required"`
	CostPerKg           float64 `json:"cost_per_kg" binding:"required"`
	MachinabilityFactor float64 `json:"machinability_factor" binding:"required"`
}

func (r MaterialRequest) ToEntity(id string) entities.Material {
	return entities.Material{
		ID:                  id,
		Name:                r.Name,
		DensityKgM3:         r.DensityKgM3,
		CostPerKg:           r.CostPerKg,
		MachinabilityFactor: r.MachinabilityFactor,
		Active:              true,
	}
}

type FinishRequest struct {
	Name         string  `json:"name" binding:"required"`
	CostPerM2    float64 `json:"cost_per_m2" binding:"required"`
	SetupFee     float64 `json:"setup_fee"`
	LeadTimeDays int     `json:"lead_time_days"`
}

func (r FinishRequest) ToEntity(id string) entities.Finish {
	return entities.Finish{
		ID:           id,
		Name:         r.Name,
		CostPerM2:    r.CostPerM2,
		SetupFee:     r.SetupFee,
		LeadTimeDays: r.LeadTimeDays,
		Active:       true,
	}
}

type ToleranceRequest struct {
	Name           string  `json:"name" binding:"required"`
	MinMM          float64 `json:"min_mm"`
	MaxMM          float64 `json:"max_mm" binding:"required"`
	CostMultiplier float64 `json:"cost_multiplier" binding:"required"`
}

func (r ToleranceRequest) ToEntity(id string) entities.Tolerance {
	return entities.Tolerance{
		ID:             id,
		Name:           r.Name,
		MinMM:          r.MinMM,
		MaxMM:          r.MaxMM,
		CostMultiplier: r.CostMultiplier,
		Active:         true,
	}
}

type RateCardRequest struct {
	Region          string             `json:"region" binding:"required"`
	Currency        string             `json:"currency" binding:"required"`
	RatesPerMinute  map[string]float64 `json:"rates_per_minute" binding:"required"`
	MachineSetupFee float64            `json:"machine_setup_fee"`
	TaxRate         float64            `json:"tax_rate"`
	ShippingFlat    float64            `json:"shipping_flat"`
}

func (r RateCardRequest) ToEntity() entities.RateCard {
	rates := make(map[entities.MachineClass]float64, len(r.RatesPerMinute))
	for class, rate := range r.RatesPerMinute {
		rates[entities.MachineClass(class)] = rate
	}
	return entities.RateCard{
		Region:          r.Region,
		Currency:        r.Currency,
		RatesPerMinute:  rates,
		MachineSetupFee: r.MachineSetupFee,
		TaxRate:         r.TaxRate,
		ShippingFlat:    r.ShippingFlat,
		Active:          true,
	}
}
