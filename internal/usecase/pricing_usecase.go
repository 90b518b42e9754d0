package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"cnc_quote/internal/domain/entities"
	"cnc_quote/internal/infrastructure/metrics"
	"cnc_quote/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnpriceable is the single caller-facing failure of the pricing
	// engine. Missing geometry, inactive or missing catalog rows and absent
	// rate cards all collapse into it; the specific cause is only logged.
	ErrUnpriceable = errors.New("could not price quote")

	ErrInvalidQuoteInput = errors.New("invalid quote input")
)

// Machining time heuristic: a fixed setup allowance plus a term growing with
// the cube root of removed volume, scaled by the material's machinability.
// This is a proxy for machining complexity, not a tool-path simulation.
const (
	baseSetupTimeMin   = 15.0
	machiningTimeScale = 4.0

	maxQuantityDiscount = 0.20
)

// InstantQuoteInput selects everything the engine needs to price one part.
type InstantQuoteInput struct {
	PartID       string
	MaterialID   string
	FinishID     string
	ToleranceID  string
	MachineClass entities.MachineClass
	Quantity     int
	Region       string
}

// IPricingUseCase exposes the instant pricing engine.
//
// CalculateInstantQuote is a pure function of its input and the current
// catalog snapshot: no writes, safe to call concurrently, identical output
// for identical input while the catalog is unchanged.

type IPricingUseCase interface {
	CalculateInstantQuote(ctx context.Context, in InstantQuoteInput) (entities.QuoteLineItem, error)
}

type PricingUseCase struct {
	parts      interfaces.IPartRepository
	materials  interfaces.IMaterialRepository
	finishes   interfaces.IFinishRepository
	tolerances interfaces.IToleranceRepository
	rateCards  interfaces.IRateCardRepository
	logger     *zap.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(
	parts interfaces.IPartRepository,
	materials interfaces.IMaterialRepository,
	finishes interfaces.IFinishRepository,
	tolerances interfaces.IToleranceRepository,
	rateCards interfaces.IRateCardRepository,
	logger *zap.Logger,
) *PricingUseCase {
	return &PricingUseCase{
		parts:      parts,
		materials:  materials,
		finishes:   finishes,
		tolerances: tolerances,
		rateCards:  rateCards,
		logger:     logger,
	}
}

func (u *PricingUseCase) CalculateInstantQuote(ctx context.Context, in InstantQuoteInput) (entities.QuoteLineItem, error) {
	start := time.Now()

	if err := validateInput(&in); err != nil {
		metrics.ObservePricing(metrics.OutcomeError, start)
		return entities.QuoteLineItem{}, err
	}

	// The five reads are independent; fetch them jointly.
	var (
		part      entities.Part
		material  entities.Material
		finish    entities.Finish
		tolerance entities.Tolerance
		rateCard  entities.RateCard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		part, err = u.parts.GetByID(gctx, in.PartID)
		return err
	})
	g.Go(func() (err error) {
		material, err = u.materials.GetByID(gctx, in.MaterialID)
		return err
	})
	g.Go(func() (err error) {
		finish, err = u.finishes.GetByID(gctx, in.FinishID)
		return err
	})
	g.Go(func() (err error) {
		tolerance, err = u.tolerances.GetByID(gctx, in.ToleranceID)
		return err
	})
	g.Go(func() (err error) {
		rateCard, err = u.rateCards.GetActiveByRegion(gctx, in.Region)
		return err
	})
	if err := g.Wait(); err != nil {
		metrics.ObservePricing(metrics.OutcomeError, start)
		return entities.QuoteLineItem{}, err
	}

	if cause := unpriceableCause(in, part, material, finish, tolerance, rateCard); cause != "" {
		u.logger.Warn("quote unpriceable",
			zap.String("cause", cause),
			zap.String("part_id", in.PartID),
			zap.String("material_id", in.MaterialID),
			zap.String("finish_id", in.FinishID),
			zap.String("tolerance_id", in.ToleranceID),
			zap.String("machine_class", string(in.MachineClass)),
			zap.String("region", in.Region))
		metrics.ObservePricing(metrics.OutcomeUnpriceable, start)
		return entities.QuoteLineItem{}, ErrUnpriceable
	}

	qty := float64(in.Quantity)
	ratePerMinute, _ := rateCard.RatePerMinute(in.MachineClass)

	// 1. Material: mass from volume (mm³ -> m³) and density.
	massKg := part.VolumeMM3 / 1e9 * material.DensityKgM3
	materialRaw := massKg * material.CostPerKg
	materialTotal := materialRaw * qty

	// 2. Machining: heuristic time estimate, then machine rate plus setup.
	timeMin := (baseSetupTimeMin + math.Cbrt(part.VolumeMM3)/machiningTimeScale) * material.MachinabilityFactor
	machiningRaw := timeMin*ratePerMinute + rateCard.MachineSetupFee
	machiningTotal := machiningRaw * qty

	// 3. Finish: surface area (mm² -> m²) at the finish rate plus setup.
	finishRaw := part.SurfaceAreaMM2/1e6*finish.CostPerM2 + finish.SetupFee
	finishTotal := finishRaw * qty

	// 4-5. Subtotal, then the saturating quantity discount.
	subtotal := materialTotal + machiningTotal + finishTotal
	discountRate := round4(math.Min(maxQuantityDiscount, 1-1/math.Sqrt(qty)))
	discountAmount := subtotal * discountRate
	afterDiscount := subtotal - discountAmount

	// 6. Tolerance premium on the discounted subtotal.
	finalSubtotal := afterDiscount * tolerance.CostMultiplier

	// 7-8. Tax, flat shipping, then the customer-facing pair. The quoted
	// total is the rounded unit price times quantity, so unit and total stay
	// consistent at any quantity instead of drifting by a half cent per unit.
	tax := finalSubtotal * rateCard.TaxRate
	totalPrice := finalSubtotal + tax + rateCard.ShippingFlat
	unitPrice := round2(totalPrice / qty)
	lineTotal := round2(unitPrice * qty)

	breakdown := entities.PricingBreakdown{
		MaterialMassKg:         massKg,
		MaterialCostRaw:        round2(materialRaw),
		MaterialCostTotal:      round2(materialTotal),
		MachiningTimeMin:       timeMin,
		MachiningCostRaw:       round2(machiningRaw),
		MachiningCostTotal:     round2(machiningTotal),
		FinishCostRaw:          round2(finishRaw),
		FinishCostTotal:        round2(finishTotal),
		SubtotalBeforeDiscount: round2(subtotal),
		DiscountRate:           discountRate,
		DiscountAmount:         round2(discountAmount),
		SubtotalAfterDiscount:  round2(afterDiscount),
		ToleranceMultiplier:    tolerance.CostMultiplier,
		FinalSubtotal:          round2(finalSubtotal),
		Tax:                    round2(tax),
		Shipping:               round2(rateCard.ShippingFlat),
		TotalPrice:             lineTotal,
		Currency:               rateCard.Currency,
	}

	metrics.ObservePricing(metrics.OutcomePriced, start)
	return entities.QuoteLineItem{
		PartID:       in.PartID,
		MaterialID:   in.MaterialID,
		FinishID:     in.FinishID,
		ToleranceID:  in.ToleranceID,
		MachineClass: in.MachineClass,
		Quantity:     in.Quantity,
		Region:       in.Region,
		UnitPrice:    unitPrice,
		LineTotal:    lineTotal,
		Currency:     rateCard.Currency,
		Breakdown:    breakdown,
	}, nil
}

func validateInput(in *InstantQuoteInput) error {
	in.PartID = strings.TrimSpace(in.PartID)
	in.MaterialID = strings.TrimSpace(in.MaterialID)
	in.FinishID = strings.TrimSpace(in.FinishID)
	in.ToleranceID = strings.TrimSpace(in.ToleranceID)
	in.Region = strings.TrimSpace(in.Region)

	if in.PartID == "" || in.MaterialID == "" || in.FinishID == "" || in.ToleranceID == "" {
		return ErrInvalidQuoteInput
	}
	if in.Quantity < 1 {
		return ErrInvalidQuoteInput
	}
	if !entities.KnownMachineClass(in.MachineClass) {
		return ErrInvalidQuoteInput
	}
	if in.Region == "" {
		in.Region = entities.DefaultRegion
	}
	return nil
}

// unpriceableCause names the first dependency that rules pricing out, or ""
// when every input resolves.
func unpriceableCause(in InstantQuoteInput, part entities.Part, material entities.Material, finish entities.Finish, tolerance entities.Tolerance, rateCard entities.RateCard) string {
	switch {
	case part.ID == "":
		return "part not found"
	case !part.HasGeometry():
		return "part missing geometry"
	case material.ID == "" || !material.Active:
		return "material missing or inactive"
	case finish.ID == "" || !finish.Active:
		return "finish missing or inactive"
	case tolerance.ID == "" || !tolerance.Active:
		return "tolerance missing or inactive"
	case rateCard.Region == "":
		return "no active rate card for region"
	}
	if _, ok := rateCard.RatePerMinute(in.MachineClass); !ok {
		return "rate card has no rate for machine class"
	}
	return ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
