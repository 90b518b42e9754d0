package entities

import "time"

// MachineClass identifies which machine group runs the job. The class is a
// required pricing input; there is no implicit fallback between classes.
type MachineClass string

const (
	MachineClassThreeAxis MachineClass = "three_axis"
	MachineClassFiveAxis  MachineClass = "five_axis"
	MachineClassTurning   MachineClass = "turning"
)

// KnownMachineClass reports whether c names a machine group the shop operates.
func KnownMachineClass(c MachineClass) bool {
	switch c {
	case MachineClassThreeAxis, MachineClassFiveAxis, MachineClassTurning:
		return true
	}
	return false
}

// DefaultRegion is used when a quote request does not name a region.
const DefaultRegion = "default"

// RateCard converts machining time and subtotal into money for one region.
//
// Storage model (DynamoDB):
//   - PK: region (one active card per region)
//
// Currency is part of the card: every monetary output of a quote priced
// against this card is denominated in it.

type RateCard struct {
	ID              string                   `json:"id"`
	Region          string                   `json:"region"`
	Currency        string                   `json:"currency"`
	RatesPerMinute  map[MachineClass]float64 `json:"rates_per_minute"`
	MachineSetupFee float64                  `json:"machine_setup_fee"`
	TaxRate         float64                  `json:"tax_rate"`
	ShippingFlat    float64                  `json:"shipping_flat"`
	Active          bool                     `json:"active"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// RatePerMinute returns the machine rate for class, and whether the card
// defines a positive rate for it.
func (rc RateCard) RatePerMinute(class MachineClass) (float64, bool) {
	rate, ok := rc.RatesPerMinute[class]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}
