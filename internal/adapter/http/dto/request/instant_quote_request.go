package request

import (
	"strings"

	"cnc_quote/internal/domain/entities"
	"cnc_quote/internal/usecase"
)

// InstantQuoteRequest is one pricing request line. It is used both as the
// body of the instant-quote endpoint and as a line of QuoteCreateRequest.
type InstantQuoteRequest struct {
	PartID       string `json:"part_id" binding:"required"`
	MaterialID   string `json:"material_id" binding:"required"`
	FinishID     string `json:"finish_id" binding:"required"`
	ToleranceID  string `json:"tolerance_id" binding:"required"`
	MachineClass string `json:"machine_class" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	Region       string `json:"region"`
}

// ToInput translates the payload into the pricing engine command. Field
// validation beyond shape lives in the use case.
func (r InstantQuoteRequest) ToInput() usecase.InstantQuoteInput {
	return usecase.InstantQuoteInput{
		PartID:       strings.TrimSpace(r.PartID),
		MaterialID:   strings.TrimSpace(r.MaterialID),
		FinishID:     strings.TrimSpace(r.FinishID),
		ToleranceID:  strings.TrimSpace(r.ToleranceID),
		MachineClass: entities.MachineClass(strings.TrimSpace(r.MachineClass)),
		Quantity:     r.Quantity,
		Region:       strings.TrimSpace(r.Region),
	}
}

// QuoteCreateRequest creates a draft quote from one or more pricing lines.
type QuoteCreateRequest struct {
	CustomerID string                `json:"customer_id" binding:"required"`
	Region     string                `json:"region"`
	Lines      []InstantQuoteRequest `json:"lines" binding:"required"`
}

func (r QuoteCreateRequest) ToInputs() []usecase.InstantQuoteInput {
	inputs := make([]usecase.InstantQuoteInput, 0, len(r.Lines))
	for _, line := range r.Lines {
		if line.Region == "" {
			line.Region = r.Region
		}
		inputs = append(inputs, line.ToInput())
	}
	return inputs
}
