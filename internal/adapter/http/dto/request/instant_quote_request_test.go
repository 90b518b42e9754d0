package request

import (
	"testing"

	"cnc_quote/internal/domain/entities"
)

func TestInstantQuoteRequest_ToInput(t *testing.T) {
	r := InstantQuoteRequest{
		PartID:       " part-1 ",
		MaterialID:   "mat-1",
		FinishID:     "fin-1",
		ToleranceID:  "tol-1",
		MachineClass: " three_axis ",
		Quantity:     4,
		Region:       " us-east ",
	}

	in := r.ToInput()
	if in.PartID != "part-1" || in.Region != "us-east" {
		t.Fatalf("expected trimmed fields, got %+v", in)
	}
	if in.MachineClass != entities.MachineClassThreeAxis {
		t.Fatalf("unexpected machine class: %q", in.MachineClass)
	}
	if in.Quantity != 4 {
		t.Fatalf("unexpected quantity: %d", in.Quantity)
	}
}

func TestQuoteCreateRequest_ToInputs(t *testing.T) {
	r := QuoteCreateRequest{
		CustomerID: "cust-1",
		Region:     "us-east",
		Lines: []InstantQuoteRequest{
			{PartID: "part-1", MaterialID: "mat-1", FinishID: "fin-1", ToleranceID: "tol-1", MachineClass: "three_axis", Quantity: 1},
			{PartID: "part-2", MaterialID: "mat-1", FinishID: "fin-1", ToleranceID: "tol-1", MachineClass: "turning", Quantity: 3, Region: "eu-west"},
		},
	}

	inputs := r.ToInputs()
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}
	// Lines without a region inherit the quote region; explicit regions win.
	if inputs[0].Region != "us-east" {
		t.Fatalf("expected inherited region, got %q", inputs[0].Region)
	}
	if inputs[1].Region != "eu-west" {
		t.Fatalf("expected explicit region, got %q", inputs[1].Region)
	}
	if inputs[1].MachineClass != entities.MachineClassTurning {
		t.Fatalf("unexpected machine class: %q", inputs[1].MachineClass)
	}
}
