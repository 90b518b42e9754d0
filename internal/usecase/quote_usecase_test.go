package usecase_test

import (
	"context"
	"errors"
	"testing"

	"cnc_quote/internal/domain/entities"
	"cnc_quote/internal/usecase"
	mock_interfaces "cnc_quote/internal/usecase/interfaces/mocks"
	mock_usecase "cnc_quote/internal/usecase/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func quoteLineInput(partID string) usecase.InstantQuoteInput {
	return usecase.InstantQuoteInput{
		PartID:       partID,
		MaterialID:   "mat-1",
		FinishID:     "fin-1",
		ToleranceID:  "tol-1",
		MachineClass: entities.MachineClassThreeAxis,
		Quantity:     2,
	}
}

func pricedLine(partID, currency string, total float64) entities.QuoteLineItem {
	return entities.QuoteLineItem{
		PartID:       partID,
		MaterialID:   "mat-1",
		FinishID:     "fin-1",
		ToleranceID:  "tol-1",
		MachineClass: entities.MachineClassThreeAxis,
		Quantity:     2,
		UnitPrice:    total / 2,
		LineTotal:    total,
		Currency:     currency,
	}
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := usecase.NewQuoteUseCase(nil, nil, zap.NewNop())
		_, err := uc.CreateQuote(context.Background(), "  ", "", []usecase.InstantQuoteInput{quoteLineInput("part-1")})
		if !errors.Is(err, usecase.ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("no line items", func(t *testing.T) {
		uc := usecase.NewQuoteUseCase(nil, nil, zap.NewNop())
		_, err := uc.CreateQuote(context.Background(), "cust-1", "", nil)
		if !errors.Is(err, usecase.ErrNoLineItems) {
			t.Fatalf("expected ErrNoLineItems, got %v", err)
		}
	})

	t.Run("pricing error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pricing := mock_usecase.NewMockIPricingUseCase(ctrl)
		uc := usecase.NewQuoteUseCase(nil, pricing, zap.NewNop())

		pricing.EXPECT().CalculateInstantQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteLineItem{}, usecase.ErrUnpriceable)

		_, err := uc.CreateQuote(context.Background(), "cust-1", "", []usecase.InstantQuoteInput{quoteLineInput("part-1")})
		if !errors.Is(err, usecase.ErrUnpriceable) {
			t.Fatalf("expected ErrUnpriceable, got %v", err)
		}
	})

	t.Run("mixed currencies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pricing := mock_usecase.NewMockIPricingUseCase(ctrl)
		uc := usecase.NewQuoteUseCase(nil, pricing, zap.NewNop())

		gomock.InOrder(
			pricing.EXPECT().CalculateInstantQuote(gomock.Any(), gomock.Any()).Return(pricedLine("part-1", "USD", 100), nil),
			pricing.EXPECT().CalculateInstantQuote(gomock.Any(), gomock.Any()).Return(pricedLine("part-2", "EUR", 80), nil),
		)

		_, err := uc.CreateQuote(context.Background(), "cust-1", "", []usecase.InstantQuoteInput{
			quoteLineInput("part-1"), quoteLineInput("part-2"),
		})
		if !errors.Is(err, usecase.ErrMixedCurrencies) {
			t.Fatalf("expected ErrMixedCurrencies, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pricing := mock_usecase.NewMockIPricingUseCase(ctrl)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := usecase.NewQuoteUseCase(repo, pricing, zap.NewNop())

		// A line without a region inherits the quote's; a line that names its
		// own keeps it.
		pricing.EXPECT().CalculateInstantQuote(gomock.Any(), gomock.AssignableToTypeOf(usecase.InstantQuoteInput{})).DoAndReturn(
			func(_ context.Context, in usecase.InstantQuoteInput) (entities.QuoteLineItem, error) {
				want := "us-east"
				if in.PartID == "part-2" {
					want = "eu-west"
				}
				if in.Region != want {
					t.Fatalf("expected region %q for %s, got %q", want, in.PartID, in.Region)
				}
				return pricedLine(in.PartID, "USD", 100.10), nil
			},
		).Times(2)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.CustomerID != "cust-1" || q.Region != "us-east" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.Status != entities.QuoteStatusDraft {
					t.Fatalf("expected draft status, got %s", q.Status)
				}
				if q.Total != 200.20 || q.Currency != "USD" || len(q.LineItems) != 2 {
					t.Fatalf("unexpected totals: %+v", q)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		euLine := quoteLineInput("part-2")
		euLine.Region = "eu-west"
		res, err := uc.CreateQuote(context.Background(), " cust-1 ", "us-east", []usecase.InstantQuoteInput{
			quoteLineInput("part-1"), euLine,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := usecase.NewQuoteUseCase(nil, nil, zap.NewNop())
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, usecase.ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := usecase.NewQuoteUseCase(repo, nil, zap.NewNop())
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, usecase.ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := usecase.NewQuoteUseCase(repo, nil, zap.NewNop())
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		res, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "q-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestQuoteUseCase_Transitions(t *testing.T) {
	cases := []struct {
		name string
		call func(uc *usecase.QuoteUseCase, ctx context.Context, id string) (entities.Quote, error)
		from entities.QuoteStatus
		to   entities.QuoteStatus
	}{
		{name: "submit", call: (*usecase.QuoteUseCase).Submit, from: entities.QuoteStatusDraft, to: entities.QuoteStatusSubmitted},
		{name: "accept", call: (*usecase.QuoteUseCase).Accept, from: entities.QuoteStatusSubmitted, to: entities.QuoteStatusAccepted},
		{name: "reject", call: (*usecase.QuoteUseCase).Reject, from: entities.QuoteStatusSubmitted, to: entities.QuoteStatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name+" wrong current status", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := usecase.NewQuoteUseCase(repo, nil, zap.NewNop())
			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusRejected}, nil)

			_, err := tc.call(uc, context.Background(), "q-1")
			if !errors.Is(err, usecase.ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := usecase.NewQuoteUseCase(repo, nil, zap.NewNop())
			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: tc.from}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", tc.to).Return(entities.Quote{ID: "q-1", Status: tc.to}, nil)

			res, err := tc.call(uc, context.Background(), "q-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.to {
				t.Fatalf("expected %s got %s", tc.to, res.Status)
			}
		})

		t.Run(tc.name+" lost update", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := usecase.NewQuoteUseCase(repo, nil, zap.NewNop())
			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: tc.from}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", tc.to).Return(entities.Quote{}, nil)

			_, err := tc.call(uc, context.Background(), "q-1")
			if !errors.Is(err, usecase.ErrQuoteNotFound) {
				t.Fatalf("expected ErrQuoteNotFound, got %v", err)
			}
		})
	}
}

func TestQuoteUseCase_Reprice(t *testing.T) {
	draft := func() entities.Quote {
		return entities.Quote{
			ID:         "q-1",
			CustomerID: "cust-1",
			Region:     "us-east",
			Currency:   "USD",
			Status:     entities.QuoteStatusDraft,
			Total:      200.20,
			LineItems: []entities.QuoteLineItem{
				pricedLine("part-1", "USD", 100.10),
				pricedLine("part-2", "USD", 100.10),
			},
		}
	}

	t.Run("only drafts can be repriced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := usecase.NewQuoteUseCase(repo, nil, zap.NewNop())
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSubmitted}, nil)

		_, err := uc.Reprice(context.Background(), "q-1")
		if !errors.Is(err, usecase.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("pricing error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		pricing := mock_usecase.NewMockIPricingUseCase(ctrl)
		uc := usecase.NewQuoteUseCase(repo, pricing, zap.NewNop())
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(draft(), nil)
		pricing.EXPECT().CalculateInstantQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteLineItem{}, usecase.ErrUnpriceable)

		_, err := uc.Reprice(context.Background(), "q-1")
		if !errors.Is(err, usecase.ErrUnpriceable) {
			t.Fatalf("expected ErrUnpriceable, got %v", err)
		}
	})

	t.Run("replaces line items with fresh prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		pricing := mock_usecase.NewMockIPricingUseCase(ctrl)
		uc := usecase.NewQuoteUseCase(repo, pricing, zap.NewNop())

		stored := draft()
		stored.LineItems[1].Region = "eu-west"
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)

		// Inputs are rebuilt from the stored line items; a line keeps the
		// region it was priced in and falls back to the quote's otherwise.
		pricing.EXPECT().CalculateInstantQuote(gomock.Any(), gomock.AssignableToTypeOf(usecase.InstantQuoteInput{})).DoAndReturn(
			func(_ context.Context, in usecase.InstantQuoteInput) (entities.QuoteLineItem, error) {
				want := "us-east"
				if in.PartID == "part-2" {
					want = "eu-west"
				}
				if in.Region != want || in.MaterialID != "mat-1" || in.Quantity != 2 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return pricedLine(in.PartID, "USD", 120.50), nil
			},
		).Times(2)

		repo.EXPECT().ReplaceLineItems(gomock.Any(), "q-1", gomock.AssignableToTypeOf([]entities.QuoteLineItem{}), 241.00, "USD").DoAndReturn(
			func(_ context.Context, id string, lineItems []entities.QuoteLineItem, total float64, currency string) (entities.Quote, error) {
				if len(lineItems) != 2 {
					t.Fatalf("expected 2 line items, got %d", len(lineItems))
				}
				q := draft()
				q.LineItems = lineItems
				q.Total = total
				return q, nil
			},
		)

		res, err := uc.Reprice(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Total != 241.00 {
			t.Fatalf("expected total 241.00, got %v", res.Total)
		}
	})

	t.Run("lost update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		pricing := mock_usecase.NewMockIPricingUseCase(ctrl)
		uc := usecase.NewQuoteUseCase(repo, pricing, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(draft(), nil)
		pricing.EXPECT().CalculateInstantQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.InstantQuoteInput) (entities.QuoteLineItem, error) {
				return pricedLine(in.PartID, "USD", 100.10), nil
			},
		).Times(2)
		repo.EXPECT().ReplaceLineItems(gomock.Any(), "q-1", gomock.Any(), gomock.Any(), "USD").Return(entities.Quote{}, nil)

		_, err := uc.Reprice(context.Background(), "q-1")
		if !errors.Is(err, usecase.ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_ListByCustomerID(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := usecase.NewQuoteUseCase(nil, nil, zap.NewNop())
		_, err := uc.ListByCustomerID(context.Background(), "")
		if !errors.Is(err, usecase.ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := usecase.NewQuoteUseCase(repo, nil, zap.NewNop())
		repo.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}}, nil)

		res, err := uc.ListByCustomerID(context.Background(), " cust-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(res))
		}
	})
}
