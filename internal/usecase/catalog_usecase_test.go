package usecase

import (
	"context"
	"errors"
	"testing"

	"cnc_quote/internal/domain/entities"
	mock_interfaces "cnc_quote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newCatalogUseCaseWithMocks(t *testing.T) (*CatalogUseCase, *mock_interfaces.MockIMaterialRepository, *mock_interfaces.MockIRateCardRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
	finishes := mock_interfaces.NewMockIFinishRepository(ctrl)
	tolerances := mock_interfaces.NewMockIToleranceRepository(ctrl)
	rateCards := mock_interfaces.NewMockIRateCardRepository(ctrl)
	uc := NewCatalogUseCase(materials, finishes, tolerances, rateCards, zap.NewNop())
	return uc, materials, rateCards
}

func validMaterial() entities.Material {
	return entities.Material{
		Name:                "aluminum 6061",
		DensityKgM3:         2700,
		CostPerKg:           5,
		MachinabilityFactor: 1.0,
	}
}

func TestCatalogUseCase_MaterialValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(m *entities.Material)
	}{
		{name: "empty name", mutate: func(m *entities.Material) { m.Name = "  " }},
		{name: "zero density", mutate: func(m *entities.Material) { m.DensityKgM3 = 0 }},
		{name: "negative cost", mutate: func(m *entities.Material) { m.CostPerKg = -1 }},
		{name: "zero machinability", mutate: func(m *entities.Material) { m.MachinabilityFactor = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _ := newCatalogUseCaseWithMocks(t)
			m := validMaterial()
			tc.mutate(&m)
			_, err := uc.CreateMaterial(context.Background(), m)
			if !errors.Is(err, ErrInvalidCatalogEntry) {
				t.Fatalf("expected ErrInvalidCatalogEntry, got %v", err)
			}
		})
	}
}

func TestCatalogUseCase_CreateMaterial(t *testing.T) {
	uc, materials, _ := newCatalogUseCaseWithMocks(t)

	materials.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Material{})).DoAndReturn(
		func(_ context.Context, m entities.Material) (entities.Material, error) {
			if m.ID == "" {
				t.Fatalf("expected generated id")
			}
			if !m.Active {
				t.Fatalf("new material must be active")
			}
			if m.CreatedAt.IsZero() || m.UpdatedAt.IsZero() {
				t.Fatalf("expected timestamps")
			}
			return m, nil
		},
	)

	res, err := uc.CreateMaterial(context.Background(), validMaterial())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Name != "aluminum 6061" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCatalogUseCase_UpdateMaterial(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, materials, _ := newCatalogUseCaseWithMocks(t)
		materials.EXPECT().GetByID(gomock.Any(), "mat-1").Return(entities.Material{}, nil)

		m := validMaterial()
		m.ID = "mat-1"
		_, err := uc.UpdateMaterial(context.Background(), m)
		if !errors.Is(err, ErrCatalogEntryNotFound) {
			t.Fatalf("expected ErrCatalogEntryNotFound, got %v", err)
		}
	})

	t.Run("preserves active flag and created at", func(t *testing.T) {
		uc, materials, _ := newCatalogUseCaseWithMocks(t)
		existing := validMaterial()
		existing.ID = "mat-1"
		existing.Active = false
		materials.EXPECT().GetByID(gomock.Any(), "mat-1").Return(existing, nil)
		materials.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Material{})).DoAndReturn(
			func(_ context.Context, m entities.Material) (entities.Material, error) {
				if m.Active {
					t.Fatalf("update must not reactivate a deactivated row")
				}
				return m, nil
			},
		)

		m := validMaterial()
		m.ID = "mat-1"
		m.CostPerKg = 6
		res, err := uc.UpdateMaterial(context.Background(), m)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CostPerKg != 6 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCatalogUseCase_DeactivateMaterial(t *testing.T) {
	uc, materials, _ := newCatalogUseCaseWithMocks(t)
	existing := validMaterial()
	existing.ID = "mat-1"
	existing.Active = true
	materials.EXPECT().GetByID(gomock.Any(), "mat-1").Return(existing, nil)
	materials.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Material{})).DoAndReturn(
		func(_ context.Context, m entities.Material) (entities.Material, error) {
			if m.Active {
				t.Fatalf("expected deactivated material")
			}
			return m, nil
		},
	)

	res, err := uc.DeactivateMaterial(context.Background(), "mat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Active {
		t.Fatalf("expected inactive, got %+v", res)
	}
}

func validRateCard() entities.RateCard {
	return entities.RateCard{
		Region:   "us-east",
		Currency: "USD",
		RatesPerMinute: map[entities.MachineClass]float64{
			entities.MachineClassThreeAxis: 2.0,
			entities.MachineClassFiveAxis:  3.5,
		},
		MachineSetupFee: 20,
		TaxRate:         0.10,
		ShippingFlat:    15,
	}
}

func TestCatalogUseCase_RateCardValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(rc *entities.RateCard)
	}{
		{name: "empty region", mutate: func(rc *entities.RateCard) { rc.Region = " " }},
		{name: "empty currency", mutate: func(rc *entities.RateCard) { rc.Currency = "" }},
		{name: "no rates", mutate: func(rc *entities.RateCard) { rc.RatesPerMinute = nil }},
		{name: "unknown machine class", mutate: func(rc *entities.RateCard) {
			rc.RatesPerMinute = map[entities.MachineClass]float64{"laser": 9}
		}},
		{name: "non positive rate", mutate: func(rc *entities.RateCard) {
			rc.RatesPerMinute = map[entities.MachineClass]float64{entities.MachineClassTurning: 0}
		}},
		{name: "negative tax", mutate: func(rc *entities.RateCard) { rc.TaxRate = -0.1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _ := newCatalogUseCaseWithMocks(t)
			rc := validRateCard()
			tc.mutate(&rc)
			_, err := uc.CreateRateCard(context.Background(), rc)
			if !errors.Is(err, ErrInvalidRateCard) {
				t.Fatalf("expected ErrInvalidRateCard, got %v", err)
			}
		})
	}
}

func TestCatalogUseCase_RateCardFlows(t *testing.T) {
	t.Run("create success", func(t *testing.T) {
		uc, _, rateCards := newCatalogUseCaseWithMocks(t)
		rateCards.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RateCard{})).DoAndReturn(
			func(_ context.Context, rc entities.RateCard) (entities.RateCard, error) {
				if rc.ID == "" || !rc.Active {
					t.Fatalf("unexpected rate card: %+v", rc)
				}
				return rc, nil
			},
		)

		res, err := uc.CreateRateCard(context.Background(), validRateCard())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Region != "us-east" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("get defaults region", func(t *testing.T) {
		uc, _, rateCards := newCatalogUseCaseWithMocks(t)
		rc := validRateCard()
		rc.Region = entities.DefaultRegion
		rateCards.EXPECT().GetActiveByRegion(gomock.Any(), entities.DefaultRegion).Return(rc, nil)

		res, err := uc.GetRateCard(context.Background(), "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Region != entities.DefaultRegion {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		uc, _, rateCards := newCatalogUseCaseWithMocks(t)
		rateCards.EXPECT().GetActiveByRegion(gomock.Any(), "eu-west").Return(entities.RateCard{}, nil)

		_, err := uc.GetRateCard(context.Background(), "eu-west")
		if !errors.Is(err, ErrRateCardNotFound) {
			t.Fatalf("expected ErrRateCardNotFound, got %v", err)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		uc, _, rateCards := newCatalogUseCaseWithMocks(t)
		rateCards.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.RateCard{})).Return(entities.RateCard{}, nil)

		_, err := uc.UpdateRateCard(context.Background(), validRateCard())
		if !errors.Is(err, ErrRateCardNotFound) {
			t.Fatalf("expected ErrRateCardNotFound, got %v", err)
		}
	})
}
