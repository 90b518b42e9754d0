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

func validPart() entities.Part {
	return entities.Part{
		CustomerID:     "cust-1",
		Name:           "bracket",
		VolumeMM3:      12500,
		SurfaceAreaMM2: 4200,
		BoundingBox:    entities.BoundingBox{XMM: 50, YMM: 25, ZMM: 10},
	}
}

func TestPartUseCase_RegisterPart(t *testing.T) {
	invalid := []struct {
		name   string
		mutate func(p *entities.Part)
	}{
		{name: "empty name", mutate: func(p *entities.Part) { p.Name = "  " }},
		{name: "zero volume", mutate: func(p *entities.Part) { p.VolumeMM3 = 0 }},
		{name: "zero surface area", mutate: func(p *entities.Part) { p.SurfaceAreaMM2 = 0 }},
		{name: "flat bounding box", mutate: func(p *entities.Part) { p.BoundingBox.ZMM = 0 }},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewPartUseCase(nil, zap.NewNop())
			p := validPart()
			tc.mutate(&p)
			_, err := uc.RegisterPart(context.Background(), p)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo, zap.NewNop())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Part{})).DoAndReturn(
			func(_ context.Context, p entities.Part) (entities.Part, error) {
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if p.CreatedAt.IsZero() {
					t.Fatalf("expected created at")
				}
				return p, nil
			},
		)

		res, err := uc.RegisterPart(context.Background(), validPart())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "bracket" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPartUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPartUseCase(nil, zap.NewNop())
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPartID) {
			t.Fatalf("expected ErrInvalidPartID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo, zap.NewNop())
		repo.EXPECT().GetByID(gomock.Any(), "part-1").Return(entities.Part{}, nil)

		_, err := uc.GetByID(context.Background(), "part-1")
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo, zap.NewNop())
		repo.EXPECT().GetByID(gomock.Any(), "part-1").Return(entities.Part{ID: "part-1"}, nil)

		res, err := uc.GetByID(context.Background(), " part-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "part-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
