package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cnc_quote/internal/domain/entities"
	"cnc_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPartNotFound    = errors.New("part not found")
	ErrInvalidPartID   = errors.New("invalid part id")
	ErrInvalidGeometry = errors.New("invalid part geometry")
)

// IPartUseCase registers geometry produced by the external CAD-processing
// step. Geometry is immutable once stored; there is no update operation.

type IPartUseCase interface {
	RegisterPart(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
}

type PartUseCase struct {
	repo   interfaces.IPartRepository
	logger *zap.Logger
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(repo interfaces.IPartRepository, logger *zap.Logger) *PartUseCase {
	return &PartUseCase{repo: repo, logger: logger}
}

func (u *PartUseCase) RegisterPart(ctx context.Context, p entities.Part) (entities.Part, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Part{}, ErrInvalidGeometry
	}
	if !p.HasGeometry() {
		return entities.Part{}, ErrInvalidGeometry
	}
	if p.BoundingBox.XMM <= 0 || p.BoundingBox.YMM <= 0 || p.BoundingBox.ZMM <= 0 {
		return entities.Part{}, ErrInvalidGeometry
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Part{}, err
	}
	u.logger.Info("part registered",
		zap.String("part_id", created.ID),
		zap.Float64("volume_mm3", created.VolumeMM3),
		zap.Float64("surface_area_mm2", created.SurfaceAreaMM2))
	return created, nil
}

func (u *PartUseCase) GetByID(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}
