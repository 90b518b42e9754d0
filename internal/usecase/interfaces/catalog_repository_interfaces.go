package interfaces

import (
	"context"
	"cnc_quote/internal/domain/entities"
)

// Catalog repositories back the admin-managed pricing inputs. Lookups return
// the row regardless of its active flag; callers decide whether inactive rows
// are acceptable (the pricing engine rejects them, admin reads do not).

type IMaterialRepository interface {
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	ListActive(ctx context.Context) ([]entities.Material, error)
}

type IFinishRepository interface {
	Create(ctx context.Context, f entities.Finish) (entities.Finish, error)
	Update(ctx context.Context, f entities.Finish) (entities.Finish, error)
	GetByID(ctx context.Context, id string) (entities.Finish, error)
	ListActive(ctx context.Context) ([]entities.Finish, error)
}

type IToleranceRepository interface {
	Create(ctx context.Context, t entities.Tolerance) (entities.Tolerance, error)
	Update(ctx context.Context, t entities.Tolerance) (entities.Tolerance, error)
	GetByID(ctx context.Context, id string) (entities.Tolerance, error)
	ListActive(ctx context.Context) ([]entities.Tolerance, error)
}
