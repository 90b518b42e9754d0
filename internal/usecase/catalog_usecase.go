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
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")
	ErrInvalidCatalogEntry  = errors.New("invalid catalog entry")
	ErrRateCardNotFound     = errors.New("rate card not found")
	ErrInvalidRateCard      = errors.New("invalid rate card")
)

// ICatalogUseCase is the admin surface over pricing inputs. Rows are never
// deleted, only deactivated, so historical quotes keep valid references.

type ICatalogUseCase interface {
	CreateMaterial(ctx context.Context, m entities.Material) (entities.Material, error)
	UpdateMaterial(ctx context.Context, m entities.Material) (entities.Material, error)
	DeactivateMaterial(ctx context.Context, id string) (entities.Material, error)
	GetMaterial(ctx context.Context, id string) (entities.Material, error)
	ListMaterials(ctx context.Context) ([]entities.Material, error)

	CreateFinish(ctx context.Context, f entities.Finish) (entities.Finish, error)
	UpdateFinish(ctx context.Context, f entities.Finish) (entities.Finish, error)
	DeactivateFinish(ctx context.Context, id string) (entities.Finish, error)
	GetFinish(ctx context.Context, id string) (entities.Finish, error)
	ListFinishes(ctx context.Context) ([]entities.Finish, error)

	CreateTolerance(ctx context.Context, t entities.Tolerance) (entities.Tolerance, error)
	UpdateTolerance(ctx context.Context, t entities.Tolerance) (entities.Tolerance, error)
	DeactivateTolerance(ctx context.Context, id string) (entities.Tolerance, error)
	GetTolerance(ctx context.Context, id string) (entities.Tolerance, error)
	ListTolerances(ctx context.Context) ([]entities.Tolerance, error)

	CreateRateCard(ctx context.Context, rc entities.RateCard) (entities.RateCard, error)
	UpdateRateCard(ctx context.Context, rc entities.RateCard) (entities.RateCard, error)
	GetRateCard(ctx context.Context, region string) (entities.RateCard, error)
	ListRateCards(ctx context.Context) ([]entities.RateCard, error)
}

type CatalogUseCase struct {
	materials  interfaces.IMaterialRepository
	finishes   interfaces.IFinishRepository
	tolerances interfaces.IToleranceRepository
	rateCards  interfaces.IRateCardRepository
	logger     *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(
	materials interfaces.IMaterialRepository,
	finishes interfaces.IFinishRepository,
	tolerances interfaces.IToleranceRepository,
	rateCards interfaces.IRateCardRepository,
	logger *zap.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		materials:  materials,
		finishes:   finishes,
		tolerances: tolerances,
		rateCards:  rateCards,
		logger:     logger,
	}
}

// --- materials ---

func validateMaterial(m entities.Material) error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrInvalidCatalogEntry
	}
	if m.DensityKgM3 <= 0 || m.CostPerKg < 0 || m.MachinabilityFactor <= 0 {
		return ErrInvalidCatalogEntry
	}
	return nil
}

func (u *CatalogUseCase) CreateMaterial(ctx context.Context, m entities.Material) (entities.Material, error) {
	if err := validateMaterial(m); err != nil {
		return entities.Material{}, err
	}
	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.Active = true
	m.CreatedAt = now
	m.UpdatedAt = now

	created, err := u.materials.Create(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	u.logger.Info("material created", zap.String("material_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (u *CatalogUseCase) UpdateMaterial(ctx context.Context, m entities.Material) (entities.Material, error) {
	m.ID = strings.TrimSpace(m.ID)
	if m.ID == "" {
		return entities.Material{}, ErrInvalidCatalogEntry
	}
	if err := validateMaterial(m); err != nil {
		return entities.Material{}, err
	}

	existing, err := u.materials.GetByID(ctx, m.ID)
	if err != nil {
		return entities.Material{}, err
	}
	if existing.ID == "" {
		return entities.Material{}, ErrCatalogEntryNotFound
	}

	m.Active = existing.Active
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = time.Now().UTC()

	updated, err := u.materials.Update(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	if updated.ID == "" {
		return entities.Material{}, ErrCatalogEntryNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeactivateMaterial(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidCatalogEntry
	}

	m, err := u.materials.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrCatalogEntryNotFound
	}

	m.Active = false
	m.UpdatedAt = time.Now().UTC()
	updated, err := u.materials.Update(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	u.logger.Info("material deactivated", zap.String("material_id", id))
	return updated, nil
}

func (u *CatalogUseCase) GetMaterial(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidCatalogEntry
	}
	m, err := u.materials.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrCatalogEntryNotFound
	}
	return m, nil
}

func (u *CatalogUseCase) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	return u.materials.ListActive(ctx)
}

// --- finishes ---

func validateFinish(f entities.Finish) error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrInvalidCatalogEntry
	}
	if f.CostPerM2 < 0 || f.SetupFee < 0 || f.LeadTimeDays < 0 {
		return ErrInvalidCatalogEntry
	}
	return nil
}

func (u *CatalogUseCase) CreateFinish(ctx context.Context, f entities.Finish) (entities.Finish, error) {
	if err := validateFinish(f); err != nil {
		return entities.Finish{}, err
	}
	now := time.Now().UTC()
	f.ID = uuid.NewString()
	f.Active = true
	f.CreatedAt = now
	f.UpdatedAt = now

	created, err := u.finishes.Create(ctx, f)
	if err != nil {
		return entities.Finish{}, err
	}
	u.logger.Info("finish created", zap.String("finish_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (u *CatalogUseCase) UpdateFinish(ctx context.Context, f entities.Finish) (entities.Finish, error) {
	f.ID = strings.TrimSpace(f.ID)
	if f.ID == "" {
		return entities.Finish{}, ErrInvalidCatalogEntry
	}
	if err := validateFinish(f); err != nil {
		return entities.Finish{}, err
	}

	existing, err := u.finishes.GetByID(ctx, f.ID)
	if err != nil {
		return entities.Finish{}, err
	}
	if existing.ID == "" {
		return entities.Finish{}, ErrCatalogEntryNotFound
	}

	f.Active = existing.Active
	f.CreatedAt = existing.CreatedAt
	f.UpdatedAt = time.Now().UTC()

	updated, err := u.finishes.Update(ctx, f)
	if err != nil {
		return entities.Finish{}, err
	}
	if updated.ID == "" {
		return entities.Finish{}, ErrCatalogEntryNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeactivateFinish(ctx context.Context, id string) (entities.Finish, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Finish{}, ErrInvalidCatalogEntry
	}

	f, err := u.finishes.GetByID(ctx, id)
	if err != nil {
		return entities.Finish{}, err
	}
	if f.ID == "" {
		return entities.Finish{}, ErrCatalogEntryNotFound
	}

	f.Active = false
	f.UpdatedAt = time.Now().UTC()
	updated, err := u.finishes.Update(ctx, f)
	if err != nil {
		return entities.Finish{}, err
	}
	u.logger.Info("finish deactivated", zap.String("finish_id", id))
	return updated, nil
}

func (u *CatalogUseCase) GetFinish(ctx context.Context, id string) (entities.Finish, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Finish{}, ErrInvalidCatalogEntry
	}
	f, err := u.finishes.GetByID(ctx, id)
	if err != nil {
		return entities.Finish{}, err
	}
	if f.ID == "" {
		return entities.Finish{}, ErrCatalogEntryNotFound
	}
	return f, nil
}

func (u *CatalogUseCase) ListFinishes(ctx context.Context) ([]entities.Finish, error) {
	return u.finishes.ListActive(ctx)
}

// --- tolerances ---

func validateTolerance(t entities.Tolerance) error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrInvalidCatalogEntry
	}
	if t.MaxMM < t.MinMM || t.CostMultiplier <= 0 {
		return ErrInvalidCatalogEntry
	}
	return nil
}

func (u *CatalogUseCase) CreateTolerance(ctx context.Context, t entities.Tolerance) (entities.Tolerance, error) {
	if err := validateTolerance(t); err != nil {
		return entities.Tolerance{}, err
	}
	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.Active = true
	t.CreatedAt = now
	t.UpdatedAt = now

	created, err := u.tolerances.Create(ctx, t)
	if err != nil {
		return entities.Tolerance{}, err
	}
	u.logger.Info("tolerance created", zap.String("tolerance_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (u *CatalogUseCase) UpdateTolerance(ctx context.Context, t entities.Tolerance) (entities.Tolerance, error) {
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		return entities.Tolerance{}, ErrInvalidCatalogEntry
	}
	if err := validateTolerance(t); err != nil {
		return entities.Tolerance{}, err
	}

	existing, err := u.tolerances.GetByID(ctx, t.ID)
	if err != nil {
		return entities.Tolerance{}, err
	}
	if existing.ID == "" {
		return entities.Tolerance{}, ErrCatalogEntryNotFound
	}

	t.Active = existing.Active
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()

	updated, err := u.tolerances.Update(ctx, t)
	if err != nil {
		return entities.Tolerance{}, err
	}
	if updated.ID == "" {
		return entities.Tolerance{}, ErrCatalogEntryNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeactivateTolerance(ctx context.Context, id string) (entities.Tolerance, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Tolerance{}, ErrInvalidCatalogEntry
	}

	t, err := u.tolerances.GetByID(ctx, id)
	if err != nil {
		return entities.Tolerance{}, err
	}
	if t.ID == "" {
		return entities.Tolerance{}, ErrCatalogEntryNotFound
	}

	t.Active = false
	t.UpdatedAt = time.Now().UTC()
	updated, err := u.tolerances.Update(ctx, t)
	if err != nil {
		return entities.Tolerance{}, err
	}
	u.logger.Info("tolerance deactivated", zap.String("tolerance_id", id))
	return updated, nil
}

func (u *CatalogUseCase) GetTolerance(ctx context.Context, id string) (entities.Tolerance, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Tolerance{}, ErrInvalidCatalogEntry
	}
	t, err := u.tolerances.GetByID(ctx, id)
	if err != nil {
		return entities.Tolerance{}, err
	}
	if t.ID == "" {
		return entities.Tolerance{}, ErrCatalogEntryNotFound
	}
	return t, nil
}

func (u *CatalogUseCase) ListTolerances(ctx context.Context) ([]entities.Tolerance, error) {
	return u.tolerances.ListActive(ctx)
}

// --- rate cards ---

func validateRateCard(rc entities.RateCard) error {
	if strings.TrimSpace(rc.Region) == "" || strings.TrimSpace(rc.Currency) == "" {
		return ErrInvalidRateCard
	}
	if len(rc.RatesPerMinute) == 0 {
		return ErrInvalidRateCard
	}
	for class, rate := range rc.RatesPerMinute {
		if !entities.KnownMachineClass(class) || rate <= 0 {
			return ErrInvalidRateCard
		}
	}
	if rc.MachineSetupFee < 0 || rc.TaxRate < 0 || rc.ShippingFlat < 0 {
		return ErrInvalidRateCard
	}
	return nil
}

func (u *CatalogUseCase) CreateRateCard(ctx context.Context, rc entities.RateCard) (entities.RateCard, error) {
	rc.Region = strings.TrimSpace(rc.Region)
	if err := validateRateCard(rc); err != nil {
		return entities.RateCard{}, err
	}
	now := time.Now().UTC()
	rc.ID = uuid.NewString()
	rc.Active = true
	rc.CreatedAt = now
	rc.UpdatedAt = now

	created, err := u.rateCards.Create(ctx, rc)
	if err != nil {
		return entities.RateCard{}, err
	}
	u.logger.Info("rate card created", zap.String("region", created.Region), zap.String("currency", created.Currency))
	return created, nil
}

func (u *CatalogUseCase) UpdateRateCard(ctx context.Context, rc entities.RateCard) (entities.RateCard, error) {
	rc.Region = strings.TrimSpace(rc.Region)
	if err := validateRateCard(rc); err != nil {
		return entities.RateCard{}, err
	}

	rc.UpdatedAt = time.Now().UTC()
	updated, err := u.rateCards.Update(ctx, rc)
	if err != nil {
		return entities.RateCard{}, err
	}
	if updated.Region == "" {
		return entities.RateCard{}, ErrRateCardNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) GetRateCard(ctx context.Context, region string) (entities.RateCard, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		region = entities.DefaultRegion
	}
	rc, err := u.rateCards.GetActiveByRegion(ctx, region)
	if err != nil {
		return entities.RateCard{}, err
	}
	if rc.Region == "" {
		return entities.RateCard{}, ErrRateCardNotFound
	}
	return rc, nil
}

func (u *CatalogUseCase) ListRateCards(ctx context.Context) ([]entities.RateCard, error) {
	return u.rateCards.ListActive(ctx)
}
