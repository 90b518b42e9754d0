package interfaces

import (
	"context"
	"cnc_quote/internal/domain/entities"
)

// IRateCardRepository abstracts DynamoDB persistence for regional rate cards.
//
// GetActiveByRegion returns a zero-value RateCard when the region has no
// active card; it does not fall back to another region itself. Region
// defaulting is a pricing-engine decision.

type IRateCardRepository interface {
	Create(ctx context.Context, rc entities.RateCard) (entities.RateCard, error)
	Update(ctx context.Context, rc entities.RateCard) (entities.RateCard, error)
	GetActiveByRegion(ctx context.Context, region string) (entities.RateCard, error)
	ListActive(ctx context.Context) ([]entities.RateCard, error)
}
