package interfaces

import (
	"context"
	"cnc_quote/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for quotes.
//
// UpdateStatus and ReplaceLineItems return a zero-value Quote when the row is
// missing or no longer in the expected status; usecases turn that into a
// not-found error.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	ReplaceLineItems(ctx context.Context, id string, lineItems []entities.QuoteLineItem, total float64, currency string) (entities.Quote, error)
}
