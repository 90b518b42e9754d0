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
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrNoLineItems       = errors.New("quote has no line items")
	ErrMixedCurrencies   = errors.New("quote line items priced in different currencies")
	ErrInvalidTransition = errors.New("invalid quote status transition")
)

// IQuoteUseCase persists priced quotes and drives their lifecycle.
//
// A quote starts as a draft, is submitted by the customer, and is accepted or
// rejected by staff. Line items are priced once at creation; the stored
// breakdown remains the record even if the catalog changes afterwards.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, customerID, region string, lines []InstantQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error)
	Reprice(ctx context.Context, id string) (entities.Quote, error)
	Submit(ctx context.Context, id string) (entities.Quote, error)
	Accept(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	pricing IPricingUseCase
	logger  *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, pricing IPricingUseCase, logger *zap.Logger) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, pricing: pricing, logger: logger}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, customerID, region string, lines []InstantQuoteInput) (entities.Quote, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Quote{}, ErrInvalidCustomerID
	}
	if len(lines) == 0 {
		return entities.Quote{}, ErrNoLineItems
	}

	region = strings.TrimSpace(region)
	if region == "" {
		region = entities.DefaultRegion
	}

	lineItems := make([]entities.QuoteLineItem, 0, len(lines))
	total := 0.0
	currency := ""
	for _, line := range lines {
		// Lines inherit the quote region unless they name their own; the
		// single-currency guard below catches cards that disagree.
		if strings.TrimSpace(line.Region) == "" {
			line.Region = region
		}
		item, err := u.pricing.CalculateInstantQuote(ctx, line)
		if err != nil {
			return entities.Quote{}, err
		}
		if currency == "" {
			currency = item.Currency
		} else if currency != item.Currency {
			return entities.Quote{}, ErrMixedCurrencies
		}
		total += item.LineTotal
		lineItems = append(lineItems, item)
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Region:     region,
		Currency:   currency,
		Status:     entities.QuoteStatusDraft,
		Total:      round2(total),
		LineItems:  lineItems,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	u.logger.Info("quote created",
		zap.String("quote_id", created.ID),
		zap.String("customer_id", customerID),
		zap.Int("line_items", len(lineItems)),
		zap.Float64("total", created.Total),
		zap.String("currency", currency))
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

// Reprice runs the pricing engine again over a draft quote's line items and
// replaces them with fresh breakdowns. Only drafts can be repriced; once a
// quote is submitted its stored prices are the record.
func (u *QuoteUseCase) Reprice(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, ErrInvalidTransition
	}

	lineItems := make([]entities.QuoteLineItem, 0, len(q.LineItems))
	total := 0.0
	currency := ""
	for _, old := range q.LineItems {
		lineRegion := old.Region
		if lineRegion == "" {
			lineRegion = q.Region
		}
		item, err := u.pricing.CalculateInstantQuote(ctx, InstantQuoteInput{
			PartID:       old.PartID,
			MaterialID:   old.MaterialID,
			FinishID:     old.FinishID,
			ToleranceID:  old.ToleranceID,
			MachineClass: old.MachineClass,
			Quantity:     old.Quantity,
			Region:       lineRegion,
		})
		if err != nil {
			return entities.Quote{}, err
		}
		if currency == "" {
			currency = item.Currency
		} else if currency != item.Currency {
			return entities.Quote{}, ErrMixedCurrencies
		}
		total += item.LineTotal
		lineItems = append(lineItems, item)
	}

	updated, err := u.repo.ReplaceLineItems(ctx, q.ID, lineItems, round2(total), currency)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.logger.Info("quote repriced",
		zap.String("quote_id", updated.ID),
		zap.Float64("total", updated.Total),
		zap.String("currency", currency))
	return updated, nil
}

func (u *QuoteUseCase) Submit(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusSubmitted, entities.QuoteStatusDraft)
}

func (u *QuoteUseCase) Accept(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusAccepted, entities.QuoteStatusSubmitted)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusRejected, entities.QuoteStatusSubmitted)
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, to entities.QuoteStatus, from entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != from {
		return entities.Quote{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, q.ID, to)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.logger.Info("quote status changed",
		zap.String("quote_id", updated.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))
	return updated, nil
}
