package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cnc_quote/internal/domain/entities"
	"cnc_quote/internal/infrastructure/metrics"
	"cnc_quote/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrInvalidPaymentID       = errors.New("invalid payment id")
	ErrInvalidPaymentQuoteID  = errors.New("invalid quote_id")
	ErrInvalidPaymentPayload  = errors.New("invalid payment payload")
	ErrQuoteNotAccepted       = errors.New("quote not accepted")
	ErrPaymentGatewayNotReady = errors.New("payment gateway not configured")
)

// IPaymentUseCase charges an accepted quote.
//
// The amount charged is always the stored quote total; whatever amount the
// caller puts in the payload is overwritten.

type IPaymentUseCase interface {
	PayQuote(ctx context.Context, quoteID string, payload json.RawMessage) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IQuotePaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	logger    *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IQuotePaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, logger *zap.Logger) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway, logger: logger}
}

func (u *PaymentUseCase) PayQuote(ctx context.Context, quoteID string, payload json.RawMessage) (entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentQuoteID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return entities.QuotePayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.QuotePayment{}, ErrPaymentGatewayNotReady
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if quote.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusAccepted {
		return entities.QuotePayment{}, ErrQuoteNotAccepted
	}

	// Link the charge to the quote and force the amount from the stored
	// total. external_reference helps the provider reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return entities.QuotePayment{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quote.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Quote %s", quote.ID)
	}
	reqMap["transaction_amount"] = quote.Total
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.logger.Warn("payment gateway failed",
			zap.String("quote_id", quote.ID),
			zap.Error(err))
		return entities.QuotePayment{}, err
	}

	status := entities.PaymentStatusDenied
	if providerStatus == "approved" {
		status = entities.PaymentStatusApproved
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Warn("provider response unmarshal failed",
			zap.String("quote_id", quote.ID),
			zap.Error(err))
	}

	p := entities.QuotePayment{
		ID:                 providerPaymentID,
		QuoteID:            quote.ID,
		Date:               time.Now().UTC(),
		Status:             status,
		Amount:             quote.Total,
		Currency:           quote.Currency,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	metrics.PaymentsCreated.WithLabelValues(string(created.Status)).Inc()
	u.logger.Info("payment recorded",
		zap.String("quote_id", quote.ID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.Float64("amount", created.Amount),
		zap.String("currency", created.Currency))
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}
