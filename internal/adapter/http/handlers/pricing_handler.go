package handlers

import (
	"errors"
	"net/http"

	request "cnc_quote/internal/adapter/http/dto/request"
	response "cnc_quote/internal/adapter/http/dto/response"
	"cnc_quote/internal/usecase"
	"cnc_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// PricingHandler handles instant-quote pricing requests.
//
// Pricing is read-only: nothing is persisted until the caller turns the
// priced line into a quote.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// InstantQuote prices a single part configuration at a quantity.
func (h *PricingHandler) InstantQuote(c *gin.Context) {
	var payload request.InstantQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	line, err := h.usecase.CalculateInstantQuote(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteLineItem(line))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnpriceable):
		return pkg.NewDomainErrorSimple("UNPRICEABLE", "This configuration cannot be priced", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
