package routes

import (
	"cnc_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathParts    = "/parts"
	PathPayments = "/payments"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	pricingHandler *handlers.PricingHandler,
	quoteHandler *handlers.QuoteHandler,
	partHandler *handlers.PartHandler,
	paymentHandler *handlers.QuotePaymentHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		// Instant pricing is stateless; everything else is persisted.
		quotes.POST("/price", pricingHandler.InstantQuote)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.GET("/customer/:customer_id", quoteHandler.ListQuotesByCustomer)
		quotes.PATCH("/:quote_id/reprice", quoteHandler.RepriceQuote)
		quotes.PATCH("/:quote_id/submit", quoteHandler.SubmitQuote)
		quotes.PATCH("/:quote_id/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/:quote_id/reject", quoteHandler.RejectQuote)
	}

	parts := rg.Group(PathParts)
	{
		parts.POST("", partHandler.RegisterPart)
		parts.GET("/:part_id", partHandler.GetPart)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.PayQuote)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
		payments.GET("/id/:payment_id", paymentHandler.GetPaymentByID)
	}
}
