package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cnc_quote/internal/domain/entities"
	"cnc_quote/internal/usecase"
	mock_usecase "cnc_quote/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotePaymentHandler_PayQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.PayQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.PayQuote)

		uc.EXPECT().PayQuote(gomock.Any(), "q-1", gomock.Any()).Return(entities.QuotePayment{}, usecase.ErrQuoteNotAccepted)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("envelope payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.PayQuote)

		uc.EXPECT().PayQuote(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, quoteID string, payload json.RawMessage) (entities.QuotePayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("bad payload: %v", err)
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped provider payload, got %v", m)
				}
				return entities.QuotePayment{ID: "pay-1", QuoteID: quoteID, Status: entities.PaymentStatusApproved}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "pay-1" || body["status"] != "approved" {
			t.Fatalf("unexpected response: %v", body)
		}
	})
}

func TestQuotePaymentHandler_GetPaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("payment lookup by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/id/:payment_id", h.GetPaymentByID)

		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.QuotePayment{
			ID: "pay-1", QuoteID: "q-1", Status: entities.PaymentStatusApproved,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/id/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "pay-1" || body["quote_id"] != "q-1" {
			t.Fatalf("unexpected response: %v", body)
		}
	})

	t.Run("payment id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/id/:payment_id", h.GetPaymentByID)

		uc.EXPECT().GetByID(gomock.Any(), "pay-x").Return(entities.QuotePayment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/id/pay-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		older := time.Now().UTC().Add(-time.Hour)
		newer := time.Now().UTC()
		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{
			{ID: "pay-1", QuoteID: "q-1", Date: older, Status: entities.PaymentStatusDenied},
			{ID: "pay-2", QuoteID: "q-1", Date: newer, Status: entities.PaymentStatusApproved},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "pay-2" {
			t.Fatalf("expected latest payment, got %v", body)
		}
	})
}
