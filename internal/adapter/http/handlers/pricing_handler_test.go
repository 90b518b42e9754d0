package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cnc_quote/internal/domain/entities"
	"cnc_quote/internal/usecase"
	mock_usecase "cnc_quote/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const instantQuoteBody = `{
	"part_id": "part-1",
	"material_id": "mat-1",
	"finish_id": "fin-1",
	"tolerance_id": "tol-1",
	"machine_class": "three_axis",
	"quantity": 4,
	"region": "us-east"
}`

func TestPricingHandler_InstantQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/price", h.InstantQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/price", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/price", h.InstantQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/price", bytes.NewBufferString(`{"part_id":"part-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unpriceable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/price", h.InstantQuote)

		uc.EXPECT().CalculateInstantQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteLineItem{}, usecase.ErrUnpriceable)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/price", bytes.NewBufferString(instantQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/price", h.InstantQuote)

		uc.EXPECT().CalculateInstantQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteLineItem{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/price", bytes.NewBufferString(instantQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/price", h.InstantQuote)

		uc.EXPECT().CalculateInstantQuote(gomock.Any(), gomock.AssignableToTypeOf(usecase.InstantQuoteInput{})).DoAndReturn(
			func(_ context.Context, in usecase.InstantQuoteInput) (entities.QuoteLineItem, error) {
				if in.PartID != "part-1" || in.Quantity != 4 || in.MachineClass != entities.MachineClassThreeAxis {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.QuoteLineItem{
					PartID:    "part-1",
					Quantity:  4,
					UnitPrice: 65.46,
					LineTotal: 261.82,
					Currency:  "USD",
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/price", bytes.NewBufferString(instantQuoteBody))
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
		if body["line_total"] != 261.82 || body["currency"] != "USD" {
			t.Fatalf("unexpected response: %v", body)
		}
	})
}
