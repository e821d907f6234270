package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"offertehub/internal/adapter/http/handlers/mocks"
	"offertehub/internal/domain/entities"
	"offertehub/internal/domain/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIQuoteUseCase) *gin.Engine {
		h := NewQuoteHandler(uc)
		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)
		return r
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		if w := post(newRouter(uc), "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		if w := post(newRouter(uc), `{"domain":"floors"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		if w := post(newRouter(uc), `{"domain":"floors","material":"pvc","area":"veel"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown domain maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Quote(gomock.Any(), "", gomock.Any()).
			Return(entities.PriceBreakdown{}, pricing.ErrUnknownDomain)

		w := post(newRouter(uc), `{"domain":"roofs","material":"pvc","area":"10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["error"] != "UNKNOWN_DOMAIN" {
			t.Fatalf("unexpected error code: %v", body["error"])
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.PriceBreakdown{}, errors.New("dynamo down"))

		if w := post(newRouter(uc), `{"domain":"floors","material":"pvc","area":"10"}`); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Quote(gomock.Any(), "tenant-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req entities.QuoteRequest) (entities.PriceBreakdown, error) {
				if req.Domain != entities.DomainFloors || req.Area != 10 {
					t.Fatalf("unexpected quote input: %+v", req)
				}
				return entities.PriceBreakdown{
					Currency: "EUR",
					Items: []entities.LineItem{
						{Label: "pvc vloer", Amount: 450},
					},
					Total: 450,
				}, nil
			},
		)

		w := post(newRouter(uc), `{"tenantId":"tenant-1","domain":"floors","material":"pvc","area":"10"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["total"] != 450.0 || body["currency"] != "EUR" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
