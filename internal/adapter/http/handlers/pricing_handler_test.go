package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"offertehub/internal/adapter/http/handlers/mocks"
	"offertehub/internal/domain/entities"
	"offertehub/internal/domain/pricing"
	"offertehub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPricingHandler_UpsertPricing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIQuoteUseCase) *gin.Engine {
		h := NewPricingHandler(uc)
		r := gin.New()
		r.PUT("/v1/pricing/:tenant_id/:domain", h.UpsertPricing)
		return r
	}

	put := func(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	validBody := `{"rates":{"material_rate_per_m2":{"pvc":60},"installation_per_m2":12,"minimum_order_value":150}}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		if w := put(newRouter(uc), "/v1/pricing/tenant-1/floors", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown domain maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().UpsertRates(gomock.Any(), "tenant-1", entities.ProjectDomain("roofs"), gomock.Any()).
			Return(pricing.ErrUnknownDomain)

		w := put(newRouter(uc), "/v1/pricing/tenant-1/roofs", validBody)
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

	t.Run("invalid table maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().UpsertRates(gomock.Any(), "tenant-1", entities.DomainFloors, gomock.Any()).
			Return(usecase.ErrInvalidRateTable)

		if w := put(newRouter(uc), "/v1/pricing/tenant-1/floors", validBody); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().UpsertRates(gomock.Any(), "tenant-1", entities.DomainFloors, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.ProjectDomain, table entities.RateTable) error {
				if table.MaterialRatePerM2["pvc"] != 60 || table.MinimumOrderValue != 150 {
					t.Fatalf("unexpected table: %+v", table)
				}
				return nil
			},
		)

		w := put(newRouter(uc), "/v1/pricing/tenant-1/floors", validBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["minimum_order_value"] != 150.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPricingHandler_GetPricing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("resolves effective rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().ResolveRates(gomock.Any(), "tenant-1", entities.DomainFloors).
			Return(entities.RateTable{
				MaterialRatePerM2: map[entities.MaterialKind]float64{"pvc": 60},
				MinimumOrderValue: 150,
			}, nil)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/pricing/:tenant_id/:domain", h.GetPricing)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/tenant-1/floors", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["minimum_order_value"] != 150.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unknown domain maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().ResolveRates(gomock.Any(), "tenant-1", entities.ProjectDomain("roofs")).
			Return(entities.RateTable{}, pricing.ErrUnknownDomain)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/pricing/:tenant_id/:domain", h.GetPricing)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/tenant-1/roofs", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
