package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"offertehub/internal/adapter/http/handlers/mocks"
	"offertehub/internal/domain/entities"
	"offertehub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func leadPayload() string {
	return `{
		"tenantId": "tenant-1",
		"formData": {
			"domain": "windows",
			"material": "kunststof",
			"glassType": "hr++",
			"frameCount": 8,
			"area": "15-20"
		},
		"customerInfo": {"name": "Jan de Vries", "email": "jan@example.com"}
	}`
}

func TestLeadHandler_CreateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockILeadUseCase) *gin.Engine {
		h := NewLeadHandler(uc)
		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)
		return r
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)

		w := post(newRouter(uc), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)

		w := post(newRouter(uc), `{"tenantId":"tenant-1","formData":{"domain":"floors","material":"pvc","area":"veel"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed appointment slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)

		w := post(newRouter(uc), `{"tenantId":"tenant-1","appointmentSlot":"morgen","formData":{"domain":"floors","material":"pvc","area":"10"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing field maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().Ingest(gomock.Any(), gomock.Any()).
			Return(entities.Lead{}, &usecase.MissingFieldError{Field: "email"})

		w := post(newRouter(uc), leadPayload())
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["error"] != "MISSING_REQUIRED_FIELD" {
			t.Fatalf("unexpected error code: %v", body["error"])
		}
	})

	t.Run("tenant not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(entities.Lead{}, usecase.ErrTenantNotFound)

		if w := post(newRouter(uc), leadPayload()); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("tenant inactive maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(entities.Lead{}, usecase.ErrTenantInactive)

		if w := post(newRouter(uc), leadPayload()); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("quota exceeded maps to 429", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(entities.Lead{}, usecase.ErrQuotaExceeded)

		if w := post(newRouter(uc), leadPayload()); w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(entities.Lead{}, errors.New("dynamo down"))

		if w := post(newRouter(uc), leadPayload()); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().Ingest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub usecase.LeadSubmission) (entities.Lead, error) {
				if sub.TenantID != "tenant-1" {
					t.Fatalf("unexpected tenant id %q", sub.TenantID)
				}
				if sub.Quote.Domain != entities.DomainWindows || sub.Quote.Area != 17.5 {
					t.Fatalf("unexpected quote input: %+v", sub.Quote)
				}
				if sub.Name != "Jan de Vries" || sub.Email != "jan@example.com" {
					t.Fatalf("unexpected customer: %q %q", sub.Name, sub.Email)
				}
				return entities.Lead{ID: "lead-1"}, nil
			},
		)

		w := post(newRouter(uc), leadPayload())
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["success"] != true || body["leadId"] != "lead-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestLeadHandler_GetLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{}, usecase.ErrLeadNotFound)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:id", h.GetLead)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "lead-1").
			Return(entities.Lead{ID: "lead-1", Status: entities.LeadStatusNew}, nil)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:id", h.GetLead)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["id"] != "lead-1" || body["status"] != "new" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestLeadHandler_ListLeads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing tenant id maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().ListByTenantID(gomock.Any(), "").Return(nil, usecase.ErrInvalidTenantID)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads", h.ListLeads)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").
			Return([]entities.Lead{{ID: "lead-1"}, {ID: "lead-2"}}, nil)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads", h.ListLeads)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads?tenant_id=tenant-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 leads, got %d", len(body))
		}
	})
}

func TestLeadHandler_UpdateLeadStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockILeadUseCase) *gin.Engine {
		h := NewLeadHandler(uc)
		r := gin.New()
		r.PATCH("/v1/leads/:id/status", h.UpdateLeadStatus)
		return r
	}

	patch := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/v1/leads/lead-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)

		if w := patch(newRouter(uc), `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "lead-1", entities.LeadStatus("archived")).
			Return(entities.Lead{}, usecase.ErrInvalidStatus)

		if w := patch(newRouter(uc), `{"status":"archived"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "lead-1", entities.LeadStatusContacted).
			Return(entities.Lead{ID: "lead-1", Status: entities.LeadStatusContacted}, nil)

		w := patch(newRouter(uc), `{"status":"contacted"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLeadHandler_BookAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockILeadUseCase) *gin.Engine {
		h := NewLeadHandler(uc)
		r := gin.New()
		r.PATCH("/v1/leads/:id/appointment", h.BookAppointment)
		return r
	}

	patch := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/v1/leads/lead-1/appointment", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("malformed slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)

		if w := patch(newRouter(uc), `{"appointmentSlot":"morgen"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().BookAppointment(gomock.Any(), "lead-1", gomock.Any()).
			Return(entities.Lead{}, usecase.ErrLeadNotFound)

		if w := patch(newRouter(uc), `{"appointmentSlot":"2026-09-10T14:00:00Z"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		slot := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
		uc.EXPECT().BookAppointment(gomock.Any(), "lead-1", slot).
			Return(entities.Lead{ID: "lead-1", AppointmentSlot: &slot}, nil)

		w := patch(newRouter(uc), `{"appointmentSlot":"2026-09-10T14:00:00Z"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
