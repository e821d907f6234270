package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	mock_interfaces "offertehub/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func photoForm(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestPhotoHandler_UploadPhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(storage *mock_interfaces.MockIPhotoStorage) *gin.Engine {
		h := NewPhotoHandler(storage)
		r := gin.New()
		r.POST("/v1/photos", h.UploadPhoto)
		return r
	}

	t.Run("storage not configured", func(t *testing.T) {
		h := NewPhotoHandler(nil)
		r := gin.New()
		r.POST("/v1/photos", h.UploadPhoto)

		body, contentType := photoForm(t, "photo", "kozijn.jpg", "image/jpeg", []byte("jpegdata"))
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp["error"] != "STORAGE_UNAVAILABLE" {
			t.Fatalf("unexpected error code: %v", resp["error"])
		}
	})

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIPhotoStorage(ctrl)

		body, contentType := photoForm(t, "attachment", "kozijn.jpg", "image/jpeg", []byte("jpegdata"))
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		newRouter(storage).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non image rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIPhotoStorage(ctrl)

		body, contentType := photoForm(t, "photo", "notes.pdf", "application/pdf", []byte("%PDF-1.4"))
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		newRouter(storage).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIPhotoStorage(ctrl)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/jpeg", "kozijn.jpg").
			Return("", errors.New("bucket unreachable"))

		body, contentType := photoForm(t, "photo", "kozijn.jpg", "image/jpeg", []byte("jpegdata"))
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		newRouter(storage).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIPhotoStorage(ctrl)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/jpeg", "kozijn.jpg").DoAndReturn(
			func(_ context.Context, data []byte, _ string, _ string) (string, error) {
				if !bytes.Equal(data, []byte("jpegdata")) {
					t.Fatalf("unexpected data: %q", data)
				}
				return "http://cdn/lead-photos/lead_abc.jpg", nil
			},
		)

		body, contentType := photoForm(t, "photo", "kozijn.jpg", "image/jpeg", []byte("jpegdata"))
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		newRouter(storage).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp["url"] != "http://cdn/lead-photos/lead_abc.jpg" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}
