package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fabricmeasure/internal/adapter/http/handlers/mocks"
	"fabricmeasure/internal/domain/entities"
	"fabricmeasure/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSessionHandler_SelectMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/method", h.SelectMethod)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/method", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/method", h.SelectMethod)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/method", bytes.NewBufferString(`{"method":"laser"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if body["code"] != "INVALID_METHOD" {
			t.Fatalf("expected INVALID_METHOD, got %q", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/method", h.SelectMethod)

		uc.EXPECT().SelectMethod(gomock.Any(), entities.MethodManual).Return(entities.SessionSnapshot{State: entities.SessionStateMethodSelected, Method: entities.MethodManual}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/method", bytes.NewBufferString(`{"method":"manual"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if body["state"] != "method_selected" || body["method"] != "manual" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestSessionHandler_CaptureManual(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("method mismatch maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/capture/manual", h.CaptureManual)

		uc.EXPECT().CaptureManual(gomock.Any(), 120.0, 80.0).Return(entities.MeasurementDraft{}, usecase.ErrMethodMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/capture/manual", bytes.NewBufferString(`{"width":120,"height":80}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid dimensions map to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/capture/manual", h.CaptureManual)

		uc.EXPECT().CaptureManual(gomock.Any(), 120.0, -3.0).Return(entities.MeasurementDraft{}, usecase.ErrInvalidDimensions)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/capture/manual", bytes.NewBufferString(`{"width":120,"height":-3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/capture/manual", h.CaptureManual)

		now := time.Now().UTC()
		uc.EXPECT().CaptureManual(gomock.Any(), 120.0, 80.0).Return(entities.MeasurementDraft{Width: 120, Height: 80, Method: entities.MethodManual, CapturedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/capture/manual", bytes.NewBufferString(`{"width":120,"height":80}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if body["width"] != 120.0 || body["height"] != 80.0 || body["method"] != "manual" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestSessionHandler_CaptureUpload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not an image maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/capture/upload", h.CaptureUpload)

		uc.EXPECT().CaptureUpload(gomock.Any(), gomock.Any()).Return(entities.MeasurementDraft{}, usecase.ErrNotAnImage)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/capture/upload", bytes.NewBufferString(`{"filename":"notes.pdf","content_type":"application/pdf"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/capture/upload", h.CaptureUpload)

		uc.EXPECT().CaptureUpload(gomock.Any(), entities.UploadedFile{Filename: "fabric.png", ContentType: "image/png", SizeBytes: 1024}).
			Return(entities.MeasurementDraft{Width: 150, Height: 100, Method: entities.MethodUpload}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/capture/upload", bytes.NewBufferString(`{"filename":"fabric.png","content_type":"image/png","size_bytes":1024}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSessionHandler_ARFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("camera unavailable maps to forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/ar/start", h.StartAR)

		uc.EXPECT().StartAR(gomock.Any()).Return(entities.SessionSnapshot{}, usecase.ErrCameraUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/ar/start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if body["code"] != "CAMERA_UNSUPPORTED" {
			t.Fatalf("expected CAMERA_UNSUPPORTED, got %q", body["code"])
		}
	})

	t.Run("capture without active camera maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/capture/ar", h.CaptureAR)

		uc.EXPECT().CaptureAR(gomock.Any()).Return(entities.MeasurementDraft{}, usecase.ErrCameraNotActive)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/capture/ar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("capture success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/capture/ar", h.CaptureAR)

		uc.EXPECT().CaptureAR(gomock.Any()).Return(entities.MeasurementDraft{Width: 42.5, Height: 31.2, Method: entities.MethodAR}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/capture/ar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSessionHandler_GetDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.GET("/v1/session/draft", h.GetDraft)

		uc.EXPECT().CurrentDraft().Return(entities.MeasurementDraft{}, false)

		req := httptest.NewRequest(http.MethodGet, "/v1/session/draft", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("draft present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.GET("/v1/session/draft", h.GetDraft)

		uc.EXPECT().CurrentDraft().Return(entities.MeasurementDraft{Width: 150, Height: 100, Method: entities.MethodUpload}, true)

		req := httptest.NewRequest(http.MethodGet, "/v1/session/draft", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSessionHandler_Save(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty name maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/save", h.Save)

		uc.EXPECT().Save(gomock.Any(), "", "", "").Return(entities.HistoryRecord{}, usecase.ErrEmptyName)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/save", bytes.NewBufferString(`{"name":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/save", h.Save)

		now := time.Now().UTC()
		uc.EXPECT().Save(gomock.Any(), "Curtain", "Velvet", "").Return(entities.HistoryRecord{
			ID:        "measurement-abc",
			Name:      "Curtain",
			Type:      "Velvet",
			Width:     120,
			Height:    80,
			Method:    entities.MethodManual,
			Timestamp: now,
			Estimates: entities.Estimates{Area: 0.96, Cost: 12.47},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/save", bytes.NewBufferString(`{"name":"Curtain","type":"Velvet"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if body["id"] != "measurement-abc" || body["name"] != "Curtain" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestSessionHandler_Abandon(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISessionUseCase(ctrl)
	h := NewSessionHandler(uc)

	r := gin.New()
	r.POST("/v1/session/abandon", h.Abandon)

	uc.EXPECT().Abandon(gomock.Any()).Return(entities.SessionSnapshot{State: entities.SessionStateIdle})

	req := httptest.NewRequest(http.MethodPost, "/v1/session/abandon", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["state"] != "idle" {
		t.Fatalf("expected idle state, got %v", body["state"])
	}
}
