package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"preconstruct/internal/adapter/http/handlers/mocks"
	"preconstruct/internal/domain/entities"
	"preconstruct/internal/domain/estimating"
	"preconstruct/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank project name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"project_name":"   "}`))
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
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		now := time.Now().UTC()
		uc.EXPECT().CreateEstimate(gomock.Any(), "Office Tower", "", 148800.0, 121000.0).Return(entities.Estimate{
			ID:          "est-1",
			ProjectName: "Office Tower",
			GrossSF:     148800,
			NetSF:       121000,
			Rates:       entities.DefaultMarkupRates(),
			Status:      entities.EstimateStatusDraft,
			CreatedAt:   now,
			UpdatedAt:   now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"project_name":"Office Tower","gross_sf":148800,"net_sf":121000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["estimate_id"] != "est-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:estimate_id", h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with derived fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:estimate_id", h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{
			ID:    "est-1",
			Rates: entities.DefaultMarkupRates(),
			ApprovalSteps: []entities.ApprovalStep{
				{ID: "s1", Status: entities.StepStatusComplete},
				{ID: "s2", Status: entities.StepStatusPending},
			},
			Categories: []entities.CostCategory{{Name: "Sitework", Amount: 1000}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["progress_percent"] != 50.0 {
			t.Fatalf("expected progress 50, got %v", body["progress_percent"])
		}
		if body["current_step_index"] != 1.0 {
			t.Fatalf("expected current step 1, got %v", body["current_step_index"])
		}
		if body["categories_subtotal"] != 1000.0 {
			t.Fatalf("expected subtotal 1000, got %v", body["categories_subtotal"])
		}
	})
}

func TestEstimateHandler_ReplaceCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("negative amount rejected at dto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:estimate_id/categories", h.ReplaceCategories)

		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/est-1/categories", bytes.NewBufferString(`{"categories":[{"name":"Sitework","amount":-5}]}`))
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
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:estimate_id/categories", h.ReplaceCategories)

		uc.EXPECT().ReplaceCategories(gomock.Any(), "est-1", gomock.Len(1)).Return(entities.Estimate{ID: "est-1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/est-1/categories", bytes.NewBufferString(`{"categories":[{"name":"Sitework","amount":285000}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_UpdateRates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rate above one rejected at dto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:estimate_id/rates", h.UpdateRates)

		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/est-1/rates", bytes.NewBufferString(`{"overhead":1.5}`))
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
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:estimate_id/rates", h.UpdateRates)

		rates := entities.MarkupRates{Overhead: 0.12, Profit: 0.06, Contingency: 0.03}
		uc.EXPECT().UpdateRates(gomock.Any(), "est-1", rates, 150000.0, 120000.0).Return(entities.Estimate{ID: "est-1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/est-1/rates", bytes.NewBufferString(`{"overhead":0.12,"profit":0.06,"contingency":0.03,"gross_sf":150000,"net_sf":120000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetBreakdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	r := gin.New()
	r.GET("/v1/estimates/:estimate_id/breakdown", h.GetBreakdown)

	uc.EXPECT().GetBreakdown(gomock.Any(), "est-1").Return(estimating.Breakdown{
		Subtotal: 1000, Overhead: 100, Profit: 80, Contingency: 50, Total: 1230, MarkupPercentage: 23,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1/breakdown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["total"] != 1230.0 || body["markup_percentage"] != 23.0 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestEstimateHandler_ApprovalActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:estimate_id/approve", h.ApproveCurrentStep)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/approve", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:estimate_id/approve", h.ApproveCurrentStep)

		uc.EXPECT().ApproveCurrentStep(gomock.Any(), "est-1", "dana").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusInReview}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/approve", bytes.NewBufferString(`{"actor":"dana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject with no actionable step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:estimate_id/reject", h.RejectCurrentStep)

		uc.EXPECT().RejectCurrentStep(gomock.Any(), "est-1").Return(entities.Estimate{}, usecase.ErrNoActionableStep)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrInvalidEstimateID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrInvalidMarkupRates); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrNoActionableStep); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEstimateError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
