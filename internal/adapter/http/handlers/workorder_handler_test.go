package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"motofix/internal/adapter/http/handlers/mocks"
	"motofix/internal/adapter/http/middleware"
	"motofix/internal/domain/entities"
	"motofix/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func authenticatedRouter(userID string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	})
	return r
}

func TestWorkOrderHandler_RequestChange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWorkOrderHandler(mocks.NewMockIWorkOrderUseCase(ctrl), mocks.NewMockISettlementUseCase(ctrl))

		r := authenticatedRouter("owner-1")
		r.POST("/v1/orders/:id/changes", h.RequestChange)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/wo-1/changes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-numeric additional cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWorkOrderHandler(mocks.NewMockIWorkOrderUseCase(ctrl), mocks.NewMockISettlementUseCase(ctrl))

		r := authenticatedRouter("owner-1")
		r.POST("/v1/orders/:id/changes", h.RequestChange)

		body := `{"description":"replace fork seals","justification":"the fork seals are leaking badly","additional_cost":"ninety"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/wo-1/changes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success resolves the caller's workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wo := mocks.NewMockIWorkOrderUseCase(ctrl)
		settlement := mocks.NewMockISettlementUseCase(ctrl)
		h := NewWorkOrderHandler(wo, settlement)

		r := authenticatedRouter("owner-1")
		r.POST("/v1/orders/:id/changes", h.RequestChange)

		settlement.EXPECT().GetWorkshopByOwner(gomock.Any(), "owner-1").
			Return(entities.Workshop{ID: "ws-1", OwnerUserID: "owner-1"}, nil)
		wo.EXPECT().RequestChange(gomock.Any(), "ws-1", "wo-1", "replace fork seals", "the fork seals are leaking badly", decimal.NewFromInt(90)).
			Return(entities.ChangeRequest{ID: "cr-1", WorkOrderID: "wo-1", Status: entities.ChangeRequestStatusPending, AdditionalCost: decimal.NewFromInt(90)}, nil)

		body := `{"description":"replace fork seals","justification":"the fork seals are leaking badly","additional_cost":"90"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/wo-1/changes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "cr-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestWorkOrderHandler_Complete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked by pending changes maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wo := mocks.NewMockIWorkOrderUseCase(ctrl)
		settlement := mocks.NewMockISettlementUseCase(ctrl)
		h := NewWorkOrderHandler(wo, settlement)

		r := authenticatedRouter("owner-1")
		r.PATCH("/v1/orders/:id/complete", h.Complete)

		settlement.EXPECT().GetWorkshopByOwner(gomock.Any(), "owner-1").
			Return(entities.Workshop{ID: "ws-1"}, nil)
		wo.EXPECT().Complete(gomock.Any(), "ws-1", "wo-1").
			Return(entities.WorkOrder{}, pkg.NewBlockedError("wo-1", 2))

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/wo-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var resp pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Code != "PENDING_CHANGE_REQUESTS" || resp.Kind != "blocked" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wo := mocks.NewMockIWorkOrderUseCase(ctrl)
		settlement := mocks.NewMockISettlementUseCase(ctrl)
		h := NewWorkOrderHandler(wo, settlement)

		r := authenticatedRouter("owner-1")
		r.PATCH("/v1/orders/:id/complete", h.Complete)

		settlement.EXPECT().GetWorkshopByOwner(gomock.Any(), "owner-1").
			Return(entities.Workshop{ID: "ws-1"}, nil)
		wo.EXPECT().Complete(gomock.Any(), "ws-1", "wo-1").
			Return(entities.WorkOrder{
				ID: "wo-1", Status: entities.WorkOrderStatusCompleted,
				TotalAgreed: decimal.NewFromInt(300), TotalFinal: decimal.NewFromInt(350),
			}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/wo-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["total_final"] != "350.00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestWorkOrderHandler_DecideChange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve flag is mandatory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWorkOrderHandler(mocks.NewMockIWorkOrderUseCase(ctrl), mocks.NewMockISettlementUseCase(ctrl))

		r := authenticatedRouter("rider-1")
		r.PATCH("/v1/orders/changes/:id", h.DecideChange)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/changes/cr-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wo := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(wo, mocks.NewMockISettlementUseCase(ctrl))

		r := authenticatedRouter("rider-1")
		r.PATCH("/v1/orders/changes/:id", h.DecideChange)

		wo.EXPECT().DecideChange(gomock.Any(), "rider-1", "cr-1", false).
			Return(entities.ChangeRequest{ID: "cr-1", Status: entities.ChangeRequestStatusRejected}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/changes/cr-1", bytes.NewBufferString(`{"approve":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
