package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"momo_gateway/internal/adapter/http/handlers/mocks"
	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func setupPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentUseCase, *mocks.MockIReconciliationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	reconciler := mocks.NewMockIReconciliationUseCase(ctrl)
	h := NewPaymentHandler(uc, reconciler)

	router := gin.New()
	router.POST("/v1/payments", h.CreatePayment)
	router.GET("/v1/payments/pending", h.ListPendingPayments)
	router.POST("/v1/payments/reconcile", h.Reconcile)
	router.GET("/v1/payments/:reference_id", h.GetPaymentStatus)
	return router, uc, reconciler
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePayment(t *testing.T) {
	t.Run("accepted payment returns 202 with the reference", func(t *testing.T) {
		router, uc, _ := setupPaymentRouter(t)

		uc.EXPECT().
			InitiateAndTrack(gomock.Any(), "0961234567", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal) (entities.PaymentOutcome, error) {
				if !amount.Equal(decimal.NewFromInt(150)) {
					t.Errorf("amount = %s, want 150", amount)
				}
				return entities.PaymentOutcome{ReferenceID: "ref-1", Accepted: true}, nil
			})

		w := postJSON(router, "/v1/payments", `{"phone_number":"0961234567","amount":150}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("status = %d, want 202: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["reference_id"] != "ref-1" || resp["status"] != "PENDING" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("malformed payload returns 400", func(t *testing.T) {
		router, _, _ := setupPaymentRouter(t)

		w := postJSON(router, "/v1/payments", `{"amount":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unsupported provider returns 400", func(t *testing.T) {
		router, _, _ := setupPaymentRouter(t)

		w := postJSON(router, "/v1/payments", `{"provider":"airtel","phone_number":"0961234567","amount":150}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
		}
	})

	t.Run("non-positive amount returns 400", func(t *testing.T) {
		router, _, _ := setupPaymentRouter(t)

		w := postJSON(router, "/v1/payments", `{"phone_number":"0961234567","amount":-5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
		}
	})

	t.Run("provider rejection returns 422", func(t *testing.T) {
		router, uc, _ := setupPaymentRouter(t)

		uc.EXPECT().
			InitiateAndTrack(gomock.Any(), "0961234567", gomock.Any()).
			Return(entities.PaymentOutcome{ReferenceID: "ref-1"}, fmt.Errorf("%w: payer limit reached", usecase.ErrPaymentRejected))

		w := postJSON(router, "/v1/payments", `{"phone_number":"0961234567","amount":150}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422: %s", w.Code, w.Body.String())
		}
	})

	t.Run("provider outage returns 502", func(t *testing.T) {
		router, uc, _ := setupPaymentRouter(t)

		uc.EXPECT().
			InitiateAndTrack(gomock.Any(), "0961234567", gomock.Any()).
			Return(entities.PaymentOutcome{}, fmt.Errorf("%w: connection refused", usecase.ErrProviderUnavailable))

		w := postJSON(router, "/v1/payments", `{"phone_number":"0961234567","amount":150}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502: %s", w.Code, w.Body.String())
		}
	})

	t.Run("degraded tracking still acknowledges the accepted payment", func(t *testing.T) {
		router, uc, _ := setupPaymentRouter(t)

		uc.EXPECT().
			InitiateAndTrack(gomock.Any(), "0961234567", gomock.Any()).
			Return(
				entities.PaymentOutcome{ReferenceID: "ref-1", Accepted: true},
				fmt.Errorf("%w: dynamodb unavailable", usecase.ErrTrackingFailed),
			)

		w := postJSON(router, "/v1/payments", `{"phone_number":"0961234567","amount":150}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("status = %d, want 202: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["reference_id"] != "ref-1" {
			t.Fatalf("response lost the reference: %v", resp)
		}
		if msg, _ := resp["message"].(string); msg == "" {
			t.Fatal("degraded tracking must carry an explanatory message")
		}
	})
}

func TestGetPaymentStatus(t *testing.T) {
	t.Run("returns the provider status", func(t *testing.T) {
		router, uc, _ := setupPaymentRouter(t)

		uc.EXPECT().
			GetStatus(gomock.Any(), "ref-1").
			Return(entities.PaymentStatusSuccessful, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ref-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["reference_id"] != "ref-1" || resp["status"] != "SUCCESSFUL" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("unknown reference returns 404", func(t *testing.T) {
		router, uc, _ := setupPaymentRouter(t)

		uc.EXPECT().
			GetStatus(gomock.Any(), "ref-gone").
			Return(entities.PaymentStatus(""), fmt.Errorf("%w: momo requesttopay status", usecase.ErrPaymentNotFound))

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ref-gone", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
		}
	})
}

func TestListPendingPayments(t *testing.T) {
	router, uc, _ := setupPaymentRouter(t)

	uc.EXPECT().
		ListPending(gomock.Any()).
		Return([]entities.PendingPayment{
			{ReferenceID: "ref-1", Status: entities.PaymentStatusPending, CreatedAt: time.Now().UTC()},
			{ReferenceID: "ref-2", Status: entities.PaymentStatusPending, CreatedAt: time.Now().UTC()},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/pending", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Count    int `json:"count"`
		Payments []struct {
			ReferenceID string `json:"reference_id"`
		} `json:"payments"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 2 || len(resp.Payments) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestReconcile(t *testing.T) {
	t.Run("runs a sweep and returns 202", func(t *testing.T) {
		router, _, reconciler := setupPaymentRouter(t)

		reconciler.EXPECT().RunSweep(gomock.Any()).Return(nil)

		w := postJSON(router, "/v1/payments/reconcile", "")
		if w.Code != http.StatusAccepted {
			t.Fatalf("status = %d, want 202: %s", w.Code, w.Body.String())
		}
	})

	t.Run("sweep failure returns 500", func(t *testing.T) {
		router, _, reconciler := setupPaymentRouter(t)

		reconciler.EXPECT().RunSweep(gomock.Any()).Return(errors.New("store unavailable"))

		w := postJSON(router, "/v1/payments/reconcile", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500: %s", w.Code, w.Body.String())
		}
	})
}
