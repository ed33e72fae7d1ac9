package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"storefront_settlement/internal/adapter/http/handlers/mocks"
	"storefront_settlement/internal/domain/entities"
	"storefront_settlement/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDeliveryRouter(t *testing.T) (*gin.Engine, *mocks.MockIDeliveryUseCase, *mocks.MockIOrderFulfillmentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	deliveries := mocks.NewMockIDeliveryUseCase(ctrl)
	orders := mocks.NewMockIOrderFulfillmentUseCase(ctrl)
	dh := NewDeliveryHandler(deliveries)
	oh := NewOrderHandler(orders)

	r := gin.New()
	r.GET("/v1/orders/:order_id", oh.GetOrderByID)
	r.GET("/v1/deliveries/:order_id", dh.GetDelivery)
	r.POST("/v1/deliveries/:order_id/assign", dh.AssignPartner)
	r.PATCH("/v1/deliveries/:order_id/status", dh.UpdateStatus)
	return r, deliveries, orders
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, _, orders := newDeliveryRouter(t)
		orders.EXPECT().GetByID(gomock.Any(), "O404").Return(entities.OrderRecord{}, usecase.ErrOrderNotFound)

		w := doJSON(r, http.MethodGet, "/v1/orders/O404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, _, orders := newDeliveryRouter(t)
		orders.EXPECT().GetByID(gomock.Any(), "O1").Return(entities.OrderRecord{
			ID: "O1", Status: entities.FulfillmentStatusPending, PaymentStatus: entities.PaymentStatusCompleted,
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/orders/O1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"paymentStatus":"completed"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDeliveryHandler_GetDelivery(t *testing.T) {
	r, deliveries, _ := newDeliveryRouter(t)
	deliveries.EXPECT().GetByOrderID(gomock.Any(), "O1").Return(entities.FulfillmentRecord{}, errors.New("dynamo down"))

	w := doJSON(r, http.MethodGet, "/v1/deliveries/O1", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "dynamo") {
		t.Fatalf("internal cause leaked: %s", w.Body.String())
	}
}

func TestDeliveryHandler_AssignPartner(t *testing.T) {
	t.Run("missing partner", func(t *testing.T) {
		r, _, _ := newDeliveryRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/deliveries/O1/assign", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		r, deliveries, _ := newDeliveryRouter(t)
		deliveries.EXPECT().AssignPartner(gomock.Any(), "O1", "rider@x.com").
			Return(entities.FulfillmentRecord{}, fmt.Errorf("%w: delivered", usecase.ErrInvalidTransition))

		w := doJSON(r, http.MethodPost, "/v1/deliveries/O1/assign", `{"partnerEmail":"rider@x.com"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, deliveries, _ := newDeliveryRouter(t)
		deliveries.EXPECT().AssignPartner(gomock.Any(), "O1", "rider@x.com").Return(entities.FulfillmentRecord{
			OrderID: "O1", Status: entities.FulfillmentStatusAssigned, PartnerEmail: "rider@x.com",
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/deliveries/O1/assign", `{"partnerEmail":"rider@x.com"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"status":"assigned"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDeliveryHandler_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		r, deliveries, _ := newDeliveryRouter(t)
		deliveries.EXPECT().UpdateStatus(gomock.Any(), "O1", "teleported").
			Return(entities.FulfillmentRecord{}, fmt.Errorf("%w: unknown status", usecase.ErrValidation))

		w := doJSON(r, http.MethodPatch, "/v1/deliveries/O1/status", `{"status":"teleported"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, deliveries, _ := newDeliveryRouter(t)
		deliveries.EXPECT().UpdateStatus(gomock.Any(), "O404", "picked_up").
			Return(entities.FulfillmentRecord{}, usecase.ErrDeliveryNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/deliveries/O404/status", `{"status":"picked_up"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, deliveries, _ := newDeliveryRouter(t)
		deliveries.EXPECT().UpdateStatus(gomock.Any(), "O1", "picked_up").
			Return(entities.FulfillmentRecord{OrderID: "O1", Status: entities.FulfillmentStatusPickedUp}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/deliveries/O1/status", `{"status":"picked_up"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
