package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront_settlement/internal/domain/entities"
	"storefront_settlement/internal/domain/events"
	mock_interfaces "storefront_settlement/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderFixture struct {
	repo    *mock_interfaces.MockIOrderRepository
	markers *mock_interfaces.MockIProcessedMarkerStore
	pub     *mock_interfaces.MockIEventPublisher
	uc      *OrderFulfillmentUseCase
}

func newOrderFixture(t *testing.T) orderFixture {
	ctrl := gomock.NewController(t)
	f := orderFixture{
		repo:    mock_interfaces.NewMockIOrderRepository(ctrl),
		markers: mock_interfaces.NewMockIProcessedMarkerStore(ctrl),
		pub:     mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	f.uc = NewOrderFulfillmentUseCase(f.repo, f.markers, f.pub)
	return f
}

func paymentSucceeded() events.PaymentSucceeded {
	return events.PaymentSucceeded{SchemaVersion: 1, OrderID: "O1", PaymentID: "O1", CustomerEmail: "a@x.com", Amount: 5000, Status: "completed"}
}

func TestOrderFulfillmentUseCase_ApplyPaymentSucceeded(t *testing.T) {
	t.Run("marks paid and announces pending", func(t *testing.T) {
		f := newOrderFixture(t)

		f.markers.EXPECT().IsProcessed(gomock.Any(), ConsumerOrders, "O1").Return(false, nil)
		f.repo.EXPECT().MarkPaid(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderRecord{})).DoAndReturn(
			func(_ context.Context, o entities.OrderRecord) (entities.OrderRecord, bool, error) {
				if o.ID != "O1" || o.Amount != 5000 || o.PaymentID != "O1" || o.CustomerEmail != "a@x.com" {
					t.Fatalf("unexpected order: %+v", o)
				}
				o.Status = entities.FulfillmentStatusPending
				o.PaymentStatus = entities.PaymentStatusCompleted
				return o, true, nil
			})
		f.pub.EXPECT().Publish(gomock.Any(), events.OrderStatusChanged{
			SchemaVersion: events.SchemaVersion, OrderID: "O1", Status: "pending", Source: events.SourceOrders,
		}).Return(nil)
		f.markers.EXPECT().MarkProcessed(gomock.Any(), ConsumerOrders, "O1").Return(nil)

		if err := f.uc.ApplyPaymentSucceeded(context.Background(), paymentSucceeded()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already processed", func(t *testing.T) {
		f := newOrderFixture(t)
		f.markers.EXPECT().IsProcessed(gomock.Any(), ConsumerOrders, "O1").Return(true, nil)

		if err := f.uc.ApplyPaymentSucceeded(context.Background(), paymentSucceeded()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("redelivery after crash keeps progressed status", func(t *testing.T) {
		f := newOrderFixture(t)

		f.markers.EXPECT().IsProcessed(gomock.Any(), ConsumerOrders, "O1").Return(false, nil)
		f.repo.EXPECT().MarkPaid(gomock.Any(), gomock.Any()).
			Return(entities.OrderRecord{ID: "O1", Status: entities.FulfillmentStatusOnTheWay}, false, nil)
		f.pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e events.Event) error {
				if e.(events.OrderStatusChanged).Status != "on_the_way" {
					t.Fatalf("unexpected event: %+v", e)
				}
				return nil
			})
		f.markers.EXPECT().MarkProcessed(gomock.Any(), ConsumerOrders, "O1").Return(errors.New("cache down"))

		if err := f.uc.ApplyPaymentSucceeded(context.Background(), paymentSucceeded()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non completed payment is permanent", func(t *testing.T) {
		f := newOrderFixture(t)
		e := paymentSucceeded()
		e.Status = "failed"

		err := f.uc.ApplyPaymentSucceeded(context.Background(), e)
		if !errors.Is(err, ErrPermanent) {
			t.Fatalf("expected ErrPermanent, got %v", err)
		}
	})

	t.Run("store error is transient", func(t *testing.T) {
		f := newOrderFixture(t)
		f.markers.EXPECT().IsProcessed(gomock.Any(), ConsumerOrders, "O1").Return(false, nil)
		f.repo.EXPECT().MarkPaid(gomock.Any(), gomock.Any()).Return(entities.OrderRecord{}, false, errors.New("db"))

		err := f.uc.ApplyPaymentSucceeded(context.Background(), paymentSucceeded())
		if err == nil || errors.Is(err, ErrPermanent) {
			t.Fatalf("expected transient error, got %v", err)
		}
	})

	t.Run("publish error leaves marker unset", func(t *testing.T) {
		f := newOrderFixture(t)
		f.markers.EXPECT().IsProcessed(gomock.Any(), ConsumerOrders, "O1").Return(false, nil)
		f.repo.EXPECT().MarkPaid(gomock.Any(), gomock.Any()).Return(entities.OrderRecord{ID: "O1", Status: entities.FulfillmentStatusPending}, true, nil)
		f.pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker"))
		f.markers.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		if err := f.uc.ApplyPaymentSucceeded(context.Background(), paymentSucceeded()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestOrderFulfillmentUseCase_ApplyStatusChanged(t *testing.T) {
	t.Run("own events are skipped", func(t *testing.T) {
		f := newOrderFixture(t)
		err := f.uc.ApplyStatusChanged(context.Background(), events.OrderStatusChanged{OrderID: "O1", Status: "pending", Source: events.SourceOrders})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mirrors delivery status", func(t *testing.T) {
		f := newOrderFixture(t)
		f.markers.EXPECT().IsProcessed(gomock.Any(), ConsumerOrdersStatus, "O1:delivered").Return(false, nil)
		f.repo.EXPECT().AdvanceStatus(gomock.Any(), "O1", entities.FulfillmentStatusDelivered).
			Return(entities.OrderRecord{ID: "O1", Status: entities.FulfillmentStatusDelivered}, true, nil)
		f.markers.EXPECT().MarkProcessed(gomock.Any(), ConsumerOrdersStatus, "O1:delivered").Return(nil)

		err := f.uc.ApplyStatusChanged(context.Background(), events.OrderStatusChanged{OrderID: "O1", Status: "delivered", Source: events.SourceDelivery})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("late assigned after picked up is acknowledged without rewinding", func(t *testing.T) {
		f := newOrderFixture(t)
		f.markers.EXPECT().IsProcessed(gomock.Any(), ConsumerOrdersStatus, "O1:assigned").Return(false, nil)
		f.repo.EXPECT().AdvanceStatus(gomock.Any(), "O1", entities.FulfillmentStatusAssigned).
			Return(entities.OrderRecord{ID: "O1", Status: entities.FulfillmentStatusPickedUp}, false, nil)
		f.markers.EXPECT().MarkProcessed(gomock.Any(), ConsumerOrdersStatus, "O1:assigned").Return(nil)

		err := f.uc.ApplyStatusChanged(context.Background(), events.OrderStatusChanged{OrderID: "O1", Status: "assigned", Source: events.SourceDelivery})
		if err != nil {
			t.Fatalf("stale status must be acknowledged, got %v", err)
		}
	})

	t.Run("unknown status is permanent", func(t *testing.T) {
		f := newOrderFixture(t)
		err := f.uc.ApplyStatusChanged(context.Background(), events.OrderStatusChanged{OrderID: "O1", Status: "lost", Source: events.SourceDelivery})
		if !errors.Is(err, ErrPermanent) {
			t.Fatalf("expected ErrPermanent, got %v", err)
		}
	})

	t.Run("order not yet known is retried", func(t *testing.T) {
		f := newOrderFixture(t)
		f.markers.EXPECT().IsProcessed(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().AdvanceStatus(gomock.Any(), "O1", entities.FulfillmentStatusPending).Return(entities.OrderRecord{}, false, nil)

		err := f.uc.ApplyStatusChanged(context.Background(), events.OrderStatusChanged{OrderID: "O1", Status: "pending", Source: events.SourceDelivery})
		if !errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrPermanent) {
			t.Fatalf("expected transient ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderFulfillmentUseCase_GetByID(t *testing.T) {
	f := newOrderFixture(t)

	if _, err := f.uc.GetByID(context.Background(), " "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	f.repo.EXPECT().GetByID(gomock.Any(), "O9").Return(entities.OrderRecord{}, nil)
	if _, err := f.uc.GetByID(context.Background(), "O9"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	f.repo.EXPECT().GetByID(gomock.Any(), "O1").Return(entities.OrderRecord{ID: "O1"}, nil)
	rec, err := f.uc.GetByID(context.Background(), "O1")
	if err != nil || rec.ID != "O1" {
		t.Fatalf("unexpected result: %+v err=%v", rec, err)
	}
}
