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

type deliveryFixture struct {
	repo         *mock_interfaces.MockIFulfillmentRepository
	participants *mock_interfaces.MockIOrderParticipantsRepository
	markers      *mock_interfaces.MockIProcessedMarkerStore
	pub          *mock_interfaces.MockIEventPublisher
	uc           *DeliveryUseCase
}

func newDeliveryFixture(t *testing.T) deliveryFixture {
	ctrl := gomock.NewController(t)
	f := deliveryFixture{
		repo:         mock_interfaces.NewMockIFulfillmentRepository(ctrl),
		participants: mock_interfaces.NewMockIOrderParticipantsRepository(ctrl),
		markers:      mock_interfaces.NewMockIProcessedMarkerStore(ctrl),
		pub:          mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	f.uc = NewDeliveryUseCase(f.repo, f.participants, f.markers, f.pub)
	return f
}

func orderReady() events.OrderReadyForFulfillment {
	return events.OrderReadyForFulfillment{
		SchemaVersion: 1,
		OrderID:       "O1",
		CustomerEmail: "a@x.com",
		CustomerAddress: entities.Address{
			Street: "1 Main St", City: "Pune", State: "MH", Zip: "411001", Country: "IN",
		},
		Amount: 5000,
		Status: "pending",
	}
}

func statusEvent(status string) events.OrderStatusChanged {
	return events.OrderStatusChanged{SchemaVersion: events.SchemaVersion, OrderID: "O1", Status: status, Source: events.SourceDelivery}
}

func TestDeliveryUseCase_ApplyOrderReady(t *testing.T) {
	t.Run("creates job and indexes owner", func(t *testing.T) {
		f := newDeliveryFixture(t)

		f.markers.EXPECT().IsProcessed(gomock.Any(), ConsumerDelivery, "O1").Return(false, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.FulfillmentRecord{})).DoAndReturn(
			func(_ context.Context, r entities.FulfillmentRecord) (entities.FulfillmentRecord, bool, error) {
				if r.OrderID != "O1" || r.Status != entities.FulfillmentStatusPending || r.DeliveryAddress.City != "Pune" {
					t.Fatalf("unexpected record: %+v", r)
				}
				return r, true, nil
			})
		f.participants.EXPECT().SetOwner(gomock.Any(), "O1", "a@x.com").Return(nil)
		f.pub.EXPECT().Publish(gomock.Any(), statusEvent("pending")).Return(nil)
		f.markers.EXPECT().MarkProcessed(gomock.Any(), ConsumerDelivery, "O1").Return(nil)

		if err := f.uc.ApplyOrderReady(context.Background(), orderReady()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("existing job is not recreated", func(t *testing.T) {
		f := newDeliveryFixture(t)

		existing := entities.FulfillmentRecord{OrderID: "O1", CustomerEmail: "a@x.com", Status: entities.FulfillmentStatusAssigned}
		f.markers.EXPECT().IsProcessed(gomock.Any(), ConsumerDelivery, "O1").Return(false, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(existing, false, nil)
		f.participants.EXPECT().SetOwner(gomock.Any(), "O1", "a@x.com").Return(nil)
		f.pub.EXPECT().Publish(gomock.Any(), statusEvent("assigned")).Return(nil)
		f.markers.EXPECT().MarkProcessed(gomock.Any(), ConsumerDelivery, "O1").Return(nil)

		if err := f.uc.ApplyOrderReady(context.Background(), orderReady()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate is acknowledged", func(t *testing.T) {
		f := newDeliveryFixture(t)
		f.markers.EXPECT().IsProcessed(gomock.Any(), ConsumerDelivery, "O1").Return(true, nil)

		if err := f.uc.ApplyOrderReady(context.Background(), orderReady()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("incomplete address is permanent", func(t *testing.T) {
		f := newDeliveryFixture(t)
		e := orderReady()
		e.CustomerAddress.Zip = ""

		if err := f.uc.ApplyOrderReady(context.Background(), e); !errors.Is(err, ErrPermanent) {
			t.Fatalf("expected ErrPermanent, got %v", err)
		}
	})

	t.Run("participants failure is retried", func(t *testing.T) {
		f := newDeliveryFixture(t)
		f.markers.EXPECT().IsProcessed(gomock.Any(), ConsumerDelivery, "O1").Return(false, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.FulfillmentRecord{OrderID: "O1", CustomerEmail: "a@x.com"}, true, nil)
		f.participants.EXPECT().SetOwner(gomock.Any(), "O1", "a@x.com").Return(errors.New("cache down"))

		err := f.uc.ApplyOrderReady(context.Background(), orderReady())
		if err == nil || errors.Is(err, ErrPermanent) {
			t.Fatalf("expected transient error, got %v", err)
		}
	})
}

func TestDeliveryUseCase_AssignPartner(t *testing.T) {
	t.Run("assigns pending job", func(t *testing.T) {
		f := newDeliveryFixture(t)

		f.repo.EXPECT().GetByOrderID(gomock.Any(), "O1").Return(entities.FulfillmentRecord{OrderID: "O1", Status: entities.FulfillmentStatusPending}, nil)
		f.repo.EXPECT().Transition(gomock.Any(), "O1", entities.FulfillmentStatusPending, entities.FulfillmentStatusAssigned, "d@x.com").
			Return(entities.FulfillmentRecord{OrderID: "O1", Status: entities.FulfillmentStatusAssigned, PartnerEmail: "d@x.com"}, nil)
		f.participants.EXPECT().SetPartner(gomock.Any(), "O1", "d@x.com").Return(nil)
		f.pub.EXPECT().Publish(gomock.Any(), statusEvent("assigned")).Return(nil)

		rec, err := f.uc.AssignPartner(context.Background(), "O1", " d@x.com ")
		if err != nil || rec.PartnerEmail != "d@x.com" {
			t.Fatalf("unexpected result: %+v err=%v", rec, err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newDeliveryFixture(t)
		if _, err := f.uc.AssignPartner(context.Background(), "O1", "nope"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("picked up job cannot be reassigned", func(t *testing.T) {
		f := newDeliveryFixture(t)
		f.repo.EXPECT().GetByOrderID(gomock.Any(), "O1").Return(entities.FulfillmentRecord{OrderID: "O1", Status: entities.FulfillmentStatusPickedUp}, nil)

		if _, err := f.uc.AssignPartner(context.Background(), "O1", "d@x.com"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newDeliveryFixture(t)
		f.repo.EXPECT().GetByOrderID(gomock.Any(), "O9").Return(entities.FulfillmentRecord{}, nil)

		if _, err := f.uc.AssignPartner(context.Background(), "O9", "d@x.com"); !errors.Is(err, ErrDeliveryNotFound) {
			t.Fatalf("expected ErrDeliveryNotFound, got %v", err)
		}
	})
}

func TestDeliveryUseCase_UpdateStatus(t *testing.T) {
	t.Run("advances one step", func(t *testing.T) {
		f := newDeliveryFixture(t)

		f.repo.EXPECT().GetByOrderID(gomock.Any(), "O1").Return(entities.FulfillmentRecord{OrderID: "O1", Status: entities.FulfillmentStatusOnTheWay}, nil)
		f.repo.EXPECT().Transition(gomock.Any(), "O1", entities.FulfillmentStatusOnTheWay, entities.FulfillmentStatusDelivered, "").
			Return(entities.FulfillmentRecord{OrderID: "O1", Status: entities.FulfillmentStatusDelivered}, nil)
		f.pub.EXPECT().Publish(gomock.Any(), statusEvent("delivered")).Return(errors.New("broker"))

		rec, err := f.uc.UpdateStatus(context.Background(), "O1", "delivered")
		if err != nil || rec.Status != entities.FulfillmentStatusDelivered {
			t.Fatalf("unexpected result: %+v err=%v", rec, err)
		}
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		f := newDeliveryFixture(t)
		f.repo.EXPECT().GetByOrderID(gomock.Any(), "O1").Return(entities.FulfillmentRecord{OrderID: "O1", Status: entities.FulfillmentStatusPending}, nil)

		if _, err := f.uc.UpdateStatus(context.Background(), "O1", "delivered"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("concurrent change", func(t *testing.T) {
		f := newDeliveryFixture(t)
		f.repo.EXPECT().GetByOrderID(gomock.Any(), "O1").Return(entities.FulfillmentRecord{OrderID: "O1", Status: entities.FulfillmentStatusAssigned}, nil)
		f.repo.EXPECT().Transition(gomock.Any(), "O1", entities.FulfillmentStatusAssigned, entities.FulfillmentStatusCancelled, "").
			Return(entities.FulfillmentRecord{}, nil)

		if _, err := f.uc.UpdateStatus(context.Background(), "O1", "cancelled"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("unknown and assigned statuses are validation errors", func(t *testing.T) {
		f := newDeliveryFixture(t)
		for _, s := range []string{"lost", "assigned"} {
			if _, err := f.uc.UpdateStatus(context.Background(), "O1", s); !errors.Is(err, ErrValidation) {
				t.Fatalf("status %s: expected ErrValidation, got %v", s, err)
			}
		}
	})
}
