package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"storefront_settlement/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	name   string
	mu     sync.Mutex
	frames []Frame
	full   bool
	closed bool
}

func newTransport(name string) *fakeTransport { return &fakeTransport{name: name} }

func (f *fakeTransport) Send(frame []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.full {
		return false
	}
	var fr Frame
	if err := json.Unmarshal(frame, &fr); err != nil {
		panic(err)
	}
	f.frames = append(f.frames, fr)
	return true
}

func (f *fakeTransport) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *fakeTransport) received() []Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Frame(nil), f.frames...)
}

func (f *fakeTransport) statuses(t *testing.T) []OrderStatus {
	t.Helper()
	var out []OrderStatus
	for _, fr := range f.received() {
		if fr.Event != EventOrderStatusUpdated {
			continue
		}
		var s OrderStatus
		require.NoError(t, json.Unmarshal(fr.Data, &s))
		out = append(out, s)
	}
	return out
}

func (f *fakeTransport) errorMessages(t *testing.T) []string {
	t.Helper()
	var out []string
	for _, fr := range f.received() {
		if fr.Event != EventError {
			continue
		}
		var e ErrorMessage
		require.NoError(t, json.Unmarshal(fr.Data, &e))
		out = append(out, e.Message)
	}
	return out
}

type staticParticipants struct {
	byOrder map[string]entities.OrderParticipants
	err     error
}

func (s staticParticipants) Get(_ context.Context, orderID string) (entities.OrderParticipants, error) {
	if s.err != nil {
		return entities.OrderParticipants{}, s.err
	}
	return s.byOrder[orderID], nil
}

func participantsFor(owner, partner string) staticParticipants {
	return staticParticipants{byOrder: map[string]entities.OrderParticipants{
		"O1": {OrderID: "O1", Owner: owner, Partner: partner},
	}}
}

func TestHub_DisconnectKeepsOtherHandles(t *testing.T) {
	h := New(ModeGlobal, nil)
	h1, h2 := newTransport("h1"), newTransport("h2")

	h.Connect("a@x.com", RoleCustomer, h1)
	h.Connect("a@x.com", RoleCustomer, h2)
	require.Equal(t, 2, h.Registered("a@x.com", RoleCustomer))

	h.Disconnect(h1)
	assert.Equal(t, 1, h.Registered("a@x.com", RoleCustomer))

	delivered := h.NotifyOrderStatus(context.Background(), "O1", "delivered")
	assert.Equal(t, 1, delivered)
	assert.Empty(t, h1.received())
	assert.Equal(t, []OrderStatus{{OrderID: "O1", Status: "delivered"}}, h2.statuses(t))

	h.Disconnect(h2)
	h.Disconnect(h2)
	assert.Equal(t, 0, h.Registered("a@x.com", RoleCustomer))
	assert.Empty(t, h.byKey)
	assert.Empty(t, h.byTransport)
}

func TestHub_GlobalModeReachesEveryone(t *testing.T) {
	h := New(ModeGlobal, nil)
	customer, admin := newTransport("customer"), newTransport("admin")
	h.Connect("a@x.com", RoleCustomer, customer)
	h.Connect("b@x.com", RoleAdmin, admin)

	h.NotifyOrderStatus(context.Background(), "O1", "delivered")

	want := []OrderStatus{{OrderID: "O1", Status: "delivered"}}
	assert.Equal(t, want, customer.statuses(t))
	assert.Equal(t, want, admin.statuses(t))
}

func TestHub_TargetedMode(t *testing.T) {
	owner, other := newTransport("owner"), newTransport("other")
	partner, otherPartner := newTransport("partner"), newTransport("otherPartner")
	admin := newTransport("admin")

	h := New(ModeTargeted, participantsFor("A@x.com", "d@x.com"))
	h.Connect("a@x.com", RoleCustomer, owner)
	h.Connect("c@x.com", RoleCustomer, other)
	h.Connect("d@x.com", RoleDeliveryPartner, partner)
	h.Connect("e@x.com", RoleDeliveryPartner, otherPartner)
	h.Connect("b@x.com", RoleAdmin, admin)

	delivered := h.NotifyOrderStatus(context.Background(), "O1", "on_the_way")
	assert.Equal(t, 3, delivered)
	assert.Len(t, owner.statuses(t), 1)
	assert.Len(t, partner.statuses(t), 1)
	assert.Len(t, admin.statuses(t), 1)
	assert.Empty(t, other.received())
	assert.Empty(t, otherPartner.received())

	t.Run("owner registered as partner gets nothing as partner", func(t *testing.T) {
		impostor := newTransport("impostor")
		h.Connect("a@x.com", RoleDeliveryPartner, impostor)
		h.NotifyOrderStatus(context.Background(), "O1", "delivered")
		assert.Empty(t, impostor.received())
	})
}

func TestHub_TargetedModeUnknownOrderReachesAdminsOnly(t *testing.T) {
	for name, reader := range map[string]ParticipantsReader{
		"unknown order": participantsFor("", ""),
		"lookup error":  staticParticipants{err: errors.New("cache down")},
		"no index":      nil,
	} {
		t.Run(name, func(t *testing.T) {
			h := New(ModeTargeted, reader)
			customer, admin := newTransport("customer"), newTransport("admin")
			h.Connect("a@x.com", RoleCustomer, customer)
			h.Connect("b@x.com", RoleAdmin, admin)

			h.NotifyOrderStatus(context.Background(), "O1", "pending")
			assert.Empty(t, customer.received())
			assert.Len(t, admin.statuses(t), 1)
		})
	}
}

func TestHub_SlowConnectionIsDropped(t *testing.T) {
	h := New(ModeGlobal, nil)
	slow, fast := newTransport("slow"), newTransport("fast")
	slow.full = true
	h.Connect("a@x.com", RoleCustomer, slow)
	h.Connect("a@x.com", RoleCustomer, fast)

	delivered := h.NotifyOrderStatus(context.Background(), "O1", "pending")
	assert.Equal(t, 1, delivered)
	assert.True(t, slow.closed)
	assert.Equal(t, 1, h.Registered("a@x.com", RoleCustomer))
}

func TestHub_ConnectMovesTransport(t *testing.T) {
	h := New(ModeGlobal, nil)
	tr := newTransport("t")
	h.Connect("a@x.com", RoleCustomer, tr)
	h.Connect("a@x.com", RoleAdmin, tr)

	assert.Equal(t, 0, h.Registered("a@x.com", RoleCustomer))
	assert.Equal(t, 1, h.Registered("a@x.com", RoleAdmin))
}

func TestHub_RelayAuthorization(t *testing.T) {
	newHub := func() (*Hub, map[string]*fakeTransport) {
		h := New(ModeTargeted, participantsFor("a@x.com", "d@x.com"))
		conns := map[string]*fakeTransport{
			"owner":    newTransport("owner"),
			"admin":    newTransport("admin"),
			"partner":  newTransport("partner"),
			"stranger": newTransport("stranger"),
		}
		h.Connect("a@x.com", RoleCustomer, conns["owner"])
		h.Connect("b@x.com", RoleAdmin, conns["admin"])
		h.Connect("d@x.com", RoleDeliveryPartner, conns["partner"])
		h.Connect("e@x.com", RoleDeliveryPartner, conns["stranger"])
		return h, conns
	}

	for _, sender := range []string{"admin", "partner"} {
		t.Run(sender+" may relay", func(t *testing.T) {
			h, conns := newHub()
			require.NoError(t, h.RelayClientStatusUpdate(context.Background(), conns[sender], "O1", "picked_up"))
			assert.Equal(t, []OrderStatus{{OrderID: "O1", Status: "picked_up"}}, conns["owner"].statuses(t))
			assert.Empty(t, conns["stranger"].received())
		})
	}

	for _, sender := range []string{"owner", "stranger"} {
		t.Run(sender+" may not relay", func(t *testing.T) {
			h, conns := newHub()
			err := h.RelayClientStatusUpdate(context.Background(), conns[sender], "O1", "delivered")
			require.ErrorIs(t, err, ErrNotAuthorized)
			assert.Equal(t, []string{ErrNotAuthorized.Error()}, conns[sender].errorMessages(t))
			assert.Empty(t, conns["admin"].received())
			assert.Empty(t, conns["owner"].statuses(t))
		})
	}

	t.Run("unregistered sender", func(t *testing.T) {
		h, conns := newHub()
		anon := newTransport("anon")
		err := h.RelayClientStatusUpdate(context.Background(), anon, "O1", "delivered")
		require.ErrorIs(t, err, ErrNotRegistered)
		assert.Len(t, anon.errorMessages(t), 1)
		assert.Empty(t, conns["admin"].received())
	})

	t.Run("incomplete update", func(t *testing.T) {
		h, conns := newHub()
		err := h.RelayClientStatusUpdate(context.Background(), conns["admin"], "O1", " ")
		require.ErrorIs(t, err, ErrInvalidUpdate)
	})

	t.Run("unknown status", func(t *testing.T) {
		h, conns := newHub()
		err := h.RelayClientStatusUpdate(context.Background(), conns["admin"], "O1", "teleported")
		require.ErrorIs(t, err, ErrUnknownStatus)
		assert.Equal(t, []string{ErrUnknownStatus.Error()}, conns["admin"].errorMessages(t))
		assert.Empty(t, conns["owner"].statuses(t))
	})
}

func TestHub_ConcurrentAccess(t *testing.T) {
	h := New(ModeGlobal, nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			tr := newTransport(fmt.Sprint(i))
			h.Connect(fmt.Sprintf("u%d@x.com", i%3), RoleCustomer, tr)
			h.Disconnect(tr)
		}(i)
		go func() {
			defer wg.Done()
			h.NotifyOrderStatus(context.Background(), "O1", "pending")
		}()
	}
	wg.Wait()
	assert.Empty(t, h.byTransport)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeGlobal, ParseMode(" GLOBAL "))
	assert.Equal(t, ModeTargeted, ParseMode(""))
	assert.Equal(t, ModeTargeted, ParseMode("anything"))
}
