package hub

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"storefront_settlement/internal/domain/entities"
)

var (
	ErrNotRegistered = errors.New("connection is not registered")
	ErrNotAuthorized = errors.New("not authorized to update this order")
	ErrInvalidUpdate = errors.New("orderId and status are required")
	ErrUnknownStatus = errors.New("unknown order status")
)

// Mode selects who receives an order status change.
type Mode string

const (
	// ModeTargeted reaches the order owner, its assigned partner and every admin.
	ModeTargeted Mode = "targeted"
	// ModeGlobal reaches every live connection.
	ModeGlobal Mode = "global"
)

func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeGlobal {
		return ModeGlobal
	}
	return ModeTargeted
}

// Transport is one live connection. Send must not block; it returns false
// when the frame could not be queued.
type Transport interface {
	Send(frame []byte) bool
	Close()
}

// ParticipantsReader resolves who may follow an order.
type ParticipantsReader interface {
	Get(ctx context.Context, orderID string) (entities.OrderParticipants, error)
}

type connKey struct {
	identity string
	role     string
}

// Hub is the live connection registry. All registry access holds mu;
// frames are only ever written by each transport's own pump.
type Hub struct {
	mu          sync.RWMutex
	byKey       map[connKey]map[Transport]struct{}
	byTransport map[Transport]connKey

	mode         Mode
	participants ParticipantsReader
}

func New(mode Mode, participants ParticipantsReader) *Hub {
	return &Hub{
		byKey:        make(map[connKey]map[Transport]struct{}),
		byTransport:  make(map[Transport]connKey),
		mode:         mode,
		participants: participants,
	}
}

func (h *Hub) Mode() Mode { return h.mode }

// Connect registers t under (identity, role). A transport that was already
// registered moves to the new key.
func (h *Hub) Connect(identity, role string, t Transport) {
	key := connKey{identity: normalizeIdentity(identity), role: role}

	h.mu.Lock()
	defer h.mu.Unlock()

	if prev, ok := h.byTransport[t]; ok {
		h.removeLocked(prev, t)
	}
	set, ok := h.byKey[key]
	if !ok {
		set = make(map[Transport]struct{})
		h.byKey[key] = set
	}
	set[t] = struct{}{}
	h.byTransport[t] = key
	log.Printf("[hub] connected identity=%s role=%s handles=%d", key.identity, key.role, len(set))
}

// Disconnect removes t and prunes empty entries. Unknown transports are ignored.
func (h *Hub) Disconnect(t Transport) {
	h.mu.Lock()
	key, ok := h.byTransport[t]
	if ok {
		h.removeLocked(key, t)
	}
	h.mu.Unlock()

	if ok {
		log.Printf("[hub] disconnected identity=%s role=%s", key.identity, key.role)
	}
}

func (h *Hub) removeLocked(key connKey, t Transport) {
	delete(h.byTransport, t)
	if set, ok := h.byKey[key]; ok {
		delete(set, t)
		if len(set) == 0 {
			delete(h.byKey, key)
		}
	}
}

// Registered reports the number of live handles for (identity, role).
func (h *Hub) Registered(identity, role string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byKey[connKey{identity: normalizeIdentity(identity), role: role}])
}

// NotifyOrderStatus fans an order_status_updated frame out to the order's
// audience and returns how many handles it was queued on.
func (h *Hub) NotifyOrderStatus(ctx context.Context, orderID, status string) int {
	frame := encodeFrame(EventOrderStatusUpdated, OrderStatus{OrderID: orderID, Status: status})
	targets := h.audience(ctx, orderID)

	delivered := 0
	var slow []Transport
	for _, t := range targets {
		if t.Send(frame) {
			delivered++
			continue
		}
		slow = append(slow, t)
	}
	for _, t := range slow {
		log.Printf("[hub] dropping slow connection order_id=%s", orderID)
		h.Disconnect(t)
		t.Close()
	}
	log.Printf("[hub] order status fan-out order_id=%s status=%s mode=%s delivered=%d dropped=%d", orderID, status, h.mode, delivered, len(slow))
	return delivered
}

// RelayClientStatusUpdate re-broadcasts a status change sent by a client.
// The status must be a known fulfillment status. Admins may relay for any
// order; a delivery partner only for orders assigned to them. Rejected
// senders get an error frame.
func (h *Hub) RelayClientStatusUpdate(ctx context.Context, sender Transport, orderID, status string) error {
	orderID = strings.TrimSpace(orderID)
	status = strings.TrimSpace(status)

	h.mu.RLock()
	key, ok := h.byTransport[sender]
	h.mu.RUnlock()

	var err error
	switch {
	case !ok:
		err = ErrNotRegistered
	case orderID == "" || status == "":
		err = ErrInvalidUpdate
	default:
		if _, known := entities.ParseFulfillmentStatus(status); !known {
			err = ErrUnknownStatus
		} else {
			err = h.authorizeRelay(ctx, key, orderID)
		}
	}
	if err != nil {
		log.Printf("[security][hub] relay rejected identity=%s role=%s order_id=%s err=%v", key.identity, key.role, orderID, err)
		sender.Send(encodeFrame(EventError, ErrorMessage{Message: err.Error()}))
		return err
	}

	log.Printf("[hub] relay accepted identity=%s role=%s order_id=%s status=%s", key.identity, key.role, orderID, status)
	h.NotifyOrderStatus(ctx, orderID, status)
	return nil
}

func (h *Hub) authorizeRelay(ctx context.Context, key connKey, orderID string) error {
	switch key.role {
	case RoleAdmin:
		return nil
	case RoleDeliveryPartner:
		p, err := h.lookupParticipants(ctx, orderID)
		if err != nil {
			return ErrNotAuthorized
		}
		if p.Partner != "" && normalizeIdentity(p.Partner) == key.identity {
			return nil
		}
	}
	return ErrNotAuthorized
}

func (h *Hub) lookupParticipants(ctx context.Context, orderID string) (entities.OrderParticipants, error) {
	if h.participants == nil {
		return entities.OrderParticipants{}, errors.New("participants index not configured")
	}
	return h.participants.Get(ctx, orderID)
}

func (h *Hub) audience(ctx context.Context, orderID string) []Transport {
	var owner, partner string
	if h.mode == ModeTargeted {
		p, err := h.lookupParticipants(ctx, orderID)
		if err != nil {
			log.Printf("[hub] participants lookup failed order_id=%s err=%v; notifying admins only", orderID, err)
		} else {
			owner = normalizeIdentity(p.Owner)
			partner = normalizeIdentity(p.Partner)
		}
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Transport, 0, len(h.byTransport))
	for key, set := range h.byKey {
		if h.mode == ModeTargeted && !key.matches(owner, partner) {
			continue
		}
		for t := range set {
			out = append(out, t)
		}
	}
	return out
}

func (k connKey) matches(owner, partner string) bool {
	switch k.role {
	case RoleAdmin:
		return true
	case RoleCustomer:
		return owner != "" && k.identity == owner
	case RoleDeliveryPartner:
		return partner != "" && k.identity == partner
	}
	return false
}
