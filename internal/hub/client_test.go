package hub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWSServer(t *testing.T, h *Hub, preset *UserConnected) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		ServeClient(context.Background(), h, conn, preset)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func writeFrame(t *testing.T, conn *websocket.Conn, event string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Frame{Event: event, Data: raw}))
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f Frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestClient_RegisterAndReceive(t *testing.T) {
	h := New(ModeGlobal, nil)
	conn := dial(t, newWSServer(t, h, nil))

	writeFrame(t, conn, EventUserConnected, UserConnected{Email: "a@x.com", Role: RoleCustomer})
	require.Eventually(t, func() bool { return h.Registered("a@x.com", RoleCustomer) == 1 }, 2*time.Second, 10*time.Millisecond)

	h.NotifyOrderStatus(context.Background(), "O1", "delivered")

	f := readFrame(t, conn)
	assert.Equal(t, EventOrderStatusUpdated, f.Event)
	var s OrderStatus
	require.NoError(t, json.Unmarshal(f.Data, &s))
	assert.Equal(t, OrderStatus{OrderID: "O1", Status: "delivered"}, s)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return h.Registered("a@x.com", RoleCustomer) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestClient_InvalidFrames(t *testing.T) {
	h := New(ModeGlobal, nil)
	conn := dial(t, newWSServer(t, h, nil))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	assert.Equal(t, EventError, readFrame(t, conn).Event)

	writeFrame(t, conn, EventUserConnected, UserConnected{Email: "a@x.com", Role: "superuser"})
	assert.Equal(t, EventError, readFrame(t, conn).Event)

	writeFrame(t, conn, "dance", map[string]string{})
	assert.Equal(t, EventError, readFrame(t, conn).Event)

	// Not registered, so the relay is refused.
	writeFrame(t, conn, EventUpdateOrderStatus, OrderStatus{OrderID: "O1", Status: "delivered"})
	assert.Equal(t, EventError, readFrame(t, conn).Event)
}

func TestClient_UnauthenticatedConnectionIsCustomerOnly(t *testing.T) {
	h := New(ModeTargeted, participantsFor("a@x.com", ""))
	owner := newTransport("owner")
	h.Connect("a@x.com", RoleCustomer, owner)

	conn := dial(t, newWSServer(t, h, nil))

	writeFrame(t, conn, EventUserConnected, UserConnected{Email: "evil@x.com", Role: RoleAdmin})
	assert.Equal(t, EventError, readFrame(t, conn).Event)
	assert.Equal(t, 0, h.Registered("evil@x.com", RoleAdmin))

	writeFrame(t, conn, EventUserConnected, UserConnected{Email: "evil@x.com", Role: RoleCustomer})
	require.Eventually(t, func() bool { return h.Registered("evil@x.com", RoleCustomer) == 1 }, 2*time.Second, 10*time.Millisecond)

	writeFrame(t, conn, EventUpdateOrderStatus, OrderStatus{OrderID: "O1", Status: "delivered"})
	assert.Equal(t, EventError, readFrame(t, conn).Event)
	assert.Empty(t, owner.statuses(t))
}

func TestClient_PresetIdentityCannotBeChanged(t *testing.T) {
	h := New(ModeGlobal, nil)
	conn := dial(t, newWSServer(t, h, &UserConnected{Email: "b@x.com", Role: RoleAdmin}))

	require.Eventually(t, func() bool { return h.Registered("b@x.com", RoleAdmin) == 1 }, 2*time.Second, 10*time.Millisecond)

	writeFrame(t, conn, EventUserConnected, UserConnected{Email: "a@x.com", Role: RoleCustomer})
	assert.Equal(t, EventError, readFrame(t, conn).Event)
	assert.Equal(t, 0, h.Registered("a@x.com", RoleCustomer))

	writeFrame(t, conn, EventUpdateOrderStatus, OrderStatus{OrderID: "O1", Status: "picked_up"})
	f := readFrame(t, conn)
	assert.Equal(t, EventOrderStatusUpdated, f.Event)
}
