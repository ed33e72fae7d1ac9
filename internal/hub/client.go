package hub

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 32
)

// Client is a gorilla WebSocket connection registered with the hub. Frames
// are queued on send and written only by writePump.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	once   sync.Once
	preset *UserConnected
}

var _ Transport = (*Client)(nil)

// ServeClient runs the connection until it closes. When preset is non-nil
// the identity was established at the handshake and user_connected frames
// cannot change it. A connection without a preset identity may only
// register as a customer and never relays status updates.
func ServeClient(ctx context.Context, h *Hub, conn *websocket.Conn, preset *UserConnected) {
	c := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
		preset: preset,
	}
	if preset != nil {
		h.Connect(preset.Email, preset.Role, c)
	}

	go c.writePump()
	c.readPump(ctx)
}

func (c *Client) Send(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

func (c *Client) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.hub.Disconnect(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[hub][client] read failed err=%v", err)
			}
			return
		}
		c.handleFrame(ctx, msg)
	}
}

func (c *Client) handleFrame(ctx context.Context, msg []byte) {
	var f Frame
	if err := json.Unmarshal(msg, &f); err != nil {
		c.sendError("malformed frame")
		return
	}

	switch f.Event {
	case EventUserConnected:
		var u UserConnected
		if err := json.Unmarshal(f.Data, &u); err != nil {
			c.sendError("malformed user_connected payload")
			return
		}
		u.Email = strings.TrimSpace(u.Email)
		if c.preset != nil {
			if normalizeIdentity(u.Email) != normalizeIdentity(c.preset.Email) || u.Role != c.preset.Role {
				log.Printf("[security][hub] user_connected does not match token identity claimed=%s role=%s", u.Email, u.Role)
				c.sendError("identity is bound to the connection token")
			}
			return
		}
		if u.Email == "" || !ValidRole(u.Role) {
			c.sendError("email and a valid role are required")
			return
		}
		// Without a token only the customer role can be claimed.
		if u.Role != RoleCustomer {
			log.Printf("[security][hub] unauthenticated role claim rejected claimed=%s role=%s", u.Email, u.Role)
			c.sendError("role " + u.Role + " requires a token")
			return
		}
		c.hub.Connect(u.Email, u.Role, c)

	case EventUpdateOrderStatus:
		var s OrderStatus
		if err := json.Unmarshal(f.Data, &s); err != nil {
			c.sendError("malformed update_order_status payload")
			return
		}
		if c.preset == nil {
			log.Printf("[security][hub] unauthenticated relay rejected order_id=%s", s.OrderID)
			c.sendError("status updates require a token")
			return
		}
		_ = c.hub.RelayClientStatusUpdate(ctx, c, s.OrderID, s.Status)

	default:
		c.sendError("unknown event " + f.Event)
	}
}

func (c *Client) sendError(message string) {
	c.Send(encodeFrame(EventError, ErrorMessage{Message: message}))
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				log.Printf("[hub][client] write failed err=%v", err)
				c.hub.Disconnect(c)
				c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.hub.Disconnect(c)
				c.Close()
				return
			}
		}
	}
}
