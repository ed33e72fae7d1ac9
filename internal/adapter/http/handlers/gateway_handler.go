package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"storefront_settlement/internal/adapter/http/dto/request"
	"storefront_settlement/internal/adapter/http/dto/response"
	"storefront_settlement/internal/domain/entities"
	"storefront_settlement/internal/hub"
	"storefront_settlement/internal/infrastructure/auth"
	"storefront_settlement/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// HeaderInternalToken authenticates service-to-service notify calls.
const HeaderInternalToken = "X-Internal-Token"

// GatewayHandler serves the live-update WebSocket and the internal notify
// endpoint of the notification hub.
type GatewayHandler struct {
	hub           *hub.Hub
	verifier      *auth.Verifier
	internalToken string
	upgrader      websocket.Upgrader
}

// NewGatewayHandler accepts a nil verifier; identities then come from the
// user_connected frame and are limited to customers.
func NewGatewayHandler(h *hub.Hub, verifier *auth.Verifier, internalToken string) *GatewayHandler {
	return &GatewayHandler{
		hub:           h,
		verifier:      verifier,
		internalToken: strings.TrimSpace(internalToken),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeWS upgrades the request. A token in the "token" query parameter or a
// bearer header pins the connection identity for its lifetime; it is
// required whenever token verification is configured.
func (h *GatewayHandler) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = auth.BearerToken(c.GetHeader("Authorization"))
	}

	if token == "" && h.verifier != nil {
		log.Printf("[security][gateway] tokenless connection rejected remote=%s", c.ClientIP())
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Token required", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var preset *hub.UserConnected
	if token != "" {
		if h.verifier == nil {
			log.Printf("[security][gateway] token presented but verification disabled remote=%s", c.ClientIP())
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Token verification unavailable", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		id, err := h.verifier.Verify(token)
		if err != nil || !hub.ValidRole(id.Role) {
			log.Printf("[security][gateway] token rejected remote=%s role=%q err=%v", c.ClientIP(), id.Role, err)
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		preset = &hub.UserConnected{Email: id.Email, Role: id.Role}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[gateway][handler] upgrade failed remote=%s err=%v", c.ClientIP(), err)
		return
	}
	log.Printf("[gateway][handler] connection opened remote=%s authenticated=%t", c.ClientIP(), preset != nil)
	hub.ServeClient(c.Request.Context(), h.hub, conn, preset)
}

// NotifyOrderStatus pushes a status change to the order's live audience.
func (h *GatewayHandler) NotifyOrderStatus(c *gin.Context) {
	if !h.authorizedInternal(c.GetHeader(HeaderInternalToken)) {
		log.Printf("[security][gateway] internal notify rejected remote=%s", c.ClientIP())
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Forbidden", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orderID := strings.TrimSpace(c.Param("order_id"))
	var req request.OrderStatusNotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || orderID == "" {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	status, ok := entities.ParseFulfillmentStatus(strings.TrimSpace(req.Status))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown order status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	delivered := h.hub.NotifyOrderStatus(c.Request.Context(), orderID, string(status))
	c.JSON(http.StatusOK, response.NotifyResponse{OrderID: orderID, Status: string(status), Delivered: delivered})
}

// authorizedInternal rejects every call when no token is configured.
func (h *GatewayHandler) authorizedInternal(got string) bool {
	if h.internalToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(h.internalToken), []byte(strings.TrimSpace(got))) == 1
}
