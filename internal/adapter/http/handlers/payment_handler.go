package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"storefront_settlement/internal/adapter/http/dto/request"
	"storefront_settlement/internal/adapter/http/dto/response"
	"storefront_settlement/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HeaderProviderSignature carries the provider's webhook HMAC.
const HeaderProviderSignature = "X-Razorpay-Signature"

// PaymentHandler handles HTTP requests for checkout and settlement.

type PaymentHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewPaymentHandler(uc usecase.ISettlementUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateProviderOrder records a pending payment and opens the provider order.
func (h *PaymentHandler) CreateProviderOrder(c *gin.Context) {
	var req request.CreateProviderOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] create-order invalid payload err=%v", err)
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-order start order_id=%s amount=%d", req.OrderID, req.Amount)

	po, err := h.usecase.CreateProviderOrder(c.Request.Context(), req.ToCheckoutInput())
	if err != nil {
		log.Printf("[payment][handler] create-order failed order_id=%s err=%v", req.OrderID, err)
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-order success order_id=%s provider_order_id=%s", req.OrderID, po.ID)

	c.JSON(http.StatusOK, response.FromProviderOrder(po))
}

// VerifyPayment settles a payment from the checkout callback. Every
// verification failure gets the same generic message.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] verify invalid payload err=%v", err)
		appErr := mapVerificationError(usecase.ErrValidation)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.VerifyAndSettle(c.Request.Context(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		log.Printf("[payment][handler] verify failed provider_order_id=%s err=%v", req.RazorpayOrderID, err)
		appErr := mapVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if claimed := strings.TrimSpace(req.OrderID); claimed != "" && claimed != res.Payment.OrderID {
		log.Printf("[security][payment] verify order id mismatch claimed=%s settled=%s", claimed, res.Payment.OrderID)
	}
	log.Printf("[payment][handler] verify success order_id=%s status=%s duplicate=%t", res.Payment.OrderID, res.Payment.Status, res.AlreadySettled)

	c.JSON(http.StatusOK, response.FromSettledPayment(res.Payment))
}

// ProviderWebhook applies a provider-pushed payment outcome. The raw body is
// passed through untouched because the signature covers its exact bytes.
func (h *PaymentHandler) ProviderWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[payment][handler] webhook unreadable body err=%v", err)
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.HandleProviderWebhook(c.Request.Context(), body, c.GetHeader(HeaderProviderSignature)); err != nil {
		if errors.Is(err, usecase.ErrInvalidSignature) || errors.Is(err, usecase.ErrPaymentNotFound) {
			log.Printf("[security][payment] webhook rejected remote=%s err=%v", c.ClientIP(), err)
		} else {
			log.Printf("[payment][handler] webhook failed err=%v", err)
		}
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetPaymentByOrderID returns the ledger record for an order.
func (h *PaymentHandler) GetPaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] get start order_id=%s", orderID)

	p, err := h.usecase.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] get failed order_id=%s err=%v", orderID, err)
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}
