package handlers

import (
	"log"
	"net/http"

	"storefront_settlement/internal/adapter/http/dto/request"
	"storefront_settlement/internal/adapter/http/dto/response"
	"storefront_settlement/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DeliveryHandler exposes the delivery job of an order.

type DeliveryHandler struct {
	usecase usecase.IDeliveryUseCase
}

func NewDeliveryHandler(uc usecase.IDeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc}
}

func (h *DeliveryHandler) GetDelivery(c *gin.Context) {
	orderID := c.Param("order_id")

	rec, err := h.usecase.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[delivery][handler] get failed order_id=%s err=%v", orderID, err)
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFulfillment(rec))
}

func (h *DeliveryHandler) AssignPartner(c *gin.Context) {
	orderID := c.Param("order_id")
	var req request.AssignPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[delivery][handler] assign invalid payload order_id=%s err=%v", orderID, err)
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[delivery][handler] assign start order_id=%s partner=%s", orderID, req.PartnerEmail)

	rec, err := h.usecase.AssignPartner(c.Request.Context(), orderID, req.PartnerEmail)
	if err != nil {
		log.Printf("[delivery][handler] assign failed order_id=%s err=%v", orderID, err)
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFulfillment(rec))
}

func (h *DeliveryHandler) UpdateStatus(c *gin.Context) {
	orderID := c.Param("order_id")
	var req request.UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[delivery][handler] status invalid payload order_id=%s err=%v", orderID, err)
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[delivery][handler] status start order_id=%s status=%s", orderID, req.Status)

	rec, err := h.usecase.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		log.Printf("[delivery][handler] status failed order_id=%s err=%v", orderID, err)
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFulfillment(rec))
}
