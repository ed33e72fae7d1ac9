package handlers

import (
	"log"
	"net/http"

	"storefront_settlement/internal/adapter/http/dto/response"
	"storefront_settlement/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderFulfillmentUseCase
}

func NewOrderHandler(uc usecase.IOrderFulfillmentUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[orders][handler] get start order_id=%s", orderID)

	rec, err := h.usecase.GetByID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[orders][handler] get failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderRecord(rec))
}
