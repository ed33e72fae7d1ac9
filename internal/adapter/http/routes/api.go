package routes

import (
	"storefront_settlement/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments   = "/payments"
	PathOrders     = "/orders"
	PathDeliveries = "/deliveries"
	PathInternal   = "/internal"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/create-order", h.CreateProviderOrder)
		payments.POST("/verify", h.VerifyPayment)
		payments.POST("/webhook", h.ProviderWebhook)
		payments.GET("/:order_id", h.GetPaymentByOrderID)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	rg.GET(PathOrders+"/:order_id", h.GetOrderByID)
}

func addDeliveryRoutes(rg *gin.RouterGroup, h *handlers.DeliveryHandler) {
	deliveries := rg.Group(PathDeliveries)
	{
		deliveries.GET("/:order_id", h.GetDelivery)
		deliveries.POST("/:order_id/assign", h.AssignPartner)
		deliveries.PATCH("/:order_id/status", h.UpdateStatus)
	}
}
