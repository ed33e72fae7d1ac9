package request

type AssignPartnerRequest struct {
	PartnerEmail string `json:"partnerEmail" binding:"required"`
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderStatusNotifyRequest is the body of the internal notify endpoint.
type OrderStatusNotifyRequest struct {
	Status string `json:"status" binding:"required"`
}
