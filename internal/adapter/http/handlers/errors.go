package handlers

import (
	"errors"
	"net/http"

	"storefront_settlement/internal/usecase"
	"storefront_settlement/pkg"
)

const paymentVerificationFailed = "Payment verification failed"

func invalidRequest() *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
}

func mapSettlementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentAlreadySettled):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_SETTLED", "Payment already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProvider):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrEventPublish):
		return pkg.NewDomainError("SETTLEMENT_EVENTS_PENDING", "Payment settled; fulfillment is delayed", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapVerificationError never distinguishes a bad signature from an unknown
// provider order.
func mapVerificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidSignature),
		errors.Is(err, usecase.ErrPaymentNotFound),
		errors.Is(err, usecase.ErrPaymentAlreadySettled):
		return pkg.NewDomainErrorSimple("PAYMENT_VERIFICATION_FAILED", paymentVerificationFailed, http.StatusBadRequest)
	default:
		return mapSettlementError(err)
	}
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapDeliveryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeliveryNotFound):
		return pkg.NewDomainErrorSimple("DELIVERY_NOT_FOUND", "Delivery not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Invalid status transition", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
