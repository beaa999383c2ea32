package handlers

import (
	"errors"
	"net/http"

	response "momo_gateway/internal/adapter/http/dto/response"
	"momo_gateway/internal/usecase"
	"momo_gateway/pkg"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler exposes subscription activations granted by
// successfully reconciled payments.

type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc}
}

func (h *SubscriptionHandler) GetSubscriptionByReferenceID(c *gin.Context) {
	referenceID := c.Param("reference_id")

	s, err := h.usecase.GetByReferenceID(c.Request.Context(), referenceID)
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubscription(s))
}

func mapSubscriptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReferenceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_FOUND", "Subscription not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
