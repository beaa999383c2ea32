package handlers

import (
	"errors"
	"log"
	"net/http"

	request "momo_gateway/internal/adapter/http/dto/request"
	response "momo_gateway/internal/adapter/http/dto/response"
	"momo_gateway/internal/usecase"
	"momo_gateway/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for mobile-money payments.

type PaymentHandler struct {
	usecase    usecase.IPaymentUseCase
	reconciler usecase.IReconciliationUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, reconciler usecase.IReconciliationUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc, reconciler: reconciler}
}

// CreatePayment initiates a payment and tracks it for reconciliation.
//
// The response is 202: acceptance only acknowledges submission, the charge
// resolves asynchronously once the payer approves on their handset.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if _, err := payload.ResolveProvider(); err != nil {
		appErr := pkg.NewDomainErrorSimple("PROVIDER_NOT_SUPPORTED", "Only MTN mobile money is supported", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	phoneNumber, err := payload.ResolvePhoneNumber()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PHONE_NUMBER", "Invalid phone number", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	amount, err := payload.ResolveAmount()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be positive", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create start phone_number=%s amount=%s", phoneNumber, amount.String())

	outcome, err := h.usecase.InitiateAndTrack(c.Request.Context(), phoneNumber, amount)
	if err != nil {
		if errors.Is(err, usecase.ErrTrackingFailed) {
			// The provider accepted the charge; losing that fact would be
			// worse than reporting degraded tracking.
			log.Printf("[payment][handler] accepted but tracking degraded reference_id=%s err=%v", outcome.ReferenceID, err)
			resp := response.FromPaymentOutcome(outcome)
			resp.Message = "Payment initiated but tracking is degraded; check the status manually."
			c.JSON(http.StatusAccepted, resp)
			return
		}
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create accepted reference_id=%s", outcome.ReferenceID)
	c.JSON(http.StatusAccepted, response.FromPaymentOutcome(outcome))
}

// GetPaymentStatus returns the provider's live status for a reference id.
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	referenceID := c.Param("reference_id")

	status, err := h.usecase.GetStatus(c.Request.Context(), referenceID)
	if err != nil {
		log.Printf("[payment][handler] status failed reference_id=%s err=%v", referenceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentStatus(referenceID, status))
}

// ListPendingPayments returns all references still awaiting reconciliation.
func (h *PaymentHandler) ListPendingPayments(c *gin.Context) {
	records, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		log.Printf("[payment][handler] list pending failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPendingPayments(records))
}

// Reconcile runs one reconciliation sweep immediately.
func (h *PaymentHandler) Reconcile(c *gin.Context) {
	if err := h.reconciler.RunSweep(c.Request.Context()); err != nil {
		log.Printf("[payment][handler] sweep failed err=%v", err)
		appErr := pkg.NewDomainError("RECONCILIATION_FAILED", "Reconciliation sweep failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "sweep completed"})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayerAccount), errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidReferenceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment rejected by the provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProviderAuthFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider rejected our credentials", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrProviderUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
