package response

import (
	"time"

	"momo_gateway/internal/domain/entities"
)

type PaymentInitiatedResponse struct {
	ReferenceID string `json:"reference_id"`
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
}

func FromPaymentOutcome(o entities.PaymentOutcome) PaymentInitiatedResponse {
	return PaymentInitiatedResponse{
		ReferenceID: o.ReferenceID,
		Status:      string(entities.PaymentStatusPending),
		Message:     "Payment initiated. Approve it on your phone.",
	}
}

type PaymentStatusResponse struct {
	ReferenceID string `json:"reference_id"`
	Status      string `json:"status"`
}

func FromPaymentStatus(referenceID string, s entities.PaymentStatus) PaymentStatusResponse {
	return PaymentStatusResponse{ReferenceID: referenceID, Status: string(s)}
}

type PendingPaymentResponse struct {
	ReferenceID string    `json:"reference_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type PendingPaymentListResponse struct {
	Count    int                      `json:"count"`
	Payments []PendingPaymentResponse `json:"payments"`
}

func FromPendingPayments(records []entities.PendingPayment) PendingPaymentListResponse {
	payments := make([]PendingPaymentResponse, 0, len(records))
	for _, rec := range records {
		payments = append(payments, PendingPaymentResponse{
			ReferenceID: rec.ReferenceID,
			Status:      string(rec.Status),
			CreatedAt:   rec.CreatedAt,
		})
	}
	return PendingPaymentListResponse{Count: len(payments), Payments: payments}
}
