package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the provider-reported state of a requesttopay.
//
// Domain notes:
//   - MoMo confirms asynchronously: the payer approves the charge on their
//     handset, so a submitted payment stays PENDING until the provider
//     reports a terminal state.
//   - SUCCESSFUL and FAILED are terminal; polling past them is useless.

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusSuccessful PaymentStatus = "SUCCESSFUL"
	PaymentStatusFailed     PaymentStatus = "FAILED"
)

// Terminal reports whether the status ends the reconciliation lifecycle.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusSuccessful || s == PaymentStatusFailed
}

// PaymentRequest is a single payment attempt submitted to the provider.
//
// ReferenceID is caller-generated, doubles as the idempotency key and the
// provider-side correlation id, and must be reused verbatim for the matching
// status query.
type PaymentRequest struct {
	ReferenceID  string          `json:"reference_id"`
	PayerAccount string          `json:"payer_account"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
}

// PaymentOutcome is the synchronous result of submitting a payment.
//
// Accepted means the provider acknowledged the submission; the actual charge
// resolves later through reconciliation. A non-accepted outcome carries the
// provider's structured rejection body (or transport message).
type PaymentOutcome struct {
	ReferenceID     string `json:"reference_id"`
	Accepted        bool   `json:"accepted"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

// PendingPayment is the durable record of an initiated-but-unconfirmed payment.
//
// Storage model (DynamoDB):
//   - PK: reference_id
//
// Status is always PENDING while the record exists; the record is deleted
// (never mutated) once a terminal status is observed. CreatedAt bounds the
// reconciliation retry horizon.
type PendingPayment struct {
	ReferenceID string        `json:"reference_id"`
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

func NewPendingPayment(referenceID string) PendingPayment {
	return PendingPayment{
		ReferenceID: referenceID,
		Status:      PaymentStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}
