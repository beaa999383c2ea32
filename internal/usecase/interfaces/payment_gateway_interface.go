package interfaces

import (
	"context"

	"momo_gateway/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IPaymentGateway abstracts the mobile-money provider (MTN MoMo collections).
//
// InitiatePayment submits a charge keyed by a caller-generated reference id;
// acceptance is only an acknowledgment, the charge resolves asynchronously.
// ConfirmPayment is a read-only status query, safe to repeat for the same
// reference id.
type IPaymentGateway interface {
	InitiatePayment(ctx context.Context, referenceID, payerAccount string, amount decimal.Decimal) (entities.PaymentOutcome, error)
	ConfirmPayment(ctx context.Context, referenceID string) (entities.PaymentStatus, error)
}
