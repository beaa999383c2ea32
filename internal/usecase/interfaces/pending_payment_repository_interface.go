package interfaces

import (
	"context"

	"momo_gateway/internal/domain/entities"
)

// IPendingPaymentRepository abstracts durable tracking of in-flight payments.
//
// Records must survive a process restart; a reference appears at most once
// and is removed only when a terminal (or unrecoverable) status is observed.
type IPendingPaymentRepository interface {
	Add(ctx context.Context, p entities.PendingPayment) error
	Remove(ctx context.Context, referenceID string) error
	ListAll(ctx context.Context) ([]entities.PendingPayment, error)
	HasAny(ctx context.Context) (bool, error)
}
