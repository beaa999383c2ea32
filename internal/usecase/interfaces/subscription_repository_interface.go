package interfaces

import (
	"context"

	"momo_gateway/internal/domain/entities"
)

// ISubscriptionRepository abstracts persistence of subscription activations.
type ISubscriptionRepository interface {
	Activate(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	GetByReferenceID(ctx context.Context, referenceID string) (entities.Subscription, error)
}
