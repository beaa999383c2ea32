package response

import (
	"time"

	"momo_gateway/internal/domain/entities"
)

type SubscriptionResponse struct {
	ReferenceID string    `json:"reference_id"`
	Status      string    `json:"status"`
	ActivatedAt time.Time `json:"activated_at"`
}

func FromSubscription(s entities.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ReferenceID: s.ReferenceID,
		Status:      string(s.Status),
		ActivatedAt: s.ActivatedAt,
	}
}
