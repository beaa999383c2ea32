package entities

import "time"

// SubscriptionStatus represents the lifecycle of a subscription entitlement.

type SubscriptionStatus string

const (
	SubscriptionStatusActive SubscriptionStatus = "active"
)

// Subscription is the entitlement activated when a tracked payment resolves
// SUCCESSFUL.
//
// Storage model (DynamoDB):
//   - PK: reference_id (the payment reference that funded the activation)
//
// Activation is idempotent: re-activating an already-active reference keeps
// the original record, so a crash between store removal and callback
// completion cannot double-grant.
type Subscription struct {
	ReferenceID string             `json:"reference_id"`
	Status      SubscriptionStatus `json:"status"`
	ActivatedAt time.Time          `json:"activated_at"`
}
