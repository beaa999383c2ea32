package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/usecase/interfaces"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

// ISubscriptionUseCase grants and reads subscription entitlements. Activation
// is the downstream effect of a successful payment and is wired into the
// reconciler as its success callback.

type ISubscriptionUseCase interface {
	ActivateFromPayment(ctx context.Context, referenceID string) error
	GetByReferenceID(ctx context.Context, referenceID string) (entities.Subscription, error)
}

type SubscriptionUseCase struct {
	repo interfaces.ISubscriptionRepository
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo}
}

// ActivateFromPayment records the entitlement funded by referenceID.
// Idempotent: replaying the activation keeps the original record.
func (u *SubscriptionUseCase) ActivateFromPayment(ctx context.Context, referenceID string) error {
	if strings.TrimSpace(referenceID) == "" {
		return ErrInvalidReferenceID
	}
	if u.repo == nil {
		return errors.New("subscription repository not configured")
	}

	s, err := u.repo.Activate(ctx, entities.Subscription{
		ReferenceID: referenceID,
		Status:      entities.SubscriptionStatusActive,
		ActivatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[subscription][usecase] activation failed reference_id=%s err=%v", referenceID, err)
		return err
	}

	log.Printf("[subscription][usecase] active reference_id=%s activated_at=%s", s.ReferenceID, s.ActivatedAt.Format(time.RFC3339))
	return nil
}

func (u *SubscriptionUseCase) GetByReferenceID(ctx context.Context, referenceID string) (entities.Subscription, error) {
	if strings.TrimSpace(referenceID) == "" {
		return entities.Subscription{}, ErrInvalidReferenceID
	}
	if u.repo == nil {
		return entities.Subscription{}, errors.New("subscription repository not configured")
	}

	s, err := u.repo.GetByReferenceID(ctx, referenceID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if s.ReferenceID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	return s, nil
}
