package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPayerAccount = errors.New("invalid payer account")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidReferenceID  = errors.New("invalid reference id")
	ErrPaymentRejected     = errors.New("payment rejected by provider")
	ErrTrackingFailed      = errors.New("payment accepted but could not be tracked")
	ErrPaymentNotFound     = errors.New("payment not found at provider")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	ErrProviderAuthFailed  = errors.New("payment provider authentication failed")
)

// IPaymentUseCase is the application-facing payment surface.
//
// A payment flows: initiate against the provider, and only on acceptance
// persist the reference for reconciliation. Submission always completes
// (accepted or rejected) strictly before the reference is tracked.

type IPaymentUseCase interface {
	InitiateAndTrack(ctx context.Context, payerAccount string, amount decimal.Decimal) (entities.PaymentOutcome, error)
	GetStatus(ctx context.Context, referenceID string) (entities.PaymentStatus, error)
	ListPending(ctx context.Context) ([]entities.PendingPayment, error)
	HasPending(ctx context.Context) (bool, error)
}

type PaymentUseCase struct {
	gateway interfaces.IPaymentGateway
	pending interfaces.IPendingPaymentRepository

	newReferenceID func() string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway, pending interfaces.IPendingPaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{
		gateway:        gateway,
		pending:        pending,
		newReferenceID: uuid.NewString,
	}
}

// InitiateAndTrack generates a fresh reference id, submits the payment and,
// when the provider acknowledges it, records the reference for reconciliation.
//
// A provider decline is returned as ErrPaymentRejected with the outcome
// carrying the reason; the reference id must not be reused. A tracking write
// failure after acceptance is returned as ErrTrackingFailed so the caller can
// warn the user that resolution must be checked manually.
func (u *PaymentUseCase) InitiateAndTrack(ctx context.Context, payerAccount string, amount decimal.Decimal) (entities.PaymentOutcome, error) {
	if strings.TrimSpace(payerAccount) == "" {
		return entities.PaymentOutcome{}, ErrInvalidPayerAccount
	}
	if !amount.IsPositive() {
		return entities.PaymentOutcome{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		return entities.PaymentOutcome{}, errors.New("payment gateway not configured")
	}
	if u.pending == nil {
		return entities.PaymentOutcome{}, errors.New("pending payment repository not configured")
	}

	referenceID := u.newReferenceID()
	log.Printf("[payment][usecase] initiate start reference_id=%s amount=%s", referenceID, amount.String())

	outcome, err := u.gateway.InitiatePayment(ctx, referenceID, payerAccount, amount)
	if err != nil {
		log.Printf("[payment][usecase] initiate failed reference_id=%s err=%v", referenceID, err)
		return entities.PaymentOutcome{}, classifyGatewayError(err)
	}
	if !outcome.Accepted {
		log.Printf("[payment][usecase] initiate rejected reference_id=%s reason=%s", referenceID, outcome.RejectionReason)
		return outcome, fmt.Errorf("%w: %s", ErrPaymentRejected, outcome.RejectionReason)
	}

	if err := u.pending.Add(ctx, entities.NewPendingPayment(referenceID)); err != nil {
		log.Printf("[payment][usecase] tracking failed reference_id=%s err=%v", referenceID, err)
		return outcome, fmt.Errorf("%w: %v", ErrTrackingFailed, err)
	}

	log.Printf("[payment][usecase] initiate accepted reference_id=%s", referenceID)
	return outcome, nil
}

// GetStatus queries the provider for the live status of a reference.
func (u *PaymentUseCase) GetStatus(ctx context.Context, referenceID string) (entities.PaymentStatus, error) {
	if strings.TrimSpace(referenceID) == "" {
		return "", ErrInvalidReferenceID
	}
	if u.gateway == nil {
		return "", errors.New("payment gateway not configured")
	}

	status, err := u.gateway.ConfirmPayment(ctx, referenceID)
	if err != nil {
		return "", classifyGatewayError(err)
	}
	return status, nil
}

// classifyGatewayError folds wire-level failures into usecase sentinels the
// HTTP boundary can map, keeping the original error in the chain. Detection
// is structural (error behavior interfaces), not message matching.
func classifyGatewayError(err error) error {
	var notFound interface{ NotFound() bool }
	if errors.As(err, &notFound) && notFound.NotFound() {
		return fmt.Errorf("%w: %w", ErrPaymentNotFound, err)
	}
	var transient interface{ Transient() bool }
	if errors.As(err, &transient) {
		if transient.Transient() {
			return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrProviderAuthFailed, err)
	}
	return err
}

func (u *PaymentUseCase) ListPending(ctx context.Context) ([]entities.PendingPayment, error) {
	if u.pending == nil {
		return nil, errors.New("pending payment repository not configured")
	}
	return u.pending.ListAll(ctx)
}

func (u *PaymentUseCase) HasPending(ctx context.Context) (bool, error) {
	if u.pending == nil {
		return false, errors.New("pending payment repository not configured")
	}
	return u.pending.HasAny(ctx)
}
