package usecase

import (
	"context"
	"errors"
	"testing"

	"momo_gateway/internal/domain/entities"
	mock_interfaces "momo_gateway/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// providerFailure mimics the gateway's wire error behavior so classification
// can be exercised without importing the infrastructure package.
type providerFailure struct {
	notFound  bool
	transient bool
}

func (e *providerFailure) Error() string   { return "provider failure" }
func (e *providerFailure) NotFound() bool  { return e.notFound }
func (e *providerFailure) Transient() bool { return e.transient }

func newPaymentUseCaseForTest(t *testing.T) (*PaymentUseCase, *mock_interfaces.MockIPaymentGateway, *mock_interfaces.MockIPendingPaymentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	pending := mock_interfaces.NewMockIPendingPaymentRepository(ctrl)

	uc := NewPaymentUseCase(gateway, pending)
	uc.newReferenceID = func() string { return "ref-fixed" }
	return uc, gateway, pending
}

func TestPaymentUseCase_InitiateAndTrack(t *testing.T) {
	ctx := context.Background()
	amount := decimal.NewFromInt(150)

	t.Run("rejects empty payer account before touching the provider", func(t *testing.T) {
		uc, _, _ := newPaymentUseCaseForTest(t)

		_, err := uc.InitiateAndTrack(ctx, "  ", amount)
		if !errors.Is(err, ErrInvalidPayerAccount) {
			t.Fatalf("expected ErrInvalidPayerAccount, got %v", err)
		}
	})

	t.Run("rejects non-positive amount before touching the provider", func(t *testing.T) {
		uc, _, _ := newPaymentUseCaseForTest(t)

		_, err := uc.InitiateAndTrack(ctx, "0961234567", decimal.Zero)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("tracks the reference only after provider acceptance", func(t *testing.T) {
		uc, gateway, pending := newPaymentUseCaseForTest(t)

		gomock.InOrder(
			gateway.EXPECT().
				InitiatePayment(ctx, "ref-fixed", "0961234567", amount).
				Return(entities.PaymentOutcome{ReferenceID: "ref-fixed", Accepted: true}, nil),
			pending.EXPECT().
				Add(ctx, gomock.AssignableToTypeOf(entities.PendingPayment{})).
				DoAndReturn(func(_ context.Context, p entities.PendingPayment) error {
					if p.ReferenceID != "ref-fixed" {
						t.Errorf("tracked reference = %q, want ref-fixed", p.ReferenceID)
					}
					if p.Status != entities.PaymentStatusPending {
						t.Errorf("tracked status = %q, want PENDING", p.Status)
					}
					return nil
				}),
		)

		outcome, err := uc.InitiateAndTrack(ctx, "0961234567", amount)
		if err != nil {
			t.Fatalf("InitiateAndTrack: %v", err)
		}
		if !outcome.Accepted || outcome.ReferenceID != "ref-fixed" {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})

	t.Run("provider decline is ErrPaymentRejected and is never tracked", func(t *testing.T) {
		uc, gateway, _ := newPaymentUseCaseForTest(t)

		gateway.EXPECT().
			InitiatePayment(ctx, "ref-fixed", "0961234567", amount).
			Return(entities.PaymentOutcome{ReferenceID: "ref-fixed", Accepted: false, RejectionReason: "payer limit reached"}, nil)

		outcome, err := uc.InitiateAndTrack(ctx, "0961234567", amount)
		if !errors.Is(err, ErrPaymentRejected) {
			t.Fatalf("expected ErrPaymentRejected, got %v", err)
		}
		if outcome.RejectionReason != "payer limit reached" {
			t.Fatalf("outcome lost the rejection reason: %+v", outcome)
		}
	})

	t.Run("tracking write failure surfaces ErrTrackingFailed with the accepted outcome", func(t *testing.T) {
		uc, gateway, pending := newPaymentUseCaseForTest(t)

		gateway.EXPECT().
			InitiatePayment(ctx, "ref-fixed", "0961234567", amount).
			Return(entities.PaymentOutcome{ReferenceID: "ref-fixed", Accepted: true}, nil)
		pending.EXPECT().
			Add(ctx, gomock.Any()).
			Return(errors.New("dynamodb unavailable"))

		outcome, err := uc.InitiateAndTrack(ctx, "0961234567", amount)
		if !errors.Is(err, ErrTrackingFailed) {
			t.Fatalf("expected ErrTrackingFailed, got %v", err)
		}
		if !outcome.Accepted {
			t.Fatal("the accepted outcome must survive a tracking failure")
		}
	})

	t.Run("transient provider failure maps to ErrProviderUnavailable", func(t *testing.T) {
		uc, gateway, _ := newPaymentUseCaseForTest(t)

		gateway.EXPECT().
			InitiatePayment(ctx, "ref-fixed", "0961234567", amount).
			Return(entities.PaymentOutcome{}, &providerFailure{transient: true})

		_, err := uc.InitiateAndTrack(ctx, "0961234567", amount)
		if !errors.Is(err, ErrProviderUnavailable) {
			t.Fatalf("expected ErrProviderUnavailable, got %v", err)
		}
	})

	t.Run("authentication failure maps to ErrProviderAuthFailed", func(t *testing.T) {
		uc, gateway, _ := newPaymentUseCaseForTest(t)

		gateway.EXPECT().
			InitiatePayment(ctx, "ref-fixed", "0961234567", amount).
			Return(entities.PaymentOutcome{}, &providerFailure{})

		_, err := uc.InitiateAndTrack(ctx, "0961234567", amount)
		if !errors.Is(err, ErrProviderAuthFailed) {
			t.Fatalf("expected ErrProviderAuthFailed, got %v", err)
		}
	})
}

func TestPaymentUseCase_GetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank reference id", func(t *testing.T) {
		uc, _, _ := newPaymentUseCaseForTest(t)

		if _, err := uc.GetStatus(ctx, " "); !errors.Is(err, ErrInvalidReferenceID) {
			t.Fatalf("expected ErrInvalidReferenceID, got %v", err)
		}
	})

	t.Run("returns the provider status", func(t *testing.T) {
		uc, gateway, _ := newPaymentUseCaseForTest(t)

		gateway.EXPECT().
			ConfirmPayment(ctx, "ref-1").
			Return(entities.PaymentStatusSuccessful, nil)

		status, err := uc.GetStatus(ctx, "ref-1")
		if err != nil {
			t.Fatalf("GetStatus: %v", err)
		}
		if status != entities.PaymentStatusSuccessful {
			t.Fatalf("status = %q, want SUCCESSFUL", status)
		}
	})

	t.Run("unknown reference maps to ErrPaymentNotFound", func(t *testing.T) {
		uc, gateway, _ := newPaymentUseCaseForTest(t)

		gateway.EXPECT().
			ConfirmPayment(ctx, "ref-gone").
			Return(entities.PaymentStatus(""), &providerFailure{notFound: true})

		_, err := uc.GetStatus(ctx, "ref-gone")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_ListPending(t *testing.T) {
	ctx := context.Background()
	uc, _, pending := newPaymentUseCaseForTest(t)

	want := []entities.PendingPayment{{ReferenceID: "a"}, {ReferenceID: "b"}}
	pending.EXPECT().ListAll(ctx).Return(want, nil)

	got, err := uc.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(got) != 2 || got[0].ReferenceID != "a" || got[1].ReferenceID != "b" {
		t.Fatalf("unexpected pending list: %+v", got)
	}
}
