package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"momo_gateway/internal/domain/entities"
	mock_interfaces "momo_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSubscriptionUseCase_ActivateFromPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank reference id", func(t *testing.T) {
		uc := NewSubscriptionUseCase(mock_interfaces.NewMockISubscriptionRepository(gomock.NewController(t)))

		if err := uc.ActivateFromPayment(ctx, " "); !errors.Is(err, ErrInvalidReferenceID) {
			t.Fatalf("expected ErrInvalidReferenceID, got %v", err)
		}
	})

	t.Run("activates with an active status and a timestamp", func(t *testing.T) {
		repo := mock_interfaces.NewMockISubscriptionRepository(gomock.NewController(t))
		uc := NewSubscriptionUseCase(repo)

		repo.EXPECT().
			Activate(ctx, gomock.AssignableToTypeOf(entities.Subscription{})).
			DoAndReturn(func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
				if s.ReferenceID != "ref-1" {
					t.Errorf("reference = %q, want ref-1", s.ReferenceID)
				}
				if s.Status != entities.SubscriptionStatusActive {
					t.Errorf("status = %q, want active", s.Status)
				}
				if s.ActivatedAt.IsZero() {
					t.Error("ActivatedAt must be set")
				}
				return s, nil
			})

		if err := uc.ActivateFromPayment(ctx, "ref-1"); err != nil {
			t.Fatalf("ActivateFromPayment: %v", err)
		}
	})

	t.Run("surfaces repository failures", func(t *testing.T) {
		repo := mock_interfaces.NewMockISubscriptionRepository(gomock.NewController(t))
		uc := NewSubscriptionUseCase(repo)

		want := errors.New("dynamodb unavailable")
		repo.EXPECT().Activate(ctx, gomock.Any()).Return(entities.Subscription{}, want)

		if err := uc.ActivateFromPayment(ctx, "ref-1"); !errors.Is(err, want) {
			t.Fatalf("expected repository error, got %v", err)
		}
	})
}

func TestSubscriptionUseCase_GetByReferenceID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored subscription", func(t *testing.T) {
		repo := mock_interfaces.NewMockISubscriptionRepository(gomock.NewController(t))
		uc := NewSubscriptionUseCase(repo)

		want := entities.Subscription{
			ReferenceID: "ref-1",
			Status:      entities.SubscriptionStatusActive,
			ActivatedAt: time.Now().UTC(),
		}
		repo.EXPECT().GetByReferenceID(ctx, "ref-1").Return(want, nil)

		got, err := uc.GetByReferenceID(ctx, "ref-1")
		if err != nil {
			t.Fatalf("GetByReferenceID: %v", err)
		}
		if got.ReferenceID != want.ReferenceID || got.Status != want.Status {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("maps a missing record to ErrSubscriptionNotFound", func(t *testing.T) {
		repo := mock_interfaces.NewMockISubscriptionRepository(gomock.NewController(t))
		uc := NewSubscriptionUseCase(repo)

		repo.EXPECT().GetByReferenceID(ctx, "ref-missing").Return(entities.Subscription{}, nil)

		if _, err := uc.GetByReferenceID(ctx, "ref-missing"); !errors.Is(err, ErrSubscriptionNotFound) {
			t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
		}
	})
}
