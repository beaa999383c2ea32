package request

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestResolveProvider(t *testing.T) {
	t.Run("defaults to mtn when empty", func(t *testing.T) {
		p, err := PaymentCreateRequest{}.ResolveProvider()
		if err != nil || p != "mtn" {
			t.Fatalf("ResolveProvider = (%q, %v), want mtn", p, err)
		}
	})

	t.Run("accepts mtn case-insensitively", func(t *testing.T) {
		p, err := PaymentCreateRequest{Provider: " MTN "}.ResolveProvider()
		if err != nil || p != "mtn" {
			t.Fatalf("ResolveProvider = (%q, %v), want mtn", p, err)
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		if _, err := (PaymentCreateRequest{Provider: "airtel"}).ResolveProvider(); !errors.Is(err, ErrUnsupportedProvider) {
			t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
		}
	})
}

func TestResolvePhoneNumber(t *testing.T) {
	if _, err := (PaymentCreateRequest{PhoneNumber: "   "}).ResolvePhoneNumber(); !errors.Is(err, ErrInvalidPhoneNumber) {
		t.Fatalf("expected ErrInvalidPhoneNumber, got %v", err)
	}

	v, err := PaymentCreateRequest{PhoneNumber: " 0961234567 "}.ResolvePhoneNumber()
	if err != nil || v != "0961234567" {
		t.Fatalf("ResolvePhoneNumber = (%q, %v), want trimmed number", v, err)
	}
}

func TestResolveAmount(t *testing.T) {
	if _, err := (PaymentCreateRequest{Amount: decimal.Zero}).ResolveAmount(); !errors.Is(err, ErrInvalidPaymentAmount) {
		t.Fatalf("expected ErrInvalidPaymentAmount for zero, got %v", err)
	}
	if _, err := (PaymentCreateRequest{Amount: decimal.NewFromInt(-5)}).ResolveAmount(); !errors.Is(err, ErrInvalidPaymentAmount) {
		t.Fatalf("expected ErrInvalidPaymentAmount for negative, got %v", err)
	}

	v, err := PaymentCreateRequest{Amount: decimal.RequireFromString("150.50")}.ResolveAmount()
	if err != nil {
		t.Fatalf("ResolveAmount: %v", err)
	}
	if !v.Equal(decimal.RequireFromString("150.50")) {
		t.Fatalf("amount = %s, want 150.50", v)
	}
}
