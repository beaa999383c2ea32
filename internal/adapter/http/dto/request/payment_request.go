package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnsupportedProvider  = errors.New("unsupported payment provider")
	ErrInvalidPhoneNumber   = errors.New("invalid phone number")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
)

const providerMtn = "mtn"

// PaymentCreateRequest is the payload for initiating a mobile-money payment.
//
// The phone number is the account charged; the provider prompts it for the
// mobile-money PIN. Only MTN is supported; Airtel remains unimplemented.
type PaymentCreateRequest struct {
	Provider    string          `json:"provider"`
	PhoneNumber string          `json:"phone_number" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ResolveProvider normalizes the provider selector; empty defaults to MTN.
func (r PaymentCreateRequest) ResolveProvider() (string, error) {
	p := strings.ToLower(strings.TrimSpace(r.Provider))
	if p == "" || p == providerMtn {
		return providerMtn, nil
	}
	return "", ErrUnsupportedProvider
}

func (r PaymentCreateRequest) ResolvePhoneNumber() (string, error) {
	if v := strings.TrimSpace(r.PhoneNumber); v != "" {
		return v, nil
	}
	return "", ErrInvalidPhoneNumber
}

func (r PaymentCreateRequest) ResolveAmount() (decimal.Decimal, error) {
	if r.Amount.IsPositive() {
		return r.Amount, nil
	}
	return decimal.Decimal{}, ErrInvalidPaymentAmount
}
