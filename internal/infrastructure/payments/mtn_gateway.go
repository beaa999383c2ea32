package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"momo_gateway/internal/domain/entities"
)

type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

var (
	ErrMissingConfig       = errors.New("missing momo configuration")
	ErrNotAuthenticated    = errors.New("momo api credentials not provisioned")
	ErrInvalidReferenceID  = errors.New("invalid reference id")
	ErrInvalidPayerAccount = errors.New("invalid payer account")
	ErrInvalidAmount       = errors.New("invalid amount")
)

const (
	tokenMaxAttempts   = 4
	tokenExpirySafety  = 60 * time.Second
	defaultHTTPTimeout = 15 * time.Second

	// Sandbox settles in EUR regardless of the real market; this is a
	// provider sandbox constraint, not a business rule.
	sandboxCurrency    = "EUR"
	productionCurrency = "ZMW"

	providerCodeNotFound = "RESOURCE_NOT_FOUND"
	notFoundMessage      = "Requested resource was not found."
)

// GatewayError carries the wire-level detail of a failed provider call.
//
// Transient failures (transport errors, 5xx) are safe to retry; NotFound
// marks a reference the provider no longer recognizes, which reconciliation
// treats as terminal.
type GatewayError struct {
	Op           string
	StatusCode   int
	ProviderCode string
	Body         string
	Err          error

	transient bool
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("momo %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("momo %s: status=%d body=%s", e.Op, e.StatusCode, e.Body)
}

func (e *GatewayError) Unwrap() error { return e.Err }

func (e *GatewayError) Transient() bool { return e.transient }

// NotFound reports whether the provider no longer recognizes the resource.
// Checked structurally (HTTP 404 or the provider error code); the literal
// message match is kept only as a last resort for responses without a code.
func (e *GatewayError) NotFound() bool {
	if e.StatusCode == http.StatusNotFound || e.ProviderCode == providerCodeNotFound {
		return true
	}
	return strings.Contains(e.Body, notFoundMessage)
}

// Config holds the per-environment MoMo collection settings.
type Config struct {
	Environment     Environment
	BaseURL         string
	APIUser         string
	APIKey          string
	SubscriptionKey string
	CallbackURL     string
	CallbackHost    string
	Currency        string
	HTTPTimeout     time.Duration
}

// ConfigFromEnv builds the gateway configuration from environment variables.
//
// Supported env vars:
//   - MOMO_ENV (sandbox unless "production")
//   - MOMO_SANDBOX_BASE_URL / MOMO_PROD_BASE_URL
//   - MOMO_PROD_API_USER / MOMO_PROD_API_KEY (production only; sandbox self-provisions)
//   - MOMO_SUBSCRIPTION_KEY
//   - MOMO_CALLBACK_URL / MOMO_CALLBACK_HOST
//   - MOMO_HTTP_TIMEOUT_SECONDS (default 15)
func ConfigFromEnv() (Config, error) {
	env := EnvironmentSandbox
	if strings.TrimSpace(os.Getenv("MOMO_ENV")) == string(EnvironmentProduction) {
		env = EnvironmentProduction
	}

	cfg := Config{
		Environment:     env,
		SubscriptionKey: os.Getenv("MOMO_SUBSCRIPTION_KEY"),
		CallbackURL:     os.Getenv("MOMO_CALLBACK_URL"),
		CallbackHost:    os.Getenv("MOMO_CALLBACK_HOST"),
		Currency:        sandboxCurrency,
		HTTPTimeout:     defaultHTTPTimeout,
	}

	if env == EnvironmentProduction {
		cfg.BaseURL = os.Getenv("MOMO_PROD_BASE_URL")
		cfg.APIUser = os.Getenv("MOMO_PROD_API_USER")
		cfg.APIKey = os.Getenv("MOMO_PROD_API_KEY")
		cfg.Currency = productionCurrency
	} else {
		cfg.BaseURL = os.Getenv("MOMO_SANDBOX_BASE_URL")
	}

	if v := os.Getenv("MOMO_HTTP_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	return cfg, validateConfig(cfg)
}

func validateConfig(cfg Config) error {
	required := map[string]string{
		"base url":         cfg.BaseURL,
		"subscription key": cfg.SubscriptionKey,
		"callback url":     cfg.CallbackURL,
		"callback host":    cfg.CallbackHost,
	}
	if cfg.Environment == EnvironmentProduction {
		required["api user"] = cfg.APIUser
		required["api key"] = cfg.APIKey
	}
	for name, v := range required {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s", ErrMissingConfig, name)
		}
	}
	return nil
}

// MtnGateway is the MTN MoMo collection client. It owns all wire interaction
// with the provider: sandbox credential bootstrap, token acquisition, payment
// initiation and payment-status queries. It performs no persistence.
//
// One instance is constructed by the composition root and injected everywhere
// it is needed, so sandbox credentials are provisioned once per process.

type MtnGateway struct {
	cfg    Config
	client *http.Client

	// apiUser/apiKey are written during Initialize (sandbox bootstrap) and
	// read-only afterwards; the token cache is refreshed on expiry.
	mu          sync.Mutex
	apiUser     string
	apiKey      string
	token       string
	tokenExpiry time.Time
}

func NewMtnGateway(cfg Config) (*MtnGateway, error) {
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.Currency == "" {
		cfg.Currency = sandboxCurrency
		if cfg.Environment == EnvironmentProduction {
			cfg.Currency = productionCurrency
		}
	}
	if err := validateConfig(cfg); err != nil {
		log.Printf("[payment][gateway] invalid configuration err=%v", err)
		return nil, err
	}

	return &MtnGateway{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
		apiUser: cfg.APIUser,
		apiKey:  cfg.APIKey,
	}, nil
}

// Initialize provisions sandbox credentials: it creates an api-user keyed by
// a fresh UUID, then an api-key scoped to it. Production is a no-op (the
// credentials come from configuration).
//
// A bootstrap failure leaves the credentials unset; subsequent operations
// fail with ErrNotAuthenticated instead of crashing the process. The caller
// decides whether that degradation is acceptable.
func (g *MtnGateway) Initialize(ctx context.Context) error {
	if g.cfg.Environment != EnvironmentSandbox {
		return nil
	}

	apiUser, err := g.createAPIUser(ctx)
	if err != nil {
		log.Printf("[payment][gateway] sandbox api-user bootstrap failed err=%v", err)
		return err
	}

	apiKey, err := g.createAPIKey(ctx, apiUser)
	if err != nil {
		log.Printf("[payment][gateway] sandbox api-key bootstrap failed api_user=%s err=%v", apiUser, err)
		return err
	}

	g.mu.Lock()
	g.apiUser = apiUser
	g.apiKey = apiKey
	g.mu.Unlock()

	log.Printf("[payment][gateway] sandbox credentials provisioned api_user=%s", apiUser)
	return nil
}

func (g *MtnGateway) createAPIUser(ctx context.Context) (string, error) {
	// The reference id submitted as the correlation header becomes the
	// api-user id on the provider side.
	referenceID := uuid.NewString()

	status, body, err := g.apiRequest(ctx, http.MethodPost, "v1_0/apiuser",
		map[string]string{"providerCallbackHost": g.cfg.CallbackHost},
		map[string]string{"X-Reference-Id": referenceID},
	)
	if err != nil {
		return "", err
	}
	if !is2xx(status) {
		return "", newGatewayError("create api user", status, body)
	}
	return referenceID, nil
}

func (g *MtnGateway) createAPIKey(ctx context.Context, apiUser string) (string, error) {
	status, body, err := g.apiRequest(ctx, http.MethodPost, "v1_0/apiuser/"+apiUser+"/apikey", nil, nil)
	if err != nil {
		return "", err
	}
	if !is2xx(status) {
		return "", newGatewayError("create api key", status, body)
	}

	var resp struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.APIKey == "" {
		return "", &GatewayError{Op: "create api key", StatusCode: status, Body: string(body), Err: errors.New("response missing apiKey")}
	}
	return resp.APIKey, nil
}

// AcquireAccessToken returns a usable bearer token or a typed error.
//
// Tokens are cached until their provider-stated lifetime (minus a safety
// margin) elapses. A fresh token exchange uses Basic auth over apiUser:apiKey
// and retries up to 3 additional attempts on any failure.
func (g *MtnGateway) AcquireAccessToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	if g.token != "" && time.Now().Before(g.tokenExpiry) {
		token := g.token
		g.mu.Unlock()
		return token, nil
	}
	apiUser, apiKey := g.apiUser, g.apiKey
	g.mu.Unlock()

	if apiUser == "" || apiKey == "" {
		return "", &GatewayError{Op: "token", Err: ErrNotAuthenticated}
	}

	basic := base64.StdEncoding.EncodeToString([]byte(apiUser + ":" + apiKey))

	var lastErr error
	for attempt := 1; attempt <= tokenMaxAttempts; attempt++ {
		status, body, err := g.apiRequest(ctx, http.MethodPost, "collection/token/", nil,
			map[string]string{"Authorization": "Basic " + basic})
		if err != nil {
			lastErr = err
		} else if !is2xx(status) {
			lastErr = newGatewayError("token", status, body)
		} else {
			var resp struct {
				AccessToken string `json:"access_token"`
				ExpiresIn   int64  `json:"expires_in"`
			}
			if uerr := json.Unmarshal(body, &resp); uerr != nil || resp.AccessToken == "" {
				lastErr = &GatewayError{Op: "token", StatusCode: status, Body: string(body), Err: errors.New("response missing access_token")}
			} else {
				g.mu.Lock()
				g.token = resp.AccessToken
				g.tokenExpiry = time.Now().Add(time.Duration(resp.ExpiresIn)*time.Second - tokenExpirySafety)
				g.mu.Unlock()
				return resp.AccessToken, nil
			}
		}

		if attempt < tokenMaxAttempts {
			log.Printf("[payment][gateway] token request failed attempt=%d/%d err=%v", attempt, tokenMaxAttempts, lastErr)
		}
		if ctx.Err() != nil {
			break
		}
	}

	log.Printf("[payment][gateway] token acquisition exhausted retries err=%v", lastErr)
	return "", lastErr
}

type requestToPayBody struct {
	Amount     string            `json:"amount"`
	Currency   string            `json:"currency"`
	ExternalID string            `json:"externalId"`
	Payer      requestToPayParty `json:"payer"`
}

type requestToPayParty struct {
	PartyIDType string `json:"partyIdType"`
	PartyID     string `json:"partyId"`
}

// InitiatePayment submits a requesttopay carrying referenceID as both the
// idempotency header and the body's external id.
//
// A 2xx acknowledgment yields an Accepted outcome; the charge itself resolves
// asynchronously once the payer approves on their handset. A provider decline
// yields a non-accepted outcome with the provider's reason and must not be
// retried with the same referenceID. Persisting the pending record is the
// caller's responsibility.
func (g *MtnGateway) InitiatePayment(ctx context.Context, referenceID, payerAccount string, amount decimal.Decimal) (entities.PaymentOutcome, error) {
	if strings.TrimSpace(referenceID) == "" {
		return entities.PaymentOutcome{}, ErrInvalidReferenceID
	}
	if strings.TrimSpace(payerAccount) == "" {
		return entities.PaymentOutcome{}, ErrInvalidPayerAccount
	}
	if !amount.IsPositive() {
		return entities.PaymentOutcome{}, ErrInvalidAmount
	}

	token, err := g.AcquireAccessToken(ctx)
	if err != nil {
		return entities.PaymentOutcome{}, err
	}

	log.Printf("[payment][gateway] requesttopay start reference_id=%s amount=%s currency=%s", referenceID, amount.String(), g.cfg.Currency)

	status, body, err := g.apiRequest(ctx, http.MethodPost, "collection/v1_0/requesttopay",
		requestToPayBody{
			Amount:     amount.String(),
			Currency:   g.cfg.Currency,
			ExternalID: referenceID,
			Payer:      requestToPayParty{PartyIDType: "MSISDN", PartyID: payerAccount},
		},
		map[string]string{
			"X-Reference-Id": referenceID,
			"X-Callback-Url": g.cfg.CallbackURL,
			"Authorization":  "Bearer " + token,
		},
	)
	if err != nil {
		return entities.PaymentOutcome{}, err
	}

	if !is2xx(status) {
		reason := rejectionReason(status, body)
		log.Printf("[payment][gateway] requesttopay rejected reference_id=%s status=%d reason=%s", referenceID, status, reason)
		return entities.PaymentOutcome{ReferenceID: referenceID, Accepted: false, RejectionReason: reason}, nil
	}

	log.Printf("[payment][gateway] requesttopay accepted reference_id=%s", referenceID)
	return entities.PaymentOutcome{ReferenceID: referenceID, Accepted: true}, nil
}

// ConfirmPayment queries the provider for the current status of referenceID.
//
// Read-only against provider state and safe to call repeatedly; it is the
// basis of the reconciliation poll loop. Any transport or authentication
// failure is indeterminate: the caller must keep the record pending and retry.
func (g *MtnGateway) ConfirmPayment(ctx context.Context, referenceID string) (entities.PaymentStatus, error) {
	if strings.TrimSpace(referenceID) == "" {
		return "", ErrInvalidReferenceID
	}

	token, err := g.AcquireAccessToken(ctx)
	if err != nil {
		return "", err
	}

	status, body, err := g.apiRequest(ctx, http.MethodGet, "collection/v1_0/requesttopay/"+referenceID, nil,
		map[string]string{"Authorization": "Bearer " + token})
	if err != nil {
		return "", err
	}
	if !is2xx(status) {
		return "", newGatewayError("requesttopay status", status, body)
	}

	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &GatewayError{Op: "requesttopay status", StatusCode: status, Body: string(body), Err: err}
	}

	switch entities.PaymentStatus(resp.Status) {
	case entities.PaymentStatusSuccessful:
		return entities.PaymentStatusSuccessful, nil
	case entities.PaymentStatusPending:
		return entities.PaymentStatusPending, nil
	case entities.PaymentStatusFailed:
		return entities.PaymentStatusFailed, nil
	default:
		return "", &GatewayError{Op: "requesttopay status", StatusCode: status, Body: string(body), Err: fmt.Errorf("unexpected provider status %q", resp.Status)}
	}
}

// apiRequest performs one provider call with the shared headers attached.
// Transport failures come back as transient GatewayErrors; HTTP status
// interpretation is left to the caller.
func (g *MtnGateway) apiRequest(ctx context.Context, method, endpoint string, payload any, extraHeaders map[string]string) (int, []byte, error) {
	op := method + " " + endpoint

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, &GatewayError{Op: op, Err: err}
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, joinURL(g.cfg.BaseURL, endpoint), reqBody)
	if err != nil {
		return 0, nil, &GatewayError{Op: op, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", g.cfg.SubscriptionKey)
	req.Header.Set("X-Target-Environment", string(g.cfg.Environment))
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] transport failure op=%q err=%v", op, err)
		return 0, nil, &GatewayError{Op: op, Err: err, transient: true}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &GatewayError{Op: op, StatusCode: resp.StatusCode, Err: err, transient: true}
	}
	return resp.StatusCode, body, nil
}

func newGatewayError(op string, status int, body []byte) *GatewayError {
	return &GatewayError{
		Op:           op,
		StatusCode:   status,
		ProviderCode: providerErrorCode(body),
		Body:         string(body),
		transient:    status >= http.StatusInternalServerError,
	}
}

func providerErrorCode(body []byte) string {
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	return resp.Code
}

func rejectionReason(status int, body []byte) string {
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return resp.Message
	}
	if len(body) > 0 {
		return string(body)
	}
	return fmt.Sprintf("provider returned status %d", status)
}

func joinURL(base, endpoint string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(endpoint, "/")
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
