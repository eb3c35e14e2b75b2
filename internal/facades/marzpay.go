// Package facades wraps external collaborators behind typed clients.
package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/logger"
)

var (
	// ErrInvalidAmount is returned when the amount is outside the provider's bounds.
	ErrInvalidAmount = errors.New("amount outside provider bounds")
	// ErrInvalidPhoneFormat is returned when the phone number is not in international format.
	ErrInvalidPhoneFormat = errors.New("phone number must include country code")
)

// GatewayError represents a provider or transport failure, with the
// provider's error code when one was returned.
type GatewayError struct {
	Message    string // Human-readable message
	ErrorCode  string // Provider error code, may be empty
	StatusCode int    // HTTP status, 0 for transport errors
}

func (e *GatewayError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("gateway error %s: %s", e.ErrorCode, e.Message)
	}
	return "gateway error: " + e.Message
}

// MarzPayConfig holds the provider connection settings. Credentials are
// injected from the environment; the facade never persists them.
type MarzPayConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Country   string
	Currency  string
	MinAmount int64
	MaxAmount int64
}

// CollectionResult is the accepted-collection response: the provider's
// transaction identity plus its initial status.
type CollectionResult struct {
	UUID           string
	Reference      string
	ProviderStatus string
}

// CollectionDetails is one observation of a collection's current state.
type CollectionDetails struct {
	ProviderStatus string
	InitiatedAt    time.Time // Zero if the provider omitted it
	UpdatedAt      time.Time // Zero if the provider omitted it
	Raw            json.RawMessage
}

// MarzPayFacade is a stateless client for the MarzPay collection API.
type MarzPayFacade struct {
	cfg    MarzPayConfig
	client *http.Client
}

// NewMarzPayFacade creates a facade. A nil client gets a 10 second timeout.
func NewMarzPayFacade(cfg MarzPayConfig, client *http.Client) *MarzPayFacade {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &MarzPayFacade{cfg: cfg, client: client}
}

type collectMoneyRequest struct {
	Amount      int64  `json:"amount"`
	PhoneNumber string `json:"phone_number"`
	Country     string `json:"country"`
	Reference   string `json:"reference"`
	Description string `json:"description,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type providerTransaction struct {
	UUID      string `json:"uuid"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

type providerTimeline struct {
	InitiatedAt string `json:"initiated_at"`
	UpdatedAt   string `json:"updated_at"`
}

type providerEnvelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
	Data      struct {
		Transaction providerTransaction `json:"transaction"`
		Timeline    providerTimeline    `json:"timeline"`
	} `json:"data"`
}

// CollectMoney submits a mobile-money collection request. Amount and phone
// format are validated before any network call; validation failures are
// never retried. A generated uuid serves as the merchant reference.
func (f *MarzPayFacade) CollectMoney(ctx context.Context, amount int64, phoneNumber, description string) (*CollectionResult, error) {
	if amount < f.cfg.MinAmount || amount > f.cfg.MaxAmount {
		return nil, fmt.Errorf("%w: amount must be between %d and %d %s",
			ErrInvalidAmount, f.cfg.MinAmount, f.cfg.MaxAmount, f.cfg.Currency)
	}
	if len(phoneNumber) == 0 || phoneNumber[0] != '+' {
		return nil, fmt.Errorf("%w (e.g. +256xxxxxxxxx)", ErrInvalidPhoneFormat)
	}

	if description == "" {
		description = "Payment for book purchase"
	}

	body := collectMoneyRequest{
		Amount:      amount,
		PhoneNumber: phoneNumber,
		Country:     f.cfg.Country,
		Reference:   uuid.NewString(),
		Description: description,
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.cfg.BaseURL+"/collect-money", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(f.cfg.APIKey, f.cfg.APISecret)
	req.Header.Set("Content-Type", "application/json")

	logger.Log.Infow("marzpay collect-money request",
		"amount", amount, "phone_number", phoneNumber, "reference", body.Reference)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &GatewayError{Message: err.Error(), ErrorCode: "NETWORK_ERROR"}
	}
	defer resp.Body.Close()

	env, gwErr := decodeEnvelope(resp)
	if gwErr != nil {
		return nil, gwErr
	}

	logger.Log.Infow("marzpay collection accepted",
		"uuid", env.Data.Transaction.UUID,
		"reference", env.Data.Transaction.Reference,
		"status", env.Data.Transaction.Status)

	return &CollectionResult{
		UUID:           env.Data.Transaction.UUID,
		Reference:      env.Data.Transaction.Reference,
		ProviderStatus: env.Data.Transaction.Status,
	}, nil
}

// GetCollectionDetails fetches the current state of a collection. It has no
// side effects and may be called arbitrarily often.
func (f *MarzPayFacade) GetCollectionDetails(ctx context.Context, txUUID string) (*CollectionDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.BaseURL+"/collect-money/"+txUUID, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(f.cfg.APIKey, f.cfg.APISecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &GatewayError{Message: err.Error(), ErrorCode: "NETWORK_ERROR"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GatewayError{Message: err.Error(), ErrorCode: "NETWORK_ERROR", StatusCode: resp.StatusCode}
	}

	var env providerEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &GatewayError{Message: "malformed provider response", StatusCode: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || env.Status == "error" {
		msg := env.Message
		if msg == "" {
			msg = "failed to retrieve collection details"
		}
		return nil, &GatewayError{Message: msg, ErrorCode: env.ErrorCode, StatusCode: resp.StatusCode}
	}

	return &CollectionDetails{
		ProviderStatus: env.Data.Transaction.Status,
		InitiatedAt:    parseProviderTime(env.Data.Timeline.InitiatedAt),
		UpdatedAt:      parseProviderTime(env.Data.Timeline.UpdatedAt),
		Raw:            json.RawMessage(raw),
	}, nil
}

func decodeEnvelope(resp *http.Response) (*providerEnvelope, *GatewayError) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GatewayError{Message: err.Error(), ErrorCode: "NETWORK_ERROR", StatusCode: resp.StatusCode}
	}

	var env providerEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &GatewayError{Message: "malformed provider response", StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || env.Status != "success" {
		msg := env.Message
		if msg == "" {
			msg = "collection failed"
		}
		return nil, &GatewayError{Message: msg, ErrorCode: env.ErrorCode, StatusCode: resp.StatusCode}
	}

	return &env, nil
}

func parseProviderTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
