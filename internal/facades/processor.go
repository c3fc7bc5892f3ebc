package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/walletgw/gw-wallet-topup/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ErrProcessorUnavailable is returned when the processor fails its health
// probe and the deposit is not dispatched.
var ErrProcessorUnavailable = errors.New("payment processor unavailable")

// DeclinedError carries the processor's human-readable decline reason.
type DeclinedError struct {
	Reason string
}

func (e *DeclinedError) Error() string { return e.Reason }

// HealthChecker is the slice of grpc_health_v1.HealthClient this facade needs.
type HealthChecker interface {
	Check(ctx context.Context, in *grpc_health_v1.HealthCheckRequest, opts ...grpc.CallOption) (*grpc_health_v1.HealthCheckResponse, error)
}

// depositRequest is the JSON body of the processor's deposit endpoint.
type depositRequest struct {
	UserID   string  `json:"user_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	MethodID string  `json:"method_id"`
}

// depositResponse is the processor's reply for both accepted and declined
// deposits.
type depositResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"` // succeeded or declined
	Message string `json:"message"`
}

const statusSucceeded = "succeeded"

// PaymentProcessorFacade is the client for the external payment processor.
// Deposits go over its JSON HTTP API; liveness is probed over its gRPC
// health endpoint before each dispatch.
type PaymentProcessorFacade struct {
	baseURL    string
	httpClient *http.Client
	health     HealthChecker
}

// NewPaymentProcessorFacade creates a facade. httpClient may be nil, in which
// case a client with a 15s timeout is used. health may be nil to skip probing.
func NewPaymentProcessorFacade(baseURL string, httpClient *http.Client, health HealthChecker) *PaymentProcessorFacade {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &PaymentProcessorFacade{
		baseURL:    baseURL,
		httpClient: httpClient,
		health:     health,
	}
}

// Healthy probes the processor's gRPC health endpoint.
func (f *PaymentProcessorFacade) Healthy(ctx context.Context) error {
	if f.health == nil {
		return nil
	}

	resp, err := f.health.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		logger.Log.Errorw("processor health check failed", "error", err)
		return ErrProcessorUnavailable
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		logger.Log.Warnw("processor not serving", "status", resp.GetStatus())
		return ErrProcessorUnavailable
	}
	return nil
}

// ProcessDeposit submits a deposit to the processor and returns the
// processor's reference ID. Declined deposits return a *DeclinedError with
// the processor's reason.
func (f *PaymentProcessorFacade) ProcessDeposit(ctx context.Context, userID uuid.UUID, amount float64, currency, methodID string) (string, error) {
	if err := f.Healthy(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(depositRequest{
		UserID:   userID.String(),
		Amount:   amount,
		Currency: currency,
		MethodID: methodID,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/v1/deposits", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("processor deposit request failed", "user_id", userID, "error", err)
		return "", ErrProcessorUnavailable
	}
	defer resp.Body.Close()

	var out depositResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.Log.Errorw("failed to decode processor response", "status", resp.StatusCode, "error", err)
		return "", fmt.Errorf("unexpected processor response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || out.Status != statusSucceeded {
		logger.Log.Warnw("deposit declined by processor",
			"user_id", userID, "amount", amount, "currency", currency,
			"status", resp.StatusCode, "message", out.Message,
		)
		reason := out.Message
		if reason == "" {
			reason = "deposit was declined"
		}
		return "", &DeclinedError{Reason: reason}
	}

	return out.ID, nil
}
