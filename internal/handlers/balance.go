package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/walletgw/gw-wallet-topup/internal/logger"
	"github.com/walletgw/gw-wallet-topup/internal/models"
)

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (models.Balance, error)
	GetBalances(ctx context.Context, userID uuid.UUID) (map[string]float64, error)
}

// BalanceResponse represents a successful response with user balances
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Balance in the primary currency
	Balance models.Balance `json:"balance"`

	// All balances keyed by currency code
	Balances map[string]float64 `json:"balances"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching user balances.
// @Summary Get user balance
// @Description Returns the primary balance and balances for all currencies
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "User balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(
	svc BalanceReader,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, tokenGetter, r)
		if !ok {
			return
		}

		balance, err := svc.GetBalance(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		balances, err := svc.GetBalances(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balances", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{
			Balance:  balance,
			Balances: balances,
		})
	}
}
