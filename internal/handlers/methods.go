package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/walletgw/gw-wallet-topup/internal/logger"
	"github.com/walletgw/gw-wallet-topup/internal/models"
)

// MethodLister defines the interface that the service must implement.
type MethodLister interface {
	PaymentMethods(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error)
}

// MethodsResponse represents the user's payment methods in display order
// swagger:model MethodsResponse
type MethodsResponse struct {
	Methods []models.PaymentMethod `json:"methods"`
}

// NewGetMethodsHandler returns an HTTP handler listing the user's payment methods.
// @Summary List payment methods
// @Description Returns the user's registered payment methods, default method first
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.MethodsResponse "Payment methods"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /wallet/methods [get]
// @Security BearerAuth
func NewGetMethodsHandler(
	svc MethodLister,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, tokenGetter, r)
		if !ok {
			return
		}

		methods, err := svc.PaymentMethods(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list payment methods", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MethodsResponse{Methods: methods})
	}
}
