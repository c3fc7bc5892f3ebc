package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/walletgw/gw-wallet-topup/internal/jwt"
	"github.com/walletgw/gw-wallet-topup/internal/logger"
)

// Tokener defines the token operations protected handlers need.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is the generic error envelope
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// authorize extracts and validates the caller's claims, writing a 401
// response on failure.
func authorize(ctx context.Context, w http.ResponseWriter, tokenGetter Tokener, r *http.Request) (*jwt.Claims, bool) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	return claims, true
}
