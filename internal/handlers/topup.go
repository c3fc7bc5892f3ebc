package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/walletgw/gw-wallet-topup/internal/form"
)

// FormSessions is the top-up form session manager the handlers drive.
type FormSessions interface {
	Open(ctx context.Context, userID uuid.UUID, theme string) (*form.Form, error)
	Get(userID uuid.UUID) (*form.Form, bool)
	Close(userID uuid.UUID) bool
}

// themeHeader selects the light or dark rendering of the form.
const themeHeader = "X-Theme"

// AmountRequest carries raw amount input
// swagger:model AmountRequest
type AmountRequest struct {
	// Raw input, e.g. "25.5"
	Input string `json:"input"`
}

// MethodRequest selects a payment method
// swagger:model MethodRequest
type MethodRequest struct {
	// Payment method ID
	MethodID string `json:"method_id"`
}

// CloseResponse confirms a closed form session
// swagger:model CloseResponse
type CloseResponse struct {
	// default: Form closed
	Message string `json:"message"`
}

func writeView(w http.ResponseWriter, v form.View) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

// NewOpenTopupFormHandler returns an HTTP handler that mounts a top-up form
// session for the user.
// @Summary Open the top-up form
// @Description Opens a form session with the user's payment methods and balance; the default method is pre-selected. An existing session is replaced.
// @Tags topup
// @Produce json
// @Param X-Theme header string false "light or dark"
// @Success 200 {object} form.View "Rendered form"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /wallet/topup/form [post]
// @Security BearerAuth
func NewOpenTopupFormHandler(
	sessions FormSessions,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, tokenGetter, r)
		if !ok {
			return
		}

		theme := r.Header.Get(themeHeader)
		if theme != form.ThemeDark {
			theme = form.ThemeLight
		}

		f, err := sessions.Open(ctx, claims.UserID, theme)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		writeView(w, f.View(ctx))
	}
}

// NewGetTopupFormHandler returns an HTTP handler rendering the current form view.
// @Summary Get the top-up form view
// @Tags topup
// @Produce json
// @Success 200 {object} form.View "Rendered form"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open form"
// @Router /wallet/topup/form [get]
// @Security BearerAuth
func NewGetTopupFormHandler(
	sessions FormSessions,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, tokenGetter, r)
		if !ok {
			return
		}

		f, ok := sessions.Get(claims.UserID)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No open form"})
			return
		}

		writeView(w, f.View(ctx))
	}
}

// NewTopupAmountHandler returns an HTTP handler applying raw amount input.
// @Summary Update the top-up amount
// @Description Applies raw input to the amount field. Non-numeric characters are stripped; a second decimal point or a third fractional digit is rejected and the previous value kept.
// @Tags topup
// @Accept json
// @Produce json
// @Param amountRequest body handlers.AmountRequest true "Raw amount input"
// @Success 200 {object} form.View "Rendered form"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open form"
// @Router /wallet/topup/form/amount [post]
// @Security BearerAuth
func NewTopupAmountHandler(
	sessions FormSessions,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, tokenGetter, r)
		if !ok {
			return
		}

		var req AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		f, ok := sessions.Get(claims.UserID)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No open form"})
			return
		}

		f.UpdateAmount(req.Input)
		writeView(w, f.View(ctx))
	}
}

// NewTopupMethodHandler returns an HTTP handler selecting a payment method.
// @Summary Select a payment method
// @Tags topup
// @Accept json
// @Produce json
// @Param methodRequest body handlers.MethodRequest true "Method selection"
// @Success 200 {object} form.View "Rendered form"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open form"
// @Router /wallet/topup/form/method [post]
// @Security BearerAuth
func NewTopupMethodHandler(
	sessions FormSessions,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, tokenGetter, r)
		if !ok {
			return
		}

		var req MethodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		f, ok := sessions.Get(claims.UserID)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No open form"})
			return
		}

		f.SelectMethod(req.MethodID)
		writeView(w, f.View(ctx))
	}
}

// NewTopupSubmitHandler returns an HTTP handler submitting the form.
// Validation and deposit failures surface in the rendered view's error
// banner, not as HTTP errors; the request still succeeds.
// @Summary Submit the top-up form
// @Description Validates the amount and method and forwards the deposit to the payment processor. Failures render in the form's error banner.
// @Tags topup
// @Produce json
// @Success 200 {object} form.View "Rendered form or confirmation"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open form"
// @Router /wallet/topup/form/submit [post]
// @Security BearerAuth
func NewTopupSubmitHandler(
	sessions FormSessions,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, tokenGetter, r)
		if !ok {
			return
		}

		f, ok := sessions.Get(claims.UserID)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No open form"})
			return
		}

		f.Submit(ctx)
		writeView(w, f.View(ctx))
	}
}

// NewCloseTopupFormHandler returns an HTTP handler closing the form session.
// @Summary Close the top-up form
// @Tags topup
// @Produce json
// @Success 200 {object} handlers.CloseResponse "Form closed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open form"
// @Router /wallet/topup/form [delete]
// @Security BearerAuth
func NewCloseTopupFormHandler(
	sessions FormSessions,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, tokenGetter, r)
		if !ok {
			return
		}

		if !sessions.Close(claims.UserID) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No open form"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CloseResponse{Message: "Form closed"})
	}
}
