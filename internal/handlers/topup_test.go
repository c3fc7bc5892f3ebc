package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walletgw/gw-wallet-topup/internal/form"
	"github.com/walletgw/gw-wallet-topup/internal/jwt"
	"github.com/walletgw/gw-wallet-topup/internal/localization"
	"github.com/walletgw/gw-wallet-topup/internal/models"
)

// stubGateway backs the form session handlers with canned wallet data.
type stubGateway struct {
	methods    []models.PaymentMethod
	balance    models.Balance
	depositErr error
}

func (g *stubGateway) PaymentMethods(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error) {
	return g.methods, nil
}

func (g *stubGateway) GetBalance(ctx context.Context, userID uuid.UUID) (models.Balance, error) {
	return g.balance, nil
}

func (g *stubGateway) Deposit(ctx context.Context, userID uuid.UUID, amount float64, methodID string) (models.Balance, error) {
	if g.depositErr != nil {
		return models.Balance{}, g.depositErr
	}
	g.balance.Amount += amount
	return g.balance, nil
}

func newTopupFixture(t *testing.T, ctrl *gomock.Controller, gw *stubGateway) (*form.Manager, *MockTokener, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	translator := localization.New(nil, 0)
	sessions := form.NewManager(gw, translator, time.Hour)

	mockTokenGetter := NewMockTokener(ctrl)
	mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("valid-token", nil).AnyTimes()
	mockTokenGetter.EXPECT().GetClaims(gomock.Any(), "valid-token").
		Return(&jwt.Claims{UserID: userID}, nil).AnyTimes()

	return sessions, mockTokenGetter, userID
}

func decodeView(t *testing.T, body []byte) form.View {
	t.Helper()
	var v form.View
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func TestOpenTopupFormHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := &stubGateway{
		methods: []models.PaymentMethod{
			{ID: uuid.New().String(), DisplayName: "Visa", Type: models.MethodTypeCard, Last4: "4242", Default: true},
			{ID: uuid.New().String(), DisplayName: "Flouci", Type: models.MethodTypeWallet},
		},
		balance: models.Balance{Amount: 120, Currency: models.TND},
	}
	sessions, mockTokenGetter, _ := newTopupFixture(t, ctrl, gw)

	req := httptest.NewRequest(http.MethodPost, "/wallet/topup/form", nil)
	req.Header.Set("X-Theme", "dark")
	w := httptest.NewRecorder()

	NewOpenTopupFormHandler(sessions, mockTokenGetter).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	v := decodeView(t, w.Body.Bytes())
	assert.Equal(t, form.KindForm, v.Kind)
	assert.Equal(t, form.ThemeDark, v.Theme)
	require.NotNil(t, v.Form)
	assert.Equal(t, "120.00 TND", v.Form.Balance)
	require.Len(t, v.Form.Methods, 2)
	assert.True(t, v.Form.Methods[0].Selected)
	assert.Equal(t, "**** 4242", v.Form.Methods[0].Detail)
	assert.False(t, v.Form.SubmitEnabled)
}

func TestGetTopupFormHandler_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions, mockTokenGetter, _ := newTopupFixture(t, ctrl, &stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/wallet/topup/form", nil)
	w := httptest.NewRecorder()

	NewGetTopupFormHandler(sessions, mockTokenGetter).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No open form", resp.Error)
}

func TestTopupAmountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := &stubGateway{
		methods: []models.PaymentMethod{
			{ID: uuid.New().String(), DisplayName: "Visa", Type: models.MethodTypeCard, Last4: "4242", Default: true},
		},
		balance: models.Balance{Amount: 10, Currency: models.TND},
	}
	sessions, mockTokenGetter, userID := newTopupFixture(t, ctrl, gw)

	_, err := sessions.Open(context.Background(), userID, form.ThemeLight)
	require.NoError(t, err)

	handler := NewTopupAmountHandler(sessions, mockTokenGetter)

	send := func(input string) form.View {
		body, _ := json.Marshal(AmountRequest{Input: input})
		req := httptest.NewRequest(http.MethodPost, "/wallet/topup/form/amount", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return decodeView(t, w.Body.Bytes())
	}

	v := send("25.5abc")
	require.NotNil(t, v.Form)
	assert.Equal(t, "25.5", v.Form.AmountText)
	assert.True(t, v.Form.SubmitEnabled)

	// a third fractional digit is rejected, keeping the previous value
	v = send("25.555")
	require.NotNil(t, v.Form)
	assert.Equal(t, "25.5", v.Form.AmountText)
}

func TestTopupMethodHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m1 := uuid.New().String()
	m2 := uuid.New().String()
	gw := &stubGateway{
		methods: []models.PaymentMethod{
			{ID: m1, DisplayName: "Visa", Type: models.MethodTypeCard, Last4: "4242", Default: true},
			{ID: m2, DisplayName: "Flouci", Type: models.MethodTypeWallet},
		},
		balance: models.Balance{Amount: 10, Currency: models.TND},
	}
	sessions, mockTokenGetter, userID := newTopupFixture(t, ctrl, gw)

	_, err := sessions.Open(context.Background(), userID, form.ThemeLight)
	require.NoError(t, err)

	body, _ := json.Marshal(MethodRequest{MethodID: m2})
	req := httptest.NewRequest(http.MethodPost, "/wallet/topup/form/method", bytes.NewReader(body))
	w := httptest.NewRecorder()

	NewTopupMethodHandler(sessions, mockTokenGetter).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	v := decodeView(t, w.Body.Bytes())
	require.NotNil(t, v.Form)
	assert.False(t, v.Form.Methods[0].Selected)
	assert.True(t, v.Form.Methods[1].Selected)
}

func TestTopupSubmitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		amount     string
		depositErr error
		wantKind   string
		wantError  string
	}{
		{
			name:     "success",
			amount:   "25.50",
			wantKind: form.KindSuccess,
		},
		{
			name:      "invalid amount renders banner",
			amount:    "",
			wantKind:  form.KindForm,
			wantError: "Please enter a valid amount",
		},
		{
			name:       "deposit failure renders banner",
			amount:     "25.50",
			depositErr: errors.New("card declined"),
			wantKind:   form.KindForm,
			wantError:  "card declined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{
				methods: []models.PaymentMethod{
					{ID: uuid.New().String(), DisplayName: "Visa", Type: models.MethodTypeCard, Last4: "4242", Default: true},
				},
				balance:    models.Balance{Amount: 100, Currency: models.TND},
				depositErr: tt.depositErr,
			}
			sessions, mockTokenGetter, userID := newTopupFixture(t, ctrl, gw)

			f, err := sessions.Open(context.Background(), userID, form.ThemeLight)
			require.NoError(t, err)
			f.UpdateAmount(tt.amount)

			req := httptest.NewRequest(http.MethodPost, "/wallet/topup/form/submit", nil)
			w := httptest.NewRecorder()

			NewTopupSubmitHandler(sessions, mockTokenGetter).ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			v := decodeView(t, w.Body.Bytes())
			assert.Equal(t, tt.wantKind, v.Kind)

			switch tt.wantKind {
			case form.KindSuccess:
				require.NotNil(t, v.Success)
				assert.Equal(t, "25.50 TND", v.Success.Amount)
			case form.KindForm:
				require.NotNil(t, v.Form)
				assert.Equal(t, tt.wantError, v.Form.Error)
			}
		})
	}
}

func TestCloseTopupFormHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := &stubGateway{
		methods: []models.PaymentMethod{
			{ID: uuid.New().String(), DisplayName: "Visa", Type: models.MethodTypeCard, Last4: "4242", Default: true},
		},
		balance: models.Balance{Amount: 10, Currency: models.TND},
	}
	sessions, mockTokenGetter, userID := newTopupFixture(t, ctrl, gw)

	_, err := sessions.Open(context.Background(), userID, form.ThemeLight)
	require.NoError(t, err)

	handler := NewCloseTopupFormHandler(sessions, mockTokenGetter)

	req := httptest.NewRequest(http.MethodDelete, "/wallet/topup/form", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CloseResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Form closed", resp.Message)

	// second close has nothing to tear down
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/wallet/topup/form", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
