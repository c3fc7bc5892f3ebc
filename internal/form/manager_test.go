package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/walletgw/gw-wallet-topup/internal/models"
)

type fakeGateway struct {
	methods    []models.PaymentMethod
	methodsErr error
	balance    models.Balance
	balanceErr error

	depositUser   uuid.UUID
	depositAmount float64
	depositMethod string
	depositErr    error
}

func (g *fakeGateway) PaymentMethods(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error) {
	return g.methods, g.methodsErr
}

func (g *fakeGateway) GetBalance(ctx context.Context, userID uuid.UUID) (models.Balance, error) {
	return g.balance, g.balanceErr
}

func (g *fakeGateway) Deposit(ctx context.Context, userID uuid.UUID, amount float64, methodID string) (models.Balance, error) {
	g.depositUser = userID
	g.depositAmount = amount
	g.depositMethod = methodID
	if g.depositErr != nil {
		return models.Balance{}, g.depositErr
	}
	return models.Balance{Amount: g.balance.Amount + amount, Currency: g.balance.Currency}, nil
}

func TestManager_Open(t *testing.T) {
	gw := &fakeGateway{
		methods: cardMethods(),
		balance: models.Balance{Amount: 100, Currency: models.TND},
	}
	m := NewManager(gw, testTranslator(), time.Hour)
	userID := uuid.New()

	f, err := m.Open(context.Background(), userID, ThemeLight)
	assert.NoError(t, err)
	assert.Equal(t, "m1", f.State().SelectedMethodID)

	got, ok := m.Get(userID)
	assert.True(t, ok)
	assert.Same(t, f, got)
}

func TestManager_OpenErrors(t *testing.T) {
	userID := uuid.New()

	m := NewManager(&fakeGateway{methodsErr: errors.New("db down")}, testTranslator(), time.Hour)
	_, err := m.Open(context.Background(), userID, ThemeLight)
	assert.Error(t, err)

	m = NewManager(&fakeGateway{balanceErr: errors.New("db down")}, testTranslator(), time.Hour)
	_, err = m.Open(context.Background(), userID, ThemeLight)
	assert.Error(t, err)

	_, ok := m.Get(userID)
	assert.False(t, ok)
}

func TestManager_OpenReplacesExistingSession(t *testing.T) {
	gw := &fakeGateway{methods: cardMethods(), balance: models.Balance{Currency: models.TND}}
	m := NewManager(gw, testTranslator(), time.Hour)
	userID := uuid.New()

	first, err := m.Open(context.Background(), userID, ThemeLight)
	assert.NoError(t, err)

	second, err := m.Open(context.Background(), userID, ThemeDark)
	assert.NoError(t, err)
	assert.NotSame(t, first, second)

	got, _ := m.Get(userID)
	assert.Same(t, second, got)
}

func TestManager_DepositCurriesUserID(t *testing.T) {
	gw := &fakeGateway{
		methods: cardMethods(),
		balance: models.Balance{Amount: 100, Currency: models.TND},
	}
	m := NewManager(gw, testTranslator(), time.Hour)
	userID := uuid.New()

	f, err := m.Open(context.Background(), userID, ThemeLight)
	assert.NoError(t, err)

	f.UpdateAmount("25.5")
	f.Submit(context.Background())

	assert.Equal(t, userID, gw.depositUser)
	assert.Equal(t, 25.5, gw.depositAmount)
	assert.Equal(t, "m1", gw.depositMethod)
	assert.True(t, f.State().Success)
}

func TestManager_Close(t *testing.T) {
	gw := &fakeGateway{methods: cardMethods(), balance: models.Balance{Currency: models.TND}}
	m := NewManager(gw, testTranslator(), time.Hour)
	userID := uuid.New()

	_, err := m.Open(context.Background(), userID, ThemeLight)
	assert.NoError(t, err)

	assert.True(t, m.Close(userID))
	_, ok := m.Get(userID)
	assert.False(t, ok)

	// Closing again reports no session.
	assert.False(t, m.Close(userID))
}

func TestManager_SessionRemovedAfterSuccessReset(t *testing.T) {
	gw := &fakeGateway{
		methods: cardMethods(),
		balance: models.Balance{Amount: 100, Currency: models.TND},
	}
	m := NewManager(gw, testTranslator(), 20*time.Millisecond)
	userID := uuid.New()

	f, err := m.Open(context.Background(), userID, ThemeLight)
	assert.NoError(t, err)

	f.UpdateAmount("10")
	f.Submit(context.Background())
	assert.True(t, f.State().Success)

	assert.Eventually(t, func() bool {
		_, ok := m.Get(userID)
		return !ok
	}, time.Second, 5*time.Millisecond, "session should be removed after the post-success reset")
}
