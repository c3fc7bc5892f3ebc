package form

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/walletgw/gw-wallet-topup/internal/logger"
	"github.com/walletgw/gw-wallet-topup/internal/models"
)

// Gateway is the wallet-side collaborator the manager builds forms on top of.
type Gateway interface {
	PaymentMethods(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (models.Balance, error)
	Deposit(ctx context.Context, userID uuid.UUID, amount float64, methodID string) (models.Balance, error)
}

// Manager owns the per-user top-up form sessions. A user has at most one
// open form; opening again replaces and disposes the previous one.
type Manager struct {
	mu         sync.Mutex
	gateway    Gateway
	translator Translator
	resetDelay time.Duration
	forms      map[uuid.UUID]*Form
}

// NewManager creates a session manager. A non-positive resetDelay falls back
// to DefaultResetDelay.
func NewManager(gateway Gateway, translator Translator, resetDelay time.Duration) *Manager {
	return &Manager{
		gateway:    gateway,
		translator: translator,
		resetDelay: resetDelay,
		forms:      make(map[uuid.UUID]*Form),
	}
}

// userDepositor curries the gateway with the session's user ID so the form
// sees the deposit(amount, methodID) shape.
type userDepositor struct {
	gateway Gateway
	userID  uuid.UUID
}

func (d *userDepositor) Deposit(ctx context.Context, amount float64, methodID string) (models.Balance, error) {
	return d.gateway.Deposit(ctx, d.userID, amount, methodID)
}

// Open mounts a new form for the user: loads payment methods and balance,
// pre-selects the default method and registers the session.
func (m *Manager) Open(ctx context.Context, userID uuid.UUID, theme string) (*Form, error) {
	methods, err := m.gateway.PaymentMethods(ctx, userID)
	if err != nil {
		return nil, err
	}

	balance, err := m.gateway.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := New(
		&userDepositor{gateway: m.gateway, userID: userID},
		m.translator,
		Config{
			Methods:    methods,
			Balance:    balance,
			Theme:      theme,
			ResetDelay: m.resetDelay,
			OnSuccess: func(amount float64) {
				logger.Log.Infow("topup succeeded", "user_id", userID, "amount", amount)
			},
			OnClose: func() {
				m.remove(userID)
			},
		},
	)

	m.mu.Lock()
	if prev, ok := m.forms[userID]; ok {
		prev.Dispose()
	}
	m.forms[userID] = f
	m.mu.Unlock()

	return f, nil
}

// Get returns the user's open form, if any.
func (m *Manager) Get(userID uuid.UUID) (*Form, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.forms[userID]
	return f, ok
}

// Close closes and disposes the user's form session. It reports whether a
// session existed.
func (m *Manager) Close(userID uuid.UUID) bool {
	m.mu.Lock()
	f, ok := m.forms[userID]
	m.mu.Unlock()
	if !ok {
		return false
	}

	f.Close()
	f.Dispose()
	m.remove(userID)
	return true
}

// remove drops the session and disposes the form so a pending reset cannot
// touch it afterwards.
func (m *Manager) remove(userID uuid.UUID) {
	m.mu.Lock()
	f, ok := m.forms[userID]
	if ok {
		delete(m.forms, userID)
	}
	m.mu.Unlock()

	if ok {
		f.Dispose()
	}
}
