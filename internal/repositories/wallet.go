package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/walletgw/gw-wallet-topup/internal/logger"
)

// WalletWriteRepository handles wallet write operations
type WalletWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriteRepository {
	return &WalletWriteRepository{db: db, txGetter: txGetter}
}

// SaveDeposit performs an UPSERT: creates the wallet if it does not exist,
// otherwise increases the balance. Returns the balance after the deposit.
func (r *WalletWriteRepository) SaveDeposit(ctx context.Context, userID uuid.UUID, amount float64, currency string) (float64, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, currency)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var balance float64
	err := sqlx.GetContext(ctx, executor, &balance, query, uuid.New(), userID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// WalletReadRepository handles wallet read operations
type WalletReadRepository struct {
	db *sqlx.DB
}

func NewWalletReadRepository(db *sqlx.DB) *WalletReadRepository {
	return &WalletReadRepository{db: db}
}

// GetBalance returns the user's balance in the given currency. A user
// without a wallet in that currency has a zero balance.
func (r *WalletReadRepository) GetBalance(ctx context.Context, userID uuid.UUID, currency string) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(balance), 0)
		FROM wallets
		WHERE user_id = $1 AND currency = $2
	`

	var balance float64
	err := r.db.GetContext(ctx, &balance, query, userID, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// GetByUserID retrieves all wallets for a given user as a map[currency]balance
func (r *WalletReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (map[string]float64, error) {
	const query = `
		SELECT currency, balance
		FROM wallets
		WHERE user_id = $1
	`

	var wallets []struct {
		Currency string  `db:"currency"`
		Balance  float64 `db:"balance"`
	}

	err := r.db.SelectContext(ctx, &wallets, query, userID)

	balances := make(map[string]float64, len(wallets))
	for _, w := range wallets {
		balances[w.Currency] = w.Balance
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", balances,
		"error", err,
	)

	return balances, err
}
