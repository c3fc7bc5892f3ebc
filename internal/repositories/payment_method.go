package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/walletgw/gw-wallet-topup/internal/logger"
	"github.com/walletgw/gw-wallet-topup/internal/models"
)

// PaymentMethodReadRepository handles payment method read operations.
// Methods are registered elsewhere; this service only lists and resolves them.
type PaymentMethodReadRepository struct {
	db *sqlx.DB
}

func NewPaymentMethodReadRepository(db *sqlx.DB) *PaymentMethodReadRepository {
	return &PaymentMethodReadRepository{db: db}
}

// ListByUserID returns the user's payment methods, default method first,
// then oldest first.
func (r *PaymentMethodReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethodDB, error) {
	const query = `
		SELECT method_id, user_id, display_name, method_type, last4, is_default, created_at, updated_at
		FROM payment_methods
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at ASC
	`

	var methods []models.PaymentMethodDB
	err := r.db.SelectContext(ctx, &methods, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(methods),
		"error", err,
	)

	return methods, err
}

// GetByID returns a single payment method owned by the user.
// Returns sql.ErrNoRows when the method does not exist or belongs to
// someone else.
func (r *PaymentMethodReadRepository) GetByID(ctx context.Context, userID, methodID uuid.UUID) (*models.PaymentMethodDB, error) {
	const query = `
		SELECT method_id, user_id, display_name, method_type, last4, is_default, created_at, updated_at
		FROM payment_methods
		WHERE user_id = $1 AND method_id = $2
	`

	var method models.PaymentMethodDB
	err := r.db.GetContext(ctx, &method, query, userID, methodID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, methodID},
		"result", method,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &method, nil
}
