package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported currency codes
const (
	TND = "TND"
	USD = "USD"
	EUR = "EUR"
)

// DefaultCurrency is the currency the top-up form operates in.
const DefaultCurrency = TND

// WalletDB represents a wallet row in the database
type WalletDB struct {
	WalletID  uuid.UUID `json:"wallet_id" db:"wallet_id"`   // Unique wallet identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the wallet's owner
	Currency  string    `json:"currency" db:"currency"`     // Currency code (e.g., TND, USD, EUR)
	Balance   float64   `json:"balance" db:"balance"`       // Current balance in the wallet
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last wallet update
}

// Balance is a wallet balance together with its currency code.
type Balance struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
