package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment method types
const (
	MethodTypeCard   = "card"
	MethodTypeWallet = "wallet"
	MethodTypeOther  = "other"
)

// PaymentMethod is a user-registered means of payment as exposed to the
// top-up form. The form treats the ID as an opaque string.
type PaymentMethod struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`            // card, wallet or other
	Last4       string `json:"last4,omitempty"` // only set for card methods
	Default     bool   `json:"default"`         // pre-selected when the form opens
}

// PaymentMethodDB represents a payment method row in the database
type PaymentMethodDB struct {
	MethodID    uuid.UUID `json:"method_id" db:"method_id"`       // Unique method identifier
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Owner of the method
	DisplayName string    `json:"display_name" db:"display_name"` // Human-readable name
	MethodType  string    `json:"method_type" db:"method_type"`   // card, wallet or other
	Last4       string    `json:"last4" db:"last4"`               // Last four digits for cards, empty otherwise
	IsDefault   bool      `json:"is_default" db:"is_default"`     // Default flag
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Timestamp when the method was registered
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Timestamp of the last update
}

// ToPaymentMethod converts a database row to the form-facing representation.
func (m *PaymentMethodDB) ToPaymentMethod() PaymentMethod {
	last4 := ""
	if m.MethodType == MethodTypeCard {
		last4 = m.Last4
	}
	return PaymentMethod{
		ID:          m.MethodID.String(),
		DisplayName: m.DisplayName,
		Type:        m.MethodType,
		Last4:       last4,
		Default:     m.IsDefault,
	}
}
