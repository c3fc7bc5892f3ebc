package models

// Transaction represents a wallet transaction published to the transaction topic.
type Transaction struct {
	TransactionID string  `json:"transaction_id"` // Unique identifier for the transaction
	Timestamp     int64   `json:"timestamp"`      // Unix timestamp (in seconds) when the transaction occurred
	Amount        float64 `json:"amount"`         // Monetary value of the transaction
	Currency      string  `json:"currency"`       // Currency code of the amount
	UserID        string  `json:"user_id"`        // Identifier of the user who initiated the transaction
	MethodID      string  `json:"method_id"`      // Payment method used, empty when not applicable
	Operation     string  `json:"operation"`      // Type of transaction, e.g. "topup"
}
