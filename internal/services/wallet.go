package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/walletgw/gw-wallet-topup/internal/logger"
	"github.com/walletgw/gw-wallet-topup/internal/models"
)

// ErrPaymentMethodNotFound is returned when a deposit names a method the
// user does not own.
var ErrPaymentMethodNotFound = errors.New("payment method not found")

// WalletWriter defines methods for writing deposits.
type WalletWriter interface {
	SaveDeposit(ctx context.Context, userID uuid.UUID, amount float64, currency string) (float64, error)
}

// WalletReader defines methods for reading user balances.
type WalletReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID, currency string) (float64, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (map[string]float64, error)
}

// PaymentMethodReader defines methods for reading a user's payment methods.
type PaymentMethodReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethodDB, error)
	GetByID(ctx context.Context, userID, methodID uuid.UUID) (*models.PaymentMethodDB, error)
}

// PaymentProcessor submits deposits to the external payment processor.
type PaymentProcessor interface {
	ProcessDeposit(ctx context.Context, userID uuid.UUID, amount float64, currency, methodID string) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// WalletService handles top-up operations and Kafka publishing.
type WalletService struct {
	writeRepo   WalletWriter
	readRepo    WalletReader
	methodRepo  PaymentMethodReader
	processor   PaymentProcessor
	kafkaWriter KafkaWriter
	currency    string
}

// NewWalletService creates a new WalletService. currency is the primary
// currency the top-up form operates in; empty falls back to the default.
func NewWalletService(
	writeRepo WalletWriter,
	readRepo WalletReader,
	methodRepo PaymentMethodReader,
	processor PaymentProcessor,
	kafkaWriter KafkaWriter,
	currency string,
) *WalletService {
	if currency == "" {
		currency = models.DefaultCurrency
	}
	return &WalletService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		methodRepo:  methodRepo,
		processor:   processor,
		kafkaWriter: kafkaWriter,
		currency:    currency,
	}
}

// publishTransaction publishes a transaction to Kafka.
func (s *WalletService) publishTransaction(ctx context.Context, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}

// Deposit tops up a user's balance through the payment processor, persists
// the new balance and publishes the transaction. The methodID must name a
// payment method owned by the user; it may be empty only when the user has
// no registered methods (the processor then uses its own default routing).
func (s *WalletService) Deposit(ctx context.Context, userID uuid.UUID, amount float64, methodID string) (models.Balance, error) {
	if methodID != "" {
		id, err := uuid.Parse(methodID)
		if err != nil {
			return models.Balance{}, ErrPaymentMethodNotFound
		}
		if _, err := s.methodRepo.GetByID(ctx, userID, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return models.Balance{}, ErrPaymentMethodNotFound
			}
			logger.Log.Errorw("failed to resolve payment method", "userID", userID, "methodID", methodID, "error", err)
			return models.Balance{}, err
		}
	}

	providerRef, err := s.processor.ProcessDeposit(ctx, userID, amount, s.currency, methodID)
	if err != nil {
		logger.Log.Errorw("processor rejected deposit", "userID", userID, "amount", amount, "error", err)
		return models.Balance{}, err
	}

	balance, err := s.writeRepo.SaveDeposit(ctx, userID, amount, s.currency)
	if err != nil {
		logger.Log.Errorw("failed to save deposit", "userID", userID, "amount", amount, "provider_ref", providerRef, "error", err)
		return models.Balance{}, err
	}

	txn := models.Transaction{
		TransactionID: uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount,
		Currency:      s.currency,
		UserID:        userID.String(),
		MethodID:      methodID,
		Operation:     "topup",
	}
	s.publishTransaction(ctx, txn)

	return models.Balance{Amount: balance, Currency: s.currency}, nil
}

// GetBalance returns the user's balance in the primary currency.
func (s *WalletService) GetBalance(ctx context.Context, userID uuid.UUID) (models.Balance, error) {
	balance, err := s.readRepo.GetBalance(ctx, userID, s.currency)
	if err != nil {
		logger.Log.Errorw("failed to get user balance", "userID", userID, "error", err)
		return models.Balance{}, err
	}
	return models.Balance{Amount: balance, Currency: s.currency}, nil
}

// GetBalances returns all of the user's balances keyed by currency.
func (s *WalletService) GetBalances(ctx context.Context, userID uuid.UUID) (map[string]float64, error) {
	balances, err := s.readRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user balances", "userID", userID, "error", err)
		return nil, err
	}
	return balances, nil
}

// PaymentMethods returns the user's payment methods in display order.
func (s *WalletService) PaymentMethods(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error) {
	rows, err := s.methodRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list payment methods", "userID", userID, "error", err)
		return nil, err
	}

	methods := make([]models.PaymentMethod, 0, len(rows))
	for i := range rows {
		methods = append(methods, rows[i].ToPaymentMethod())
	}
	return methods, nil
}
