package localization

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/walletgw/gw-wallet-topup/internal/logger"
)

// Translation keys used by the top-up form.
const (
	KeyAmountInvalid   = "topup.amount_invalid"
	KeyMethodRequired  = "topup.method_required"
	KeyDepositHeading  = "topup.heading"
	KeyBalanceLabel    = "topup.balance_label"
	KeySuccessHeading  = "topup.success_heading"
	KeySuccessDetail   = "topup.success_detail"
	KeyAmountLabel     = "topup.amount_label"
	KeyMethodLabel     = "topup.method_label"
	KeyProcessingLabel = "topup.processing"
	KeySubmitLabel     = "topup.submit"
	KeyGenericError    = "topup.generic_error"
)

// keyPrefix namespaces translation entries in the shared Redis store.
const keyPrefix = "i18n:"

// defaultCatalog is the built-in fallback so rendering never depends on Redis.
var defaultCatalog = map[string]string{
	KeyAmountInvalid:   "Please enter a valid amount",
	KeyMethodRequired:  "Please select a payment method",
	KeyDepositHeading:  "Top up wallet",
	KeyBalanceLabel:    "Current balance",
	KeySuccessHeading:  "Deposit successful",
	KeySuccessDetail:   "Your wallet has been topped up with",
	KeyAmountLabel:     "Amount",
	KeyMethodLabel:     "Payment method",
	KeyProcessingLabel: "Processing...",
	KeySubmitLabel:     "Top up",
	KeyGenericError:    "Deposit failed. Please try again.",
}

// RedisClient defines the Redis operations the translator needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Translator resolves display strings by key from the shared Redis store,
// falling back to the built-in catalog. Missing entries are seeded back into
// Redis so edited translations and defaults live in one place.
type Translator struct {
	rdb RedisClient
	ttl time.Duration
}

// New creates a Translator. rdb may be nil, in which case only the built-in
// catalog is used.
func New(rdb RedisClient, ttl time.Duration) *Translator {
	return &Translator{rdb: rdb, ttl: ttl}
}

// Lookup returns the translation for key. Unknown keys resolve to the key
// itself so a missing translation stays visible instead of blank.
func (t *Translator) Lookup(ctx context.Context, key string) string {
	if t.rdb != nil {
		val, err := t.rdb.Get(ctx, keyPrefix+key).Result()
		if err == nil && val != "" {
			return val
		}
		if errors.Is(err, redis.Nil) {
			if def, ok := defaultCatalog[key]; ok {
				if err := t.rdb.Set(ctx, keyPrefix+key, def, t.ttl).Err(); err != nil {
					logger.Log.Warnw("failed to seed translation", "key", key, "error", err)
				}
			}
		} else if err != nil {
			logger.Log.Warnw("translation lookup failed", "key", key, "error", err)
		}
	}

	if def, ok := defaultCatalog[key]; ok {
		return def
	}
	return key
}
