package form

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/walletgw/gw-wallet-topup/internal/localization"
	"github.com/walletgw/gw-wallet-topup/internal/models"
)

// Theme values, presentation only
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultResetDelay is how long the success confirmation stays on screen
// before the form resets and the close callback fires.
const DefaultResetDelay = 2 * time.Second

// Depositor is the external payment collaborator the form submits to.
// On success it returns the wallet balance after the deposit.
type Depositor interface {
	Deposit(ctx context.Context, amount float64, methodID string) (models.Balance, error)
}

// Translator resolves display strings by key.
type Translator interface {
	Lookup(ctx context.Context, key string) string
}

// State is the transient UI state of the top-up form.
type State struct {
	AmountText       string `json:"amount_text"`
	SelectedMethodID string `json:"selected_method_id"`
	Processing       bool   `json:"processing"`
	ErrorMessage     string `json:"error_message"`
	Success          bool   `json:"success"`
}

// Config carries the externally supplied, read-only inputs of a form.
type Config struct {
	Methods    []models.PaymentMethod
	Balance    models.Balance
	Theme      string
	ResetDelay time.Duration        // defaults to DefaultResetDelay
	OnSuccess  func(amount float64) // fired once per successful deposit
	OnClose    func()               // fired on Close and after the post-success reset
}

// Form is the top-up form state machine. All operations are safe for
// concurrent use; concurrent submissions are prevented by the processing
// flag, not by holding the lock across the deposit call.
type Form struct {
	mu sync.Mutex

	depositor  Depositor
	translator Translator

	methods []models.PaymentMethod
	balance models.Balance
	theme   string

	state           State
	submittedAmount float64

	resetDelay time.Duration
	resetTimer *time.Timer
	disposed   bool

	onSuccess func(amount float64)
	onClose   func()
}

// New creates a form with the externally flagged default method pre-selected.
func New(depositor Depositor, translator Translator, cfg Config) *Form {
	f := &Form{
		depositor:  depositor,
		translator: translator,
		methods:    cfg.Methods,
		balance:    cfg.Balance,
		theme:      cfg.Theme,
		resetDelay: cfg.ResetDelay,
		onSuccess:  cfg.OnSuccess,
		onClose:    cfg.OnClose,
	}
	if f.theme == "" {
		f.theme = ThemeLight
	}
	if f.resetDelay <= 0 {
		f.resetDelay = DefaultResetDelay
	}
	for _, m := range cfg.Methods {
		if m.Default {
			f.state.SelectedMethodID = m.ID
			break
		}
	}
	return f
}

// UpdateAmount applies raw user input to the amount text. Characters other
// than digits and the decimal point are stripped. Input with more than one
// decimal point or more than two fractional digits is rejected and the
// previous value is retained.
func (f *Form) UpdateAmount(raw string) {
	sanitized, ok := sanitizeAmount(raw)
	if !ok {
		return
	}

	f.mu.Lock()
	f.state.AmountText = sanitized
	f.mu.Unlock()
}

// SelectMethod sets the selected method ID unconditionally.
func (f *Form) SelectMethod(methodID string) {
	f.mu.Lock()
	f.state.SelectedMethodID = methodID
	f.mu.Unlock()
}

// Submit validates the form and forwards the deposit to the collaborator.
// Validation and deposit failures are surfaced through the error message;
// nothing escapes the submit boundary. A submit while one is already
// processing is a no-op.
func (f *Form) Submit(ctx context.Context) {
	f.mu.Lock()
	if f.state.Processing {
		f.mu.Unlock()
		return
	}
	f.state.ErrorMessage = ""

	amount, ok := parseAmount(f.state.AmountText)
	if !ok {
		f.state.ErrorMessage = f.translator.Lookup(ctx, localization.KeyAmountInvalid)
		f.mu.Unlock()
		return
	}

	if f.state.SelectedMethodID == "" && len(f.methods) > 0 {
		f.state.ErrorMessage = f.translator.Lookup(ctx, localization.KeyMethodRequired)
		f.mu.Unlock()
		return
	}

	f.state.Processing = true
	methodID := f.state.SelectedMethodID
	f.mu.Unlock()

	balance, err := f.depositor.Deposit(ctx, amount, methodID)

	f.mu.Lock()
	// Processing clears as soon as the deposit settles, success or not.
	f.state.Processing = false

	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = f.translator.Lookup(ctx, localization.KeyGenericError)
		}
		f.state.ErrorMessage = msg
		f.mu.Unlock()
		return
	}

	f.state.Success = true
	f.submittedAmount = amount
	f.balance = balance

	if f.resetTimer != nil {
		f.resetTimer.Stop()
	}
	f.resetTimer = time.AfterFunc(f.resetDelay, f.resetAfterSuccess)

	onSuccess := f.onSuccess
	f.mu.Unlock()

	if onSuccess != nil {
		onSuccess(amount)
	}
}

// resetAfterSuccess returns the form to an empty form view and notifies the
// container. A disposed form is never mutated.
func (f *Form) resetAfterSuccess() {
	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return
	}
	f.state.AmountText = ""
	f.state.Success = false
	onClose := f.onClose
	f.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

// Close invokes the close callback if present.
func (f *Form) Close() {
	f.mu.Lock()
	onClose := f.onClose
	f.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

// Dispose cancels the pending post-success reset and marks the form as torn
// down. Operations on a disposed form no longer fire callbacks from timers.
func (f *Form) Dispose() {
	f.mu.Lock()
	f.disposed = true
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
	f.mu.Unlock()
}

// State returns a copy of the current form state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// sanitizeAmount strips everything but digits and the decimal point. It
// reports ok=false when the result has more than one decimal point or more
// than two fractional digits, in which case the caller keeps the old value.
func sanitizeAmount(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	s := b.String()

	if strings.Count(s, ".") > 1 {
		return "", false
	}
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > 2 {
		return "", false
	}
	return s, true
}

// parseAmount parses the amount text and reports whether it is a positive
// finite number.
func parseAmount(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
