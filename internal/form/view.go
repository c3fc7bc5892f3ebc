package form

import (
	"context"
	"fmt"

	"github.com/walletgw/gw-wallet-topup/internal/localization"
)

// View kinds
const (
	KindForm    = "form"
	KindSuccess = "success"
)

// View is the rendered state of the form. Exactly one of Form and Success
// is set, matching the kind.
// swagger:model TopupFormView
type View struct {
	// View kind: form or success
	Kind string `json:"kind"`

	// Active theme: light or dark
	Theme string `json:"theme"`

	Form    *FormView    `json:"form,omitempty"`
	Success *SuccessView `json:"success,omitempty"`
}

// FormView renders the amount input, method list and submit control.
// swagger:model TopupFormFormView
type FormView struct {
	Heading      string `json:"heading"`
	BalanceLabel string `json:"balance_label"`

	// Current balance, formatted as "123.00 TND"
	Balance string `json:"balance"`

	// Inline error banner, empty when no error is set
	Error string `json:"error,omitempty"`

	AmountLabel string `json:"amount_label"`
	AmountText  string `json:"amount_text"`

	MethodLabel string         `json:"method_label"`
	Methods     []MethodOption `json:"methods,omitempty"`

	// True while a deposit is in flight; the submit control is disabled
	// and shows the processing label
	Processing    bool   `json:"processing"`
	SubmitLabel   string `json:"submit_label"`
	SubmitEnabled bool   `json:"submit_enabled"`
}

// SuccessView renders the post-deposit confirmation.
// swagger:model TopupFormSuccessView
type SuccessView struct {
	Heading string `json:"heading"`
	Detail  string `json:"detail"`

	// Deposited amount, formatted as "25.50 TND"
	Amount string `json:"amount"`
}

// MethodOption is one selectable payment method entry.
// swagger:model TopupMethodOption
type MethodOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`

	// Masked card digits, e.g. "**** 4242"; empty for non-card methods
	Detail string `json:"detail,omitempty"`

	Selected bool `json:"selected"`
	Default  bool `json:"default"`
}

// View renders the current state into one of the mutually exclusive views.
func (f *Form) View(ctx context.Context) View {
	f.mu.Lock()
	defer f.mu.Unlock()

	t := func(key string) string { return f.translator.Lookup(ctx, key) }

	if f.state.Success {
		return View{
			Kind:  KindSuccess,
			Theme: f.theme,
			Success: &SuccessView{
				Heading: t(localization.KeySuccessHeading),
				Detail:  t(localization.KeySuccessDetail),
				Amount:  FormatAmount(f.submittedAmount, f.balance.Currency),
			},
		}
	}

	methods := make([]MethodOption, 0, len(f.methods))
	for _, m := range f.methods {
		opt := MethodOption{
			ID:       m.ID,
			Label:    m.DisplayName,
			Type:     m.Type,
			Selected: m.ID == f.state.SelectedMethodID,
			Default:  m.Default,
		}
		if m.Last4 != "" {
			opt.Detail = "**** " + m.Last4
		}
		methods = append(methods, opt)
	}

	submitLabel := t(localization.KeySubmitLabel)
	if f.state.Processing {
		submitLabel = t(localization.KeyProcessingLabel)
	}

	_, amountOK := parseAmount(f.state.AmountText)

	return View{
		Kind:  KindForm,
		Theme: f.theme,
		Form: &FormView{
			Heading:       t(localization.KeyDepositHeading),
			BalanceLabel:  t(localization.KeyBalanceLabel),
			Balance:       FormatAmount(f.balance.Amount, f.balance.Currency),
			Error:         f.state.ErrorMessage,
			AmountLabel:   t(localization.KeyAmountLabel),
			AmountText:    f.state.AmountText,
			MethodLabel:   t(localization.KeyMethodLabel),
			Methods:       methods,
			Processing:    f.state.Processing,
			SubmitLabel:   submitLabel,
			SubmitEnabled: !f.state.Processing && f.state.AmountText != "" && amountOK,
		},
	}
}

// FormatAmount renders a monetary amount with two fractional digits and the
// currency code, e.g. "25.50 TND".
func FormatAmount(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, currency)
}
