package form

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/walletgw/gw-wallet-topup/internal/localization"
	"github.com/walletgw/gw-wallet-topup/internal/models"
)

type fakeDepositor struct {
	mu      sync.Mutex
	calls   []depositCall
	balance models.Balance
	err     error
	block   chan struct{} // when set, Deposit waits until closed
}

type depositCall struct {
	amount   float64
	methodID string
}

func (d *fakeDepositor) Deposit(ctx context.Context, amount float64, methodID string) (models.Balance, error) {
	d.mu.Lock()
	d.calls = append(d.calls, depositCall{amount: amount, methodID: methodID})
	block := d.block
	d.mu.Unlock()

	if block != nil {
		<-block
	}
	return d.balance, d.err
}

func (d *fakeDepositor) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

func testTranslator() Translator {
	return localization.New(nil, 0)
}

func cardMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		{ID: "m1", DisplayName: "Visa", Type: models.MethodTypeCard, Last4: "4242", Default: true},
		{ID: "m2", DisplayName: "Flouci", Type: models.MethodTypeWallet},
	}
}

func TestUpdateAmount(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
		want   string
	}{
		{name: "plain digits", inputs: []string{"100"}, want: "100"},
		{name: "strips letters and symbols", inputs: []string{"1a2b,3 $"}, want: "123"},
		{name: "allows one decimal point", inputs: []string{"25.5"}, want: "25.5"},
		{name: "allows two fractional digits", inputs: []string{"25.50"}, want: "25.50"},
		{name: "rejects third fractional digit", inputs: []string{"12.34", "12.345"}, want: "12.34"},
		{name: "rejects second decimal point", inputs: []string{"1.2", "1.2.3"}, want: "1.2"},
		{name: "idempotent under repeated input", inputs: []string{"42.00", "42.00", "42.00"}, want: "42.00"},
		{name: "clears on empty input", inputs: []string{"42", ""}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(&fakeDepositor{}, testTranslator(), Config{})
			for _, in := range tt.inputs {
				f.UpdateAmount(in)
			}
			assert.Equal(t, tt.want, f.State().AmountText)
		})
	}
}

func TestSelectMethod(t *testing.T) {
	f := New(&fakeDepositor{}, testTranslator(), Config{Methods: cardMethods()})

	// Default method is pre-selected on mount
	assert.Equal(t, "m1", f.State().SelectedMethodID)

	f.SelectMethod("m2")
	assert.Equal(t, "m2", f.State().SelectedMethodID)

	// Re-selecting the selected method is permitted
	f.SelectMethod("m2")
	assert.Equal(t, "m2", f.State().SelectedMethodID)
}

func TestSubmit_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"", "0", "0.00"} {
		t.Run("amount "+amount, func(t *testing.T) {
			dep := &fakeDepositor{}
			f := New(dep, testTranslator(), Config{Methods: cardMethods()})
			f.UpdateAmount(amount)

			f.Submit(context.Background())

			st := f.State()
			assert.Equal(t, "Please enter a valid amount", st.ErrorMessage)
			assert.False(t, st.Processing)
			assert.False(t, st.Success)
			assert.Zero(t, dep.callCount(), "deposit must not be invoked")
		})
	}
}

func TestSubmit_MethodRequired(t *testing.T) {
	dep := &fakeDepositor{}
	methods := []models.PaymentMethod{
		{ID: "m1", DisplayName: "Visa", Type: models.MethodTypeCard, Last4: "4242"},
	}
	f := New(dep, testTranslator(), Config{Methods: methods})
	f.UpdateAmount("10")

	f.Submit(context.Background())

	assert.Equal(t, "Please select a payment method", f.State().ErrorMessage)
	assert.Zero(t, dep.callCount())
}

func TestSubmit_NoMethodsSkipsMethodCheck(t *testing.T) {
	dep := &fakeDepositor{balance: models.Balance{Amount: 10, Currency: models.TND}}
	f := New(dep, testTranslator(), Config{})
	f.UpdateAmount("10")

	f.Submit(context.Background())

	assert.True(t, f.State().Success)
	assert.Equal(t, 1, dep.callCount())
}

func TestSubmit_Success(t *testing.T) {
	dep := &fakeDepositor{balance: models.Balance{Amount: 125.5, Currency: models.TND}}

	var successAmounts []float64
	closeCount := 0

	f := New(dep, testTranslator(), Config{
		Methods:    cardMethods(),
		Balance:    models.Balance{Amount: 100, Currency: models.TND},
		ResetDelay: 30 * time.Millisecond,
		OnSuccess:  func(amount float64) { successAmounts = append(successAmounts, amount) },
		OnClose:    func() { closeCount++ },
	})
	f.UpdateAmount("25.5")

	f.Submit(context.Background())

	st := f.State()
	assert.True(t, st.Success)
	assert.False(t, st.Processing, "processing clears once the deposit settles")
	assert.Empty(t, st.ErrorMessage)
	assert.Equal(t, []depositCall{{amount: 25.5, methodID: "m1"}}, dep.calls)
	assert.Equal(t, []float64{25.5}, successAmounts)

	v := f.View(context.Background())
	assert.Equal(t, KindSuccess, v.Kind)
	assert.Equal(t, "25.50 TND", v.Success.Amount)

	// After the fixed delay the form resets and the close callback fires once.
	time.Sleep(100 * time.Millisecond)

	st = f.State()
	assert.False(t, st.Success)
	assert.Empty(t, st.AmountText)
	assert.Equal(t, 1, closeCount)
	assert.Equal(t, 1, len(successAmounts), "success callback fires exactly once")
}

func TestSubmit_Failure(t *testing.T) {
	dep := &fakeDepositor{err: errors.New("card declined")}

	successCalled := false
	f := New(dep, testTranslator(), Config{
		Methods:   cardMethods(),
		OnSuccess: func(float64) { successCalled = true },
	})
	f.UpdateAmount("10")

	f.Submit(context.Background())

	st := f.State()
	assert.Equal(t, "card declined", st.ErrorMessage)
	assert.False(t, st.Processing)
	assert.False(t, st.Success)
	assert.False(t, successCalled)
}

func TestSubmit_FailureWithoutMessageUsesFallback(t *testing.T) {
	dep := &fakeDepositor{err: errors.New("")}
	f := New(dep, testTranslator(), Config{Methods: cardMethods()})
	f.UpdateAmount("10")

	f.Submit(context.Background())

	assert.Equal(t, "Deposit failed. Please try again.", f.State().ErrorMessage)
}

func TestSubmit_ErrorClearedOnNextAttempt(t *testing.T) {
	dep := &fakeDepositor{err: errors.New("card declined")}
	f := New(dep, testTranslator(), Config{Methods: cardMethods()})
	f.UpdateAmount("10")

	f.Submit(context.Background())
	assert.Equal(t, "card declined", f.State().ErrorMessage)

	// Next attempt fails validation; the deposit error must not linger.
	f.UpdateAmount("")
	f.Submit(context.Background())
	assert.Equal(t, "Please enter a valid amount", f.State().ErrorMessage)
}

func TestSubmit_GuardedWhileProcessing(t *testing.T) {
	block := make(chan struct{})
	dep := &fakeDepositor{
		balance: models.Balance{Amount: 10, Currency: models.TND},
		block:   block,
	}
	f := New(dep, testTranslator(), Config{Methods: cardMethods(), ResetDelay: time.Hour})
	f.UpdateAmount("10")

	done := make(chan struct{})
	go func() {
		f.Submit(context.Background())
		close(done)
	}()

	// Wait for the first submit to reach the depositor.
	assert.Eventually(t, func() bool { return dep.callCount() == 1 }, time.Second, time.Millisecond)
	assert.True(t, f.State().Processing)

	// Second submit while processing is a no-op.
	f.Submit(context.Background())
	assert.Equal(t, 1, dep.callCount())

	close(block)
	<-done
	assert.False(t, f.State().Processing)
}

func TestDispose_CancelsPendingReset(t *testing.T) {
	dep := &fakeDepositor{balance: models.Balance{Amount: 10, Currency: models.TND}}

	closeCalled := false
	f := New(dep, testTranslator(), Config{
		Methods:    cardMethods(),
		ResetDelay: 30 * time.Millisecond,
		OnClose:    func() { closeCalled = true },
	})
	f.UpdateAmount("10")
	f.Submit(context.Background())
	assert.True(t, f.State().Success)

	f.Dispose()
	time.Sleep(100 * time.Millisecond)

	// The disposed form is never mutated and the close callback never fires.
	assert.True(t, f.State().Success)
	assert.False(t, closeCalled)
}

func TestClose_InvokesCallback(t *testing.T) {
	closeCount := 0
	f := New(&fakeDepositor{}, testTranslator(), Config{
		OnClose: func() { closeCount++ },
	})

	f.Close()
	assert.Equal(t, 1, closeCount)

	// No close callback configured: must not panic.
	assert.NotPanics(t, func() {
		New(&fakeDepositor{}, testTranslator(), Config{}).Close()
	})
}

func TestView_FormState(t *testing.T) {
	f := New(&fakeDepositor{}, testTranslator(), Config{
		Methods: cardMethods(),
		Balance: models.Balance{Amount: 100, Currency: models.TND},
		Theme:   ThemeDark,
	})

	v := f.View(context.Background())

	assert.Equal(t, KindForm, v.Kind)
	assert.Equal(t, ThemeDark, v.Theme)
	assert.Nil(t, v.Success)
	assert.Equal(t, "Top up wallet", v.Form.Heading)
	assert.Equal(t, "100.00 TND", v.Form.Balance)
	assert.Len(t, v.Form.Methods, 2)
	assert.Equal(t, "**** 4242", v.Form.Methods[0].Detail)
	assert.True(t, v.Form.Methods[0].Selected)
	assert.False(t, v.Form.Methods[1].Selected)
	assert.Empty(t, v.Form.Methods[1].Detail)

	// Empty amount: submit disabled.
	assert.False(t, v.Form.SubmitEnabled)

	f.UpdateAmount("0")
	assert.False(t, f.View(context.Background()).Form.SubmitEnabled)

	f.UpdateAmount("25.5")
	v = f.View(context.Background())
	assert.True(t, v.Form.SubmitEnabled)
	assert.Equal(t, "Top up", v.Form.SubmitLabel)
}

func TestView_ProcessingOverlay(t *testing.T) {
	block := make(chan struct{})
	dep := &fakeDepositor{
		balance: models.Balance{Amount: 10, Currency: models.TND},
		block:   block,
	}
	f := New(dep, testTranslator(), Config{Methods: cardMethods(), ResetDelay: time.Hour})
	f.UpdateAmount("10")

	done := make(chan struct{})
	go func() {
		f.Submit(context.Background())
		close(done)
	}()
	assert.Eventually(t, func() bool { return f.State().Processing }, time.Second, time.Millisecond)

	v := f.View(context.Background())
	assert.Equal(t, KindForm, v.Kind)
	assert.True(t, v.Form.Processing)
	assert.False(t, v.Form.SubmitEnabled)
	assert.Equal(t, "Processing...", v.Form.SubmitLabel)

	close(block)
	<-done
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "25.50 TND", FormatAmount(25.5, models.TND))
	assert.Equal(t, "0.10 EUR", FormatAmount(0.1, models.EUR))
}
