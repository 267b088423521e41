package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account in the system
type Account struct {
	AccountNumber      int64           `json:"account_number"`
	PIN                string          `json:"pin"`
	Name               string          `json:"name"`
	Mobile             string          `json:"mobile"`
	Email              string          `json:"email"`
	Balance            decimal.Decimal `json:"balance"`
	TransactionHistory []Transaction   `json:"transaction_history"`
}

// Deposit adds amount to the balance and appends a deposit record.
// Amount validation is the caller's responsibility.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
	a.TransactionHistory = append(a.TransactionHistory, Transaction{
		Date:   time.Now().Format(DateLayout),
		Type:   TxDeposit,
		Amount: amount,
	})
}

// Withdraw subtracts amount from the balance and appends a withdrawal record.
// Returns false with no state change when the balance is insufficient.
func (a *Account) Withdraw(amount decimal.Decimal) bool {
	if a.Balance.LessThan(amount) {
		return false
	}
	a.Balance = a.Balance.Sub(amount)
	a.TransactionHistory = append(a.TransactionHistory, Transaction{
		Date:   time.Now().Format(DateLayout),
		Type:   TxWithdrawal,
		Amount: amount,
	})
	return true
}

// Transfer withdraws amount from the account and deposits it into recipient.
// If the withdrawal fails neither account changes.
func (a *Account) Transfer(recipient *Account, amount decimal.Decimal) bool {
	if !a.Withdraw(amount) {
		return false
	}
	recipient.Deposit(amount)
	return true
}

// CalculateInterest deposits balance * rate / 100 into the account and
// returns the interest amount. Successive calls compound.
func (a *Account) CalculateInterest(rate decimal.Decimal) decimal.Decimal {
	interest := a.Balance.Mul(rate).Div(decimal.NewFromInt(100))
	a.Deposit(interest)
	return interest
}

// History returns a copy of the ordered transaction history.
func (a *Account) History() []Transaction {
	out := make([]Transaction, len(a.TransactionHistory))
	copy(out, a.TransactionHistory)
	return out
}
