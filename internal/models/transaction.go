package models

import "github.com/shopspring/decimal"

// Transaction types recorded in an account's history.
const (
	TxDeposit    = "deposit"
	TxWithdrawal = "withdrawal"
)

// DateLayout is the timestamp format used in transaction records and the
// persisted ledger file.
const DateLayout = "2006-01-02 15:04:05"

// Transaction represents a single entry in an account's history
type Transaction struct {
	Date   string          `json:"date"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}
