package models

import "github.com/shopspring/decimal"

// Statement represents deposit and withdrawal totals for one account
type Statement struct {
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Net         decimal.Decimal `json:"net"` // Deposits - Withdrawals
}

// NewStatement sums an account's history into a statement.
func NewStatement(history []Transaction) Statement {
	st := Statement{
		Deposits:    decimal.Zero,
		Withdrawals: decimal.Zero,
	}
	for _, tx := range history {
		switch tx.Type {
		case TxDeposit:
			st.Deposits = st.Deposits.Add(tx.Amount)
		case TxWithdrawal:
			st.Withdrawals = st.Withdrawals.Add(tx.Amount)
		}
	}
	st.Net = st.Deposits.Sub(st.Withdrawals)
	return st
}
