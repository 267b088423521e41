package models

import "time"

// Session represents an authenticated session bound to one account.
// It lives only in memory and is revoked on logout.
type Session struct {
	ID            string    `json:"id"`
	AccountNumber int64     `json:"account_number"`
	StartedAt     time.Time `json:"started_at"`
}
