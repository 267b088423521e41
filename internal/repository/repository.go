package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/google/renameio"
	"github.com/shopspring/decimal"

	"github.com/Dan9191/simplebank/internal/models"
)

func init() {
	// The persisted layout stores balances and amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Repository is the ledger: the authoritative in-memory mapping from account
// number to account, backed by a single JSON snapshot file. Every committed
// operation re-serializes the full mapping.
type Repository struct {
	path     string
	accounts map[int64]*models.Account
}

// NewRepository initializes an empty ledger backed by the file at path
func NewRepository(path string) *Repository {
	return &Repository{
		path:     path,
		accounts: make(map[int64]*models.Account),
	}
}

// Load reads the snapshot file into the ledger. A missing or malformed file
// yields an empty ledger and no error.
func (r *Repository) Load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.accounts = make(map[int64]*models.Account)
		return nil
	}

	raw := make(map[string]*models.Account)
	if err := json.Unmarshal(data, &raw); err != nil {
		r.accounts = make(map[int64]*models.Account)
		return nil
	}

	accounts := make(map[int64]*models.Account, len(raw))
	for key, acct := range raw {
		number, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			r.accounts = make(map[int64]*models.Account)
			return nil
		}
		acct.AccountNumber = number
		if acct.TransactionHistory == nil {
			acct.TransactionHistory = []models.Transaction{}
		}
		accounts[number] = acct
	}
	r.accounts = accounts
	return nil
}

// Save writes the full ledger to the snapshot file, replacing any prior
// content. The write is atomic: the new snapshot is renamed over the old one.
func (r *Repository) Save() error {
	out := make(map[string]*models.Account, len(r.accounts))
	for number, acct := range r.accounts {
		out[strconv.FormatInt(number, 10)] = acct
	}

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	if err := renameio.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	return nil
}

// Get returns the account with the given number, if present.
func (r *Repository) Get(number int64) (*models.Account, bool) {
	acct, ok := r.accounts[number]
	return acct, ok
}

// Put inserts or replaces an account, keyed by its account number.
func (r *Repository) Put(acct *models.Account) {
	r.accounts[acct.AccountNumber] = acct
}

// Exists reports whether an account number is already taken.
func (r *Repository) Exists(number int64) bool {
	_, ok := r.accounts[number]
	return ok
}

// Len returns the number of accounts in the ledger.
func (r *Repository) Len() int {
	return len(r.accounts)
}
