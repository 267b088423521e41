package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/simplebank/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testAccount(number int64, balance string) *models.Account {
	return &models.Account{
		AccountNumber:      number,
		PIN:                "1234",
		Name:               "A",
		Mobile:             "9876543210",
		Email:              "a@example.com",
		Balance:            dec(balance),
		TransactionHistory: []models.Transaction{},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")

	r := NewRepository(path)
	a := testAccount(1234567890, "0")
	a.Deposit(dec("1000"))
	a.Withdraw(dec("250.50"))
	r.Put(a)
	r.Put(testAccount(9999999999, "42"))

	if err := r.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := NewRepository(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("len=%d want=2", loaded.Len())
	}

	got, ok := loaded.Get(1234567890)
	if !ok {
		t.Fatal("account 1234567890 missing")
	}
	if got.AccountNumber != 1234567890 || got.PIN != "1234" || got.Mobile != "9876543210" {
		t.Fatalf("fields lost: %+v", got)
	}
	if !got.Balance.Equal(dec("749.50")) {
		t.Fatalf("balance=%s want=749.50", got.Balance)
	}
	if len(got.TransactionHistory) != 2 {
		t.Fatalf("history len=%d want=2", len(got.TransactionHistory))
	}
	// History order survives the round trip.
	if got.TransactionHistory[0].Type != models.TxDeposit || got.TransactionHistory[1].Type != models.TxWithdrawal {
		t.Fatalf("history order lost: %+v", got.TransactionHistory)
	}
}

func TestLoadMissingFile(t *testing.T) {
	r := NewRepository(filepath.Join(t.TempDir(), "nope.json"))
	if err := r.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("len=%d want=0", r.Len())
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRepository(path)
	if err := r.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("len=%d want=0", r.Len())
	}
}

func TestLoadBadKeyTreatedAsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	if err := os.WriteFile(path, []byte(`{"abc": {"account_number": 1}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRepository(path)
	if err := r.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("len=%d want=0", r.Len())
	}
}

// The string key is authoritative for the account number.
func TestLoadNormalizesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	raw := `{"1234567890": {"pin": "0000", "name": "B", "balance": 5, "transaction_history": null}}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRepository(path)
	if err := r.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, ok := r.Get(1234567890)
	if !ok {
		t.Fatal("account missing")
	}
	if got.AccountNumber != 1234567890 {
		t.Fatalf("account number not normalized: %d", got.AccountNumber)
	}
	if got.TransactionHistory == nil {
		t.Fatal("nil history should be initialized")
	}
}

// The file layout is a map keyed by the decimal string of the account number,
// with balances and amounts as plain JSON numbers.
func TestSaveLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")

	r := NewRepository(path)
	a := testAccount(1234567890, "0")
	a.Deposit(dec("1000"))
	r.Put(a)
	if err := r.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	acct, ok := raw["1234567890"]
	if !ok {
		t.Fatalf("missing string key, got keys %v", raw)
	}
	for _, field := range []string{"account_number", "pin", "name", "mobile", "email", "balance", "transaction_history"} {
		if _, ok := acct[field]; !ok {
			t.Fatalf("missing field %q", field)
		}
	}
	if strings.HasPrefix(string(acct["balance"]), `"`) {
		t.Fatalf("balance must be a JSON number, got %s", acct["balance"])
	}
}
