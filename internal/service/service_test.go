package service

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"bankbook/internal/ledger"
	"bankbook/internal/store"
)

func newTestService(t *testing.T, path string) *BankService {
	t.Helper()
	st, err := store.NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	l, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	return NewBankService(l, st)
}

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

// TestSessionRoundTrip runs a whole session through the service, commits,
// and checks a second service instance sees the same state from disk.
func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_data.txt")

	svc := newTestService(t, path)

	alice, err := svc.CreateAccount("Alice")
	if err != nil {
		t.Fatal(err)
	}
	bob, err := svc.CreateAccount("Bob")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Deposit(alice.ID, amount(t, "100")); err != nil {
		t.Fatal(err)
	}
	if err := svc.Transfer(alice.ID, bob.ID, amount(t, "40")); err != nil {
		t.Fatal(err)
	}
	if err := svc.Commit(); err != nil {
		t.Fatal(err)
	}

	// A fresh process over the same file.
	svc2 := newTestService(t, path)

	accounts := svc2.ListAccounts()
	if len(accounts) != 2 {
		t.Fatalf("accounts = %d, want 2", len(accounts))
	}
	if !accounts[0].Balance.Equal(amount(t, "60")) || !accounts[1].Balance.Equal(amount(t, "40")) {
		t.Fatalf("balances = %s/%s, want 60/40", accounts[0].Balance, accounts[1].Balance)
	}

	hist, err := svc2.History(bob.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 1 || hist[0].Type != ledger.TypeTransferIn {
		t.Fatalf("bob history = %+v", hist)
	}

	carol, err := svc2.CreateAccount("Carol")
	if err != nil {
		t.Fatal(err)
	}
	if carol.ID != 3 {
		t.Fatalf("carol id = %d, want 3", carol.ID)
	}
}

func TestServiceSurfacesDomainErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_data.txt")
	svc := newTestService(t, path)

	if err := svc.Deposit(1, amount(t, "10")); !errors.Is(err, ledger.ErrAccountNotFound) {
		t.Fatalf("err=%v, want ErrAccountNotFound", err)
	}

	alice, err := svc.CreateAccount("Alice")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Withdraw(alice.ID, amount(t, "1")); !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("err=%v, want ErrInsufficientFunds", err)
	}
	if _, err := svc.CreateAccount("END"); !errors.Is(err, ledger.ErrInvalidOwner) {
		t.Fatalf("err=%v, want ErrInvalidOwner", err)
	}
}
