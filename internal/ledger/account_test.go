package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var testTime = time.Date(2025, time.January, 2, 10, 30, 0, 0, time.UTC)

// checkInvariant verifies the core account invariant: the balance equals
// the sum of the signed effects of the whole history.
func checkInvariant(t *testing.T, a *Account) {
	t.Helper()
	sum := decimal.Zero
	for _, tx := range a.History {
		sum = sum.Add(tx.Signed())
	}
	if !a.Balance.Equal(sum) {
		t.Fatalf("balance %s != signed history sum %s", a.Balance, sum)
	}
}

func TestAccountDeposit(t *testing.T) {
	a := NewAccount(1, "Alice")

	if err := a.Deposit(d(t, "100"), testTime); err != nil {
		t.Fatal(err)
	}
	if !a.Balance.Equal(d(t, "100")) {
		t.Fatalf("balance = %s, want 100", a.Balance)
	}
	if len(a.History) != 1 || a.History[0].Type != TypeDeposit {
		t.Fatalf("history = %+v, want one DEPOSIT", a.History)
	}
	if a.History[0].Timestamp != "2025-01-02 10:30:00" {
		t.Fatalf("timestamp = %q", a.History[0].Timestamp)
	}
	checkInvariant(t, a)

	if err := a.Deposit(d(t, "-5"), testTime); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative deposit: err=%v, want ErrInvalidAmount", err)
	}
	if len(a.History) != 1 {
		t.Fatal("failed deposit must not append history")
	}
}

func TestAccountWithdraw(t *testing.T) {
	a := NewAccount(1, "Alice")
	if err := a.Deposit(d(t, "100"), testTime); err != nil {
		t.Fatal(err)
	}

	if err := a.Withdraw(d(t, "30"), testTime); err != nil {
		t.Fatal(err)
	}
	if !a.Balance.Equal(d(t, "70")) {
		t.Fatalf("balance = %s, want 70", a.Balance)
	}
	checkInvariant(t, a)

	// Insufficient funds: no mutation at all.
	if err := a.Withdraw(d(t, "1000"), testTime); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err=%v, want ErrInsufficientFunds", err)
	}
	if !a.Balance.Equal(d(t, "70")) || len(a.History) != 2 {
		t.Fatalf("failed withdraw changed state: balance=%s history=%d", a.Balance, len(a.History))
	}

	if err := a.Withdraw(d(t, "-1"), testTime); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative withdraw: err=%v, want ErrInvalidAmount", err)
	}
}

func TestTransferLegsAreUnchecked(t *testing.T) {
	// The legs are building blocks: the funds check belongs to
	// Ledger.Transfer, so a bare TransferOut may drive the balance
	// negative.
	a := NewAccount(1, "Alice")
	a.TransferOut(d(t, "40"), testTime)

	if !a.Balance.Equal(d(t, "-40")) {
		t.Fatalf("balance = %s, want -40", a.Balance)
	}
	if len(a.History) != 1 || a.History[0].Type != TypeTransferOut {
		t.Fatalf("history = %+v", a.History)
	}
	checkInvariant(t, a)

	b := NewAccount(2, "Bob")
	b.TransferIn(d(t, "40"), testTime)
	if !b.Balance.Equal(d(t, "40")) || b.History[0].Type != TypeTransferIn {
		t.Fatalf("transfer-in leg: balance=%s history=%+v", b.Balance, b.History)
	}
	checkInvariant(t, b)
}

func TestValidateOwner(t *testing.T) {
	for _, owner := range []string{"Alice", "Bob Smith", "Élodie", "O'Brien"} {
		if err := ValidateOwner(owner); err != nil {
			t.Errorf("ValidateOwner(%q) = %v, want nil", owner, err)
		}
	}

	for _, owner := range []string{"", "   ", "a;b", "line\nbreak", "END", "T:sneaky"} {
		if err := ValidateOwner(owner); !errors.Is(err, ErrInvalidOwner) {
			t.Errorf("ValidateOwner(%q) = %v, want ErrInvalidOwner", owner, err)
		}
	}
}
