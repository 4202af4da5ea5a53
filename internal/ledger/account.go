package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Account is one holder's balance and transaction history. The balance
// always equals the sum of the signed effects of every transaction in
// History; every mutation appends exactly one transaction.
type Account struct {
	ID      int64
	Owner   string
	Balance decimal.Decimal
	History []Transaction
}

// NewAccount creates an account with a zero balance and empty history.
func NewAccount(id int64, owner string) *Account {
	return &Account{ID: id, Owner: owner, Balance: decimal.Zero}
}

// Deposit adds amount to the balance and records a DEPOSIT transaction.
// Negative amounts are rejected with ErrInvalidAmount.
func (a *Account) Deposit(amount decimal.Decimal, at time.Time) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	a.record(TypeDeposit, amount, at)
	return nil
}

// Withdraw subtracts amount from the balance and records a WITHDRAW
// transaction. If amount exceeds the balance nothing changes and
// ErrInsufficientFunds is returned.
func (a *Account) Withdraw(amount decimal.Decimal, at time.Time) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	a.record(TypeWithdraw, amount, at)
	return nil
}

// TransferOut is the outgoing leg of a transfer: an unconditional balance
// adjustment. The funds check is the caller's job (Ledger.Transfer); the
// leg itself never fails.
func (a *Account) TransferOut(amount decimal.Decimal, at time.Time) {
	a.Balance = a.Balance.Sub(amount)
	a.record(TypeTransferOut, amount, at)
}

// TransferIn is the incoming leg of a transfer.
func (a *Account) TransferIn(amount decimal.Decimal, at time.Time) {
	a.Balance = a.Balance.Add(amount)
	a.record(TypeTransferIn, amount, at)
}

func (a *Account) record(typ Type, amount decimal.Decimal, at time.Time) {
	a.History = append(a.History, Transaction{
		Timestamp: at.Format(TimestampLayout),
		Type:      typ,
		Amount:    amount,
	})
}

// ValidateOwner enforces the reserved-character rule of the data file
// format: owner names live on a ';'-delimited header line, so they must not
// contain ';' or newlines, must not read as a block terminator or a
// transaction line, and must not be empty.
func ValidateOwner(owner string) error {
	if strings.TrimSpace(owner) == "" {
		return fmt.Errorf("%w: name can't be empty", ErrInvalidOwner)
	}
	if strings.ContainsAny(owner, ";\n\r") {
		return fmt.Errorf("%w: name can't contain ';' or line breaks", ErrInvalidOwner)
	}
	if owner == "END" || strings.HasPrefix(owner, "T:") {
		return fmt.Errorf("%w: %q is reserved by the data file format", ErrInvalidOwner, owner)
	}
	return nil
}
