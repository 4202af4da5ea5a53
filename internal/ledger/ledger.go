package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Summary is a read-only snapshot of one account, handed to the UI layer.
type Summary struct {
	ID      int64
	Owner   string
	Balance decimal.Decimal
}

// Ledger owns the collection of accounts, assigns ids, and implements the
// cross-account operations. Accounts are kept in insertion order for
// listing and indexed by id for lookup.
//
// The ledger is single-user by design: one process owns it, operations run
// to completion one at a time, and no locking is needed.
type Ledger struct {
	accounts []*Account
	index    map[int64]*Account
	nextID   int64
	now      func() time.Time
}

// New creates an empty ledger. The first account created gets id 1.
func New() *Ledger {
	return &Ledger{
		index:  make(map[int64]*Account),
		nextID: 1,
		now:    time.Now,
	}
}

// SetClock replaces the timestamp source. Tests use it to get
// deterministic transaction timestamps.
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

// NextID returns the id the next created account will receive.
func (l *Ledger) NextID() int64 {
	return l.nextID
}

// CreateAccount creates an account with a zero balance and stores it under
// a fresh id. Ids are strictly increasing and never reused, even across a
// save/load cycle.
func (l *Ledger) CreateAccount(owner string) (*Account, error) {
	owner = strings.TrimSpace(owner)
	if err := ValidateOwner(owner); err != nil {
		return nil, err
	}
	a := NewAccount(l.nextID, owner)
	l.nextID++
	l.accounts = append(l.accounts, a)
	l.index[a.ID] = a
	return a, nil
}

// Find returns the account with the given id, or false on a lookup miss.
func (l *Ledger) Find(id int64) (*Account, bool) {
	a, ok := l.index[id]
	return a, ok
}

// Deposit adds amount to the account's balance.
func (l *Ledger) Deposit(id int64, amount decimal.Decimal) error {
	a, ok := l.Find(id)
	if !ok {
		return fmt.Errorf("account %d: %w", id, ErrAccountNotFound)
	}
	return a.Deposit(amount, l.now())
}

// Withdraw subtracts amount from the account's balance, rejecting amounts
// that exceed it.
func (l *Ledger) Withdraw(id int64, amount decimal.Decimal) error {
	a, ok := l.Find(id)
	if !ok {
		return fmt.Errorf("account %d: %w", id, ErrAccountNotFound)
	}
	return a.Withdraw(amount, l.now())
}

// Transfer moves amount between two accounts. The funds check happens here,
// before either leg runs; on any error neither account changes. Both legs
// share one timestamp. The two-leg mutation is not crash-atomic on disk,
// but within a process nothing interleaves with it.
func (l *Ledger) Transfer(fromID, toID int64, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if fromID == toID {
		return ErrSameAccount
	}
	from, ok := l.Find(fromID)
	if !ok {
		return fmt.Errorf("account %d: %w", fromID, ErrAccountNotFound)
	}
	to, ok := l.Find(toID)
	if !ok {
		return fmt.Errorf("account %d: %w", toID, ErrAccountNotFound)
	}
	if from.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	at := l.now()
	from.TransferOut(amount, at)
	to.TransferIn(amount, at)
	return nil
}

// Accounts returns summaries of every account in insertion order.
func (l *Ledger) Accounts() []Summary {
	out := make([]Summary, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, Summary{ID: a.ID, Owner: a.Owner, Balance: a.Balance})
	}
	return out
}

// Summary returns the snapshot of a single account.
func (l *Ledger) Summary(id int64) (Summary, error) {
	a, ok := l.Find(id)
	if !ok {
		return Summary{}, fmt.Errorf("account %d: %w", id, ErrAccountNotFound)
	}
	return Summary{ID: a.ID, Owner: a.Owner, Balance: a.Balance}, nil
}

// History returns a copy of the account's transaction history in
// chronological (append) order.
func (l *Ledger) History(id int64) ([]Transaction, error) {
	a, ok := l.Find(id)
	if !ok {
		return nil, fmt.Errorf("account %d: %w", id, ErrAccountNotFound)
	}
	out := make([]Transaction, len(a.History))
	copy(out, a.History)
	return out, nil
}

// restore adds a decoded account and bumps nextID past its id. The decoder
// calls it once per account block.
func (l *Ledger) restore(a *Account) error {
	if _, exists := l.index[a.ID]; exists {
		return fmt.Errorf("duplicate account id %d", a.ID)
	}
	l.accounts = append(l.accounts, a)
	l.index[a.ID] = a
	if a.ID >= l.nextID {
		l.nextID = a.ID + 1
	}
	return nil
}
