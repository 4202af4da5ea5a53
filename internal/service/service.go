// Package service exposes the operation surface the commands call: account
// creation, deposits, withdrawals, transfers, listing, history, and the
// explicit persistence checkpoint.
package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bankbook/internal/ledger"
	"bankbook/internal/store"
)

type BankService struct {
	ledger *ledger.Ledger
	store  *store.Store
}

func NewBankService(l *ledger.Ledger, st *store.Store) *BankService {
	return &BankService{ledger: l, store: st}
}

// Ledger exposes the underlying ledger. Commands only need it for the
// interactive loop's account pickers.
func (s *BankService) Ledger() *ledger.Ledger {
	return s.ledger
}

func (s *BankService) CreateAccount(owner string) (ledger.Summary, error) {
	a, err := s.ledger.CreateAccount(owner)
	if err != nil {
		return ledger.Summary{}, fmt.Errorf("failed to create account: %w", err)
	}
	return ledger.Summary{ID: a.ID, Owner: a.Owner, Balance: a.Balance}, nil
}

func (s *BankService) Deposit(id int64, amount decimal.Decimal) error {
	return s.ledger.Deposit(id, amount)
}

func (s *BankService) Withdraw(id int64, amount decimal.Decimal) error {
	return s.ledger.Withdraw(id, amount)
}

func (s *BankService) Transfer(fromID, toID int64, amount decimal.Decimal) error {
	return s.ledger.Transfer(fromID, toID, amount)
}

func (s *BankService) ListAccounts() []ledger.Summary {
	return s.ledger.Accounts()
}

func (s *BankService) GetAccount(id int64) (ledger.Summary, error) {
	return s.ledger.Summary(id)
}

func (s *BankService) History(id int64) ([]ledger.Transaction, error) {
	return s.ledger.History(id)
}

// Commit flushes the ledger to the data file. Mutating commands call it
// after a successful mutation; saving happens only at these explicit
// checkpoints, never implicitly.
func (s *BankService) Commit() error {
	if err := s.store.Save(s.ledger); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}
