// Package ledger implements the core domain of bankbook: accounts, their
// append-only transaction histories, and the line-oriented text codec used
// to persist them. It has no I/O or UI dependencies; the store and the
// commands build on top of it.
package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the locale-free layout used for every transaction
// timestamp, both in memory and in the data file.
const TimestampLayout = "2006-01-02 15:04:05"

// Type tags a transaction with the ledger event it records. The sign of the
// balance effect is implied by the type; Amount itself is always a magnitude.
type Type string

const (
	TypeDeposit     Type = "DEPOSIT"
	TypeWithdraw    Type = "WITHDRAW"
	TypeTransferOut Type = "TRANSFER_OUT"
	TypeTransferIn  Type = "TRANSFER_IN"
)

// ParseType validates a raw type tag read from the data file.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeDeposit, TypeWithdraw, TypeTransferOut, TypeTransferIn:
		return t, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction is one immutable recorded ledger event. It is created exactly
// once, at the moment of the account mutation it records, and never changed.
type Transaction struct {
	Timestamp string
	Type      Type
	Amount    decimal.Decimal
}

// Signed returns the balance effect of the transaction: positive for
// DEPOSIT and TRANSFER_IN, negative for WITHDRAW and TRANSFER_OUT.
func (t Transaction) Signed() decimal.Decimal {
	switch t.Type {
	case TypeWithdraw, TypeTransferOut:
		return t.Amount.Neg()
	default:
		return t.Amount
	}
}

// Encode renders the transaction as a single pipe-delimited line:
// timestamp|type|amount. Fields must not contain '|'; the timestamp layout
// and the type tags never do, and amounts render as plain decimal strings.
func (t Transaction) Encode() string {
	return t.Timestamp + "|" + string(t.Type) + "|" + t.Amount.String()
}

// DecodeTransaction parses one pipe-delimited transaction line. It rejects
// lines with fewer than three fields, unknown type tags, non-numeric
// amounts, and negative amounts.
func DecodeTransaction(line string) (Transaction, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 3 {
		return Transaction{}, fmt.Errorf("transaction %q: want 3 pipe-delimited fields, got %d", line, len(fields))
	}

	typ, err := ParseType(fields[1])
	if err != nil {
		return Transaction{}, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction amount %q is not numeric", fields[2])
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("transaction amount %s is negative", amount)
	}

	return Transaction{Timestamp: fields[0], Type: typ, Amount: amount}, nil
}
