// Package validation checks user input at the command boundary, before it
// reaches the ledger. The validators double as huh prompt validators.
package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bankbook/internal/ledger"
)

const MaxOwnerLen = 64

// ValidateOwner checks an owner name for emptiness, length, and the
// reserved characters of the data file format.
func ValidateOwner(name string) error {
	name = strings.TrimSpace(name)

	if err := ledger.ValidateOwner(name); err != nil {
		return err
	}
	if len(name) > MaxOwnerLen {
		return fmt.Errorf("owner name too long (max %d characters)", MaxOwnerLen)
	}
	return nil
}

// ParseAmount parses a decimal amount string like "150" or "150.50" and
// rejects anything non-numeric or negative.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: must be a number", s)
	}
	if amount.IsNegative() {
		return decimal.Zero, ledger.ErrInvalidAmount
	}
	return amount, nil
}

// AmountValidator adapts ParseAmount for huh prompts.
func AmountValidator() func(string) error {
	return func(s string) error {
		_, err := ParseAmount(s)
		return err
	}
}
