package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"bankbook/internal/ledger"
	"bankbook/internal/utils"
)

// PromptAccount prompts to pick one account by id, showing owner and
// balance alongside each option.
func PromptAccount(title string, accounts []ledger.Summary, currency string) (int64, error) {
	if len(accounts) == 0 {
		return 0, fmt.Errorf("no accounts exist yet, create one first")
	}

	var options []huh.Option[int64]
	for _, acc := range accounts {
		label := fmt.Sprintf("%d - %s (%s)", acc.ID, acc.Owner, utils.FormatMoney(acc.Balance, currency))
		options = append(options, huh.NewOption(label, acc.ID))
	}

	var selected int64

	err := huh.NewSelect[int64]().
		Title(title).
		Options(options...).
		Value(&selected).
		Height(10).
		Run()

	if err != nil {
		return 0, fmt.Errorf("input cancelled: %w", err)
	}

	return selected, nil
}
