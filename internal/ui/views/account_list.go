package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankbook/internal/ledger"
	"bankbook/internal/utils"
)

// RenderAccountList prints every account as an ID/Owner/Balance table.
func RenderAccountList(accounts []ledger.Summary, currency string) {
	headers := []string{"ID", "Owner", "Balance"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := utils.FormatMoney(acc.Balance, currency)

		var coloredBalance string
		if acc.Balance.IsNegative() {
			coloredBalance = pterm.Red(balance)
		} else {
			coloredBalance = pterm.Green(balance)
		}

		row := []string{fmt.Sprintf("%d", acc.ID), acc.Owner, coloredBalance}
		tableData = append(tableData, row)
	}

	pterm.DefaultSection.Printf("Accounts")
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
}
