package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankbook/internal/ledger"
	"bankbook/internal/ui"
	"bankbook/internal/utils"
)

// RenderAccountSummary prints one account's details after a mutation, so
// the user sees the resulting balance without a separate list call.
func RenderAccountSummary(acc ledger.Summary, currency string) {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), fmt.Sprintf("%d", acc.ID)},
		{pterm.Blue("Owner"), acc.Owner},
		{pterm.Blue("Balance"), utils.FormatMoney(acc.Balance, currency)},
	}

	pterm.DefaultTable.WithData(tableData).Render()
}
