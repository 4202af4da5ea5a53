package views

import (
	"github.com/pterm/pterm"

	"bankbook/internal/ledger"
	"bankbook/internal/utils"
)

// RenderHistory prints one account's transaction history in chronological
// order. Incoming amounts are green, outgoing red.
func RenderHistory(acc ledger.Summary, history []ledger.Transaction, currency string) {
	pterm.DefaultSection.Printf("Transaction History: %s (ID %d)", acc.Owner, acc.ID)

	if len(history) == 0 {
		pterm.Info.Println("No transactions yet")
		return
	}

	headers := []string{"Timestamp", "Type", "Amount"}
	tableData := pterm.TableData{headers}

	for _, t := range history {
		amount := utils.FormatSigned(t.Signed(), currency)

		var coloredType, coloredAmount string
		switch t.Type {
		case ledger.TypeDeposit, ledger.TypeTransferIn:
			coloredType = pterm.Green(string(t.Type))
			coloredAmount = pterm.Green(amount)
		case ledger.TypeWithdraw, ledger.TypeTransferOut:
			coloredType = pterm.Red(string(t.Type))
			coloredAmount = pterm.Red(amount)
		default:
			coloredType = string(t.Type)
			coloredAmount = amount
		}

		tableData = append(tableData, []string{t.Timestamp, coloredType, coloredAmount})
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Balance: %s\n", utils.FormatMoney(acc.Balance, currency))
}
