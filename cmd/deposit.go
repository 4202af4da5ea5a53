package cmd

import (
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bankbook/internal/service"
	"bankbook/internal/ui/prompts"
	"bankbook/internal/ui/views"
	"bankbook/internal/utils"
	"bankbook/internal/validation"
)

type depositFlags struct {
	ID     int64
	Amount string
}

type depositRunner struct {
	svc   *service.BankService
	flags *depositFlags
	cmd   *cobra.Command
}

func NewDepositCmd(svc *service.BankService) *cobra.Command {
	flags := &depositFlags{}

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit money into an account",
		Long: `Deposit money into an account.

Examples:
  # Quick mode
  bankbook deposit --id 1 --amount 150.50

  # Interactive mode
  bankbook deposit`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &depositRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().Int64VarP(&flags.ID, "id", "i", 0, "Account ID")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount (e.g., 150 or 150.50)")

	return cmd
}

func (r *depositRunner) Run() error {
	id, amount, err := resolveAccountAndAmount(
		r.svc, r.cmd, r.flags.ID, r.flags.Amount,
		"Deposit into which account?", "Deposit amount:",
	)
	if err != nil {
		return err
	}

	if err := r.svc.Deposit(id, amount); err != nil {
		return err
	}
	if err := r.svc.Commit(); err != nil {
		return err
	}

	pterm.Success.Printf("Deposited %s\n", utils.FormatMoney(amount, currencySymbol()))

	acc, err := r.svc.GetAccount(id)
	if err != nil {
		return err
	}
	views.RenderAccountSummary(acc, currencySymbol())

	return nil
}

// resolveAccountAndAmount fills in the account id and the amount from
// flags when given, or through interactive prompts when not. Deposit and
// withdraw share it.
func resolveAccountAndAmount(svc *service.BankService, cmd *cobra.Command, flagID int64, flagAmount string, accountTitle, amountTitle string) (int64, decimal.Decimal, error) {
	id := flagID
	if !cmd.Flags().Changed("id") {
		selected, err := prompts.PromptAccount(accountTitle, svc.ListAccounts(), currencySymbol())
		if err != nil {
			return 0, decimal.Zero, err
		}
		id = selected
	}

	raw := flagAmount
	if !cmd.Flags().Changed("amount") {
		input, err := prompts.PromptAmount(amountTitle, "e.g., 150 or 150.50", validation.AmountValidator())
		if err != nil {
			return 0, decimal.Zero, err
		}
		raw = input
	}

	amount, err := validation.ParseAmount(raw)
	if err != nil {
		return 0, decimal.Zero, err
	}

	return id, amount, nil
}
