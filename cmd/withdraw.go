package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bankbook/internal/service"
	"bankbook/internal/ui/views"
	"bankbook/internal/utils"
)

type withdrawFlags struct {
	ID     int64
	Amount string
}

type withdrawRunner struct {
	svc   *service.BankService
	flags *withdrawFlags
	cmd   *cobra.Command
}

func NewWithdrawCmd(svc *service.BankService) *cobra.Command {
	flags := &withdrawFlags{}

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw money from an account",
		Long: `Withdraw money from an account. A withdrawal that exceeds the current
balance is rejected and changes nothing.

Examples:
  # Quick mode
  bankbook withdraw --id 1 --amount 40

  # Interactive mode
  bankbook withdraw`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &withdrawRunner{
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

func (r *withdrawRunner) Run() error {
	id, amount, err := resolveAccountAndAmount(
		r.svc, r.cmd, r.flags.ID, r.flags.Amount,
		"Withdraw from which account?", "Withdrawal amount:",
	)
	if err != nil {
		return err
	}

	if err := r.svc.Withdraw(id, amount); err != nil {
		return err
	}
	if err := r.svc.Commit(); err != nil {
		return err
	}

	pterm.Success.Printf("Withdrew %s\n", utils.FormatMoney(amount, currencySymbol()))

	acc, err := r.svc.GetAccount(id)
	if err != nil {
		return err
	}
	views.RenderAccountSummary(acc, currencySymbol())

	return nil
}
