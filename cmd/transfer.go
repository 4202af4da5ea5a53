package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bankbook/internal/service"
	"bankbook/internal/ui/prompts"
	"bankbook/internal/utils"
	"bankbook/internal/validation"
)

type transferFlags struct {
	From   int64
	To     int64
	Amount string
}

type transferRunner struct {
	svc   *service.BankService
	flags *transferFlags
	cmd   *cobra.Command
}

func NewTransferCmd(svc *service.BankService) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer money between two accounts",
		Long: `Transfer money between two accounts. The source must hold at least the
transferred amount; otherwise the transfer is rejected and neither
account changes.

Examples:
  # Quick mode
  bankbook transfer --from 1 --to 2 --amount 40

  # Interactive mode
  bankbook transfer`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &transferRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().Int64VarP(&flags.From, "from", "f", 0, "Source account ID")
	cmd.Flags().Int64VarP(&flags.To, "to", "t", 0, "Destination account ID")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount (e.g., 150 or 150.50)")

	return cmd
}

func (r *transferRunner) Run() error {
	symbol := currencySymbol()

	from := r.flags.From
	if !r.cmd.Flags().Changed("from") {
		selected, err := prompts.PromptAccount("Transfer from which account?", r.svc.ListAccounts(), symbol)
		if err != nil {
			return err
		}
		from = selected
	}

	to := r.flags.To
	if !r.cmd.Flags().Changed("to") {
		selected, err := prompts.PromptAccount("Transfer to which account?", r.svc.ListAccounts(), symbol)
		if err != nil {
			return err
		}
		to = selected
	}

	raw := r.flags.Amount
	interactive := !r.cmd.Flags().Changed("amount")
	if interactive {
		input, err := prompts.PromptAmount("Transfer amount:", "e.g., 150 or 150.50", validation.AmountValidator())
		if err != nil {
			return err
		}
		raw = input
	}

	amount, err := validation.ParseAmount(raw)
	if err != nil {
		return err
	}

	if interactive {
		message := fmt.Sprintf("Transfer %s from account %d to account %d?",
			utils.FormatMoney(amount, symbol), from, to)
		confirm, err := prompts.PromptConfirm(message, true)
		if err != nil {
			return err
		}
		if !confirm {
			return fmt.Errorf("transfer cancelled")
		}
	}

	if err := r.svc.Transfer(from, to, amount); err != nil {
		return err
	}
	if err := r.svc.Commit(); err != nil {
		return err
	}

	pterm.Success.Printf("Transferred %s from account %d to account %d\n",
		utils.FormatMoney(amount, symbol), from, to)

	return nil
}
