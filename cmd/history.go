package cmd

import (
	"github.com/spf13/cobra"

	"bankbook/internal/service"
	"bankbook/internal/ui/prompts"
	"bankbook/internal/ui/views"
)

type historyFlags struct {
	ID int64
}

type historyRunner struct {
	svc   *service.BankService
	flags *historyFlags
	cmd   *cobra.Command
}

func NewHistoryCmd(svc *service.BankService) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show one account's transaction history",
		Long: `Show one account's transaction history in chronological order.

Examples:
  # Quick mode
  bankbook history --id 1

  # Interactive mode
  bankbook history`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &historyRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().Int64VarP(&flags.ID, "id", "i", 0, "Account ID")

	return cmd
}

func (r *historyRunner) Run() error {
	id := r.flags.ID
	if !r.cmd.Flags().Changed("id") {
		selected, err := prompts.PromptAccount("Show history of which account?", r.svc.ListAccounts(), currencySymbol())
		if err != nil {
			return err
		}
		id = selected
	}

	acc, err := r.svc.GetAccount(id)
	if err != nil {
		return err
	}
	history, err := r.svc.History(id)
	if err != nil {
		return err
	}

	views.RenderHistory(acc, history, currencySymbol())

	return nil
}
