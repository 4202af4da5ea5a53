package cmd

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bankbook/internal/service"
	"bankbook/internal/ui/prompts"
	"bankbook/internal/ui/views"
	"bankbook/internal/validation"
)

type createFlags struct {
	Owner string
}

type createRunner struct {
	svc   *service.BankService
	flags *createFlags
	cmd   *cobra.Command
}

func NewCreateCmd(svc *service.BankService) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Long: `Create a new account with a zero balance. The account gets the next
free id, which all other commands use to refer to it.

Examples:
  # Quick mode
  bankbook create --owner "Alice"

  # Interactive mode
  bankbook create`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Owner, "owner", "o", "", "Owner display name")

	return cmd
}

func (r *createRunner) Run() error {
	owner := r.flags.Owner

	if !r.cmd.Flags().Changed("owner") {
		input, err := prompts.PromptOwnerName(validation.ValidateOwner)
		if err != nil {
			return err
		}
		owner = input
	}

	owner = strings.TrimSpace(owner)
	if err := validation.ValidateOwner(owner); err != nil {
		return err
	}

	acc, err := r.svc.CreateAccount(owner)
	if err != nil {
		return err
	}

	if err := r.svc.Commit(); err != nil {
		return err
	}

	pterm.Success.Printf("Account created successfully! (ID: %d)\n", acc.ID)
	views.RenderAccountSummary(acc, currencySymbol())

	return nil
}
