package cmd

import (
	"github.com/spf13/cobra"

	"bankbook/internal/service"
	"bankbook/internal/ui/views"
)

func NewListCmd(svc *service.BankService) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		Long:  `List all accounts in the ledger with their current balances, in creation order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			views.RenderAccountList(svc.ListAccounts(), currencySymbol())
			return nil
		},
	}
}
