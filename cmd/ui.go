package cmd

import (
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bankbook/internal/errhandler"
	"bankbook/internal/service"
	"bankbook/internal/ui"
	"bankbook/internal/ui/prompts"
	"bankbook/internal/ui/views"
	"bankbook/internal/utils"
	"bankbook/internal/validation"
)

const (
	menuCreate   = "Create Account"
	menuDeposit  = "Deposit"
	menuWithdraw = "Withdraw"
	menuTransfer = "Transfer"
	menuList     = "List Accounts"
	menuHistory  = "Show History"
	menuExit     = "Exit"
)

func NewUICmd(svc *service.BankService) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Run the interactive menu",
		Long: `Run bankbook as an interactive session: pick operations from a menu and
enter parameters through prompts. The session keeps going until Exit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(svc)
		},
	}
}

func runMenu(svc *service.BankService) error {
	ui.PrintTitle("bankbook")

	options := []string{
		menuCreate, menuDeposit, menuWithdraw,
		menuTransfer, menuList, menuHistory, menuExit,
	}

	for {
		choice, err := prompts.PromptSelect("Select an operation:", options, menuList)
		if err != nil {
			if errhandler.IsCancel(err) {
				break
			}
			return err
		}

		if choice == menuExit {
			break
		}

		if err := runMenuAction(svc, choice); err != nil {
			if errhandler.IsCancel(err) {
				pterm.Warning.Println("Operation Cancelled")
				continue
			}
			pterm.Error.Println(capitalize(err.Error()))
		}
	}

	pterm.Success.Println("Goodbye.")
	return nil
}

func runMenuAction(svc *service.BankService, choice string) error {
	symbol := currencySymbol()

	switch choice {
	case menuCreate:
		owner, err := prompts.PromptOwnerName(validation.ValidateOwner)
		if err != nil {
			return err
		}
		acc, err := svc.CreateAccount(owner)
		if err != nil {
			return err
		}
		if err := svc.Commit(); err != nil {
			return err
		}
		pterm.Success.Printf("Account created successfully! (ID: %d)\n", acc.ID)

	case menuDeposit:
		id, amount, err := promptMutation(svc, "Deposit into which account?", "Deposit amount:")
		if err != nil {
			return err
		}
		if err := svc.Deposit(id, amount); err != nil {
			return err
		}
		if err := svc.Commit(); err != nil {
			return err
		}
		pterm.Success.Printf("Deposited %s\n", utils.FormatMoney(amount, symbol))

	case menuWithdraw:
		id, amount, err := promptMutation(svc, "Withdraw from which account?", "Withdrawal amount:")
		if err != nil {
			return err
		}
		if err := svc.Withdraw(id, amount); err != nil {
			return err
		}
		if err := svc.Commit(); err != nil {
			return err
		}
		pterm.Success.Printf("Withdrew %s\n", utils.FormatMoney(amount, symbol))

	case menuTransfer:
		from, err := prompts.PromptAccount("Transfer from which account?", svc.ListAccounts(), symbol)
		if err != nil {
			return err
		}
		to, err := prompts.PromptAccount("Transfer to which account?", svc.ListAccounts(), symbol)
		if err != nil {
			return err
		}
		raw, err := prompts.PromptAmount("Transfer amount:", "e.g., 150 or 150.50", validation.AmountValidator())
		if err != nil {
			return err
		}
		amount, err := validation.ParseAmount(raw)
		if err != nil {
			return err
		}
		if err := svc.Transfer(from, to, amount); err != nil {
			return err
		}
		if err := svc.Commit(); err != nil {
			return err
		}
		pterm.Success.Printf("Transferred %s from account %d to account %d\n",
			utils.FormatMoney(amount, symbol), from, to)

	case menuList:
		views.RenderAccountList(svc.ListAccounts(), symbol)

	case menuHistory:
		id, err := prompts.PromptAccount("Show history of which account?", svc.ListAccounts(), symbol)
		if err != nil {
			return err
		}
		acc, err := svc.GetAccount(id)
		if err != nil {
			return err
		}
		history, err := svc.History(id)
		if err != nil {
			return err
		}
		views.RenderHistory(acc, history, symbol)
	}

	return nil
}

func promptMutation(svc *service.BankService, accountTitle, amountTitle string) (int64, decimal.Decimal, error) {
	id, err := prompts.PromptAccount(accountTitle, svc.ListAccounts(), currencySymbol())
	if err != nil {
		return 0, decimal.Zero, err
	}
	raw, err := prompts.PromptAmount(amountTitle, "e.g., 150 or 150.50", validation.AmountValidator())
	if err != nil {
		return 0, decimal.Zero, err
	}
	amount, err := validation.ParseAmount(raw)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return id, amount, nil
}
