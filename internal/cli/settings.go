package cli

import (
	"fmt"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/spf13/cobra"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the merchant bank account",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the bank account used for QR payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			account := svc.Settings.Load(cmdContext(cmd))
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "Bank\t%s\n", account.BankCode)
			fmt.Fprintf(w, "Account number\t%s\n", account.AccountNumber)
			fmt.Fprintf(w, "Account name\t%s\n", account.AccountName)
			return w.Flush()
		},
	}

	var bankCode, accountNumber, accountName string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Save the bank account; this clears the QR cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)
			current := svc.Settings.Load(ctx)
			if !cmd.Flags().Changed("bank") {
				bankCode = current.BankCode
			}
			if !cmd.Flags().Changed("account") {
				accountNumber = current.AccountNumber
			}
			if !cmd.Flags().Changed("name") {
				accountName = current.AccountName
			}

			saved, err := svc.Settings.Save(ctx, entity.BankAccount{
				BankCode:      bankCode,
				AccountNumber: accountNumber,
				AccountName:   accountName,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s %s (%s); qr cache cleared\n", saved.BankCode, saved.AccountNumber, saved.AccountName)
			return nil
		},
	}
	setCmd.Flags().StringVar(&bankCode, "bank", "", "Bank code, e.g. VCB")
	setCmd.Flags().StringVar(&accountNumber, "account", "", "Account number")
	setCmd.Flags().StringVar(&accountName, "name", "", "Account holder name")

	cmd.AddCommand(showCmd, setCmd)
	return cmd
}

func newBanksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List banks supported by VietQR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			banks, err := svc.Settings.ListBanks(cmdContext(cmd))
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "CODE\tSHORT NAME\tNAME")
			for _, b := range banks {
				fmt.Fprintf(w, "%s\t%s\t%s\n", b.Code, b.ShortName, b.Name)
			}
			return w.Flush()
		},
	}
}

func newPrinterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "printer",
		Short: "Check the receipt printer",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show printer configuration and connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			status := svc.Printer.GetStatus(cmdContext(cmd))
			fmt.Fprintf(cmd.OutOrStdout(), "type=%s configured=%t connected=%t\n", status.Type, status.Configured, status.Connected)
			return nil
		},
	}

	testCmd := &cobra.Command{
		Use:   "test",
		Short: "Print a sample receipt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			if _, err := svc.Printer.TestPrint(cmdContext(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "test page sent")
			return nil
		},
	}

	cmd.AddCommand(statusCmd, testCmd)
	return cmd
}
