package cli

import (
	"fmt"

	"github.com/sangkips/booth-pos/pkg/printer"
	"github.com/spf13/cobra"
)

func newBillCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Inspect and settle bills",
	}

	incompleteCmd := &cobra.Command{
		Use:   "incomplete [BILL_ID]",
		Short: "List incomplete bills, or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				bill, err := svc.Bills.GetIncomplete(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %s\n", bill.BillID, bill.DateTime)
				w := newTable(out)
				for _, item := range bill.Products {
					fmt.Fprintf(w, "  %s\t%d x %s\t%s\n", item.Name, item.Qty, printer.FormatVND(item.Price), printer.FormatVND(item.Subtotal()))
				}
				fmt.Fprintf(w, "  TOTAL\t\t%s\n", printer.FormatVND(bill.Total()))
				return w.Flush()
			}

			w := newTable(out)
			fmt.Fprintln(w, "BILL\tTIME\tITEMS\tTOTAL")
			for _, b := range svc.Bills.ListIncomplete(ctx) {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", b.BillID, b.DateTime, b.ItemCount(), printer.FormatVND(b.Total()))
			}
			return w.Flush()
		},
	}

	payCmd := &cobra.Command{
		Use:   "pay BILL_ID",
		Short: "Mark an incomplete bill as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			removed, err := svc.Bills.MarkPaid(cmdContext(cmd), args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s was not in the incomplete list\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s marked as paid\n", args[0])
			return nil
		},
	}

	printCmd := &cobra.Command{
		Use:   "print BILL_ID",
		Short: "Print the receipt of an incomplete bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)
			bill, err := svc.Bills.GetIncomplete(ctx, args[0])
			if err != nil {
				return err
			}
			if _, err := svc.Printer.PrintBill(ctx, bill); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "printed %s\n", bill.BillID)
			return nil
		},
	}

	cmd.AddCommand(incompleteCmd, payCmd, printCmd)
	return cmd
}
