package cli

import (
	"fmt"
	"strconv"

	"github.com/sangkips/booth-pos/internal/application/service"
	"github.com/sangkips/booth-pos/pkg/printer"
	"github.com/spf13/cobra"
)

func newQRCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Manage the VietQR image cache",
	}

	var billID string

	getCmd := &cobra.Command{
		Use:   "get AMOUNT",
		Short: "Print the QR data URI for an amount, fetching it if not cached",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			svc, err := a.services()
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)
			image, err := svc.QR.GetOrCreate(ctx, svc.Settings.Load(ctx), billID, amount)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), image.Image)
			return nil
		},
	}
	getCmd.Flags().StringVar(&billID, "bill", "", "Bill id used in the transfer note")

	var start, end, step string
	bulkCmd := &cobra.Command{
		Use:   "bulk",
		Short: "Pre-generate QR images for a range of amounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := service.ParseRange(start, end, step)
			if err != nil {
				return err
			}
			svc, err := a.services()
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)
			result, err := svc.QR.BulkGenerate(ctx, svc.Settings.Load(ctx), billID, r)
			if result != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "generated %d, skipped %d, failed %d\n",
					len(result.Generated), len(result.Skipped), len(result.Failed))
				for _, amount := range result.Failed {
					fmt.Fprintf(cmd.OutOrStdout(), "  failed: %s\n", printer.FormatVND(amount))
				}
			}
			return err
		},
	}
	bulkCmd.Flags().StringVar(&start, "start", "", "First amount")
	bulkCmd.Flags().StringVar(&end, "end", "", "Last amount (inclusive)")
	bulkCmd.Flags().StringVar(&step, "step", "", "Increment between amounts")
	bulkCmd.Flags().StringVar(&billID, "bill", "", "Bill id used in the transfer note")

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List cached amounts in ascending order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "INDEX\tAMOUNT")
			for i, entry := range svc.QR.List(cmdContext(cmd), false) {
				fmt.Fprintf(w, "%d\t%s\n", i, printer.FormatVND(entry.Amount))
			}
			return w.Flush()
		},
	}

	var byIndex bool
	rmCmd := &cobra.Command{
		Use:   "rm AMOUNT",
		Short: "Remove one cached amount (or a listing index with --index)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], err)
			}
			svc, err := a.services()
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)
			if byIndex {
				amount, err := svc.QR.RemoveEntryAt(ctx, int(n))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", printer.FormatVND(amount))
				return nil
			}
			if err := svc.QR.RemoveEntry(ctx, n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", printer.FormatVND(n))
			return nil
		},
	}
	rmCmd.Flags().BoolVar(&byIndex, "index", false, "Treat the argument as a position in the ls listing")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached QR image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			if err := svc.QR.ClearAll(cmdContext(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "qr cache cleared")
			return nil
		},
	}

	cmd.AddCommand(getCmd, bulkCmd, lsCmd, rmCmd, clearCmd)
	return cmd
}
