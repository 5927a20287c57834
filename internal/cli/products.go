package cli

import (
	"fmt"
	"strconv"

	"github.com/sangkips/booth-pos/internal/application/service"
	"github.com/sangkips/booth-pos/pkg/printer"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage the product catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "NAME\tPRICE")
			for _, p := range svc.Products.List(cmdContext(cmd)) {
				fmt.Fprintf(w, "%s\t%s\n", p.Name, printer.FormatVND(p.Price))
			}
			return w.Flush()
		},
	}

	var image string
	addCmd := &cobra.Command{
		Use:   "add NAME PRICE",
		Short: "Add a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[1], err)
			}
			svc, err := a.services()
			if err != nil {
				return err
			}
			input := service.ProductInput{Name: args[0], Price: price}
			if image != "" {
				input.Image = &image
			}
			p, err := svc.Products.Add(cmdContext(cmd), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", p.Name, printer.FormatVND(p.Price))
			return nil
		},
	}
	addCmd.Flags().StringVar(&image, "image", "", "Image URI for the product")

	var newName string
	var newPrice int64
	var newImage string
	updateCmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a product; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)

			var input *service.ProductInput
			for _, p := range svc.Products.List(ctx) {
				if p.Name == args[0] {
					input = &service.ProductInput{Name: p.Name, Price: p.Price, Image: p.Image}
					break
				}
			}
			if input == nil {
				input = &service.ProductInput{Name: args[0]}
			}
			if cmd.Flags().Changed("name") {
				input.Name = newName
			}
			if cmd.Flags().Changed("price") {
				input.Price = newPrice
			}
			if cmd.Flags().Changed("image") {
				input.Image = &newImage
			}

			p, err := svc.Products.Update(ctx, args[0], *input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", p.Name, printer.FormatVND(p.Price))
			return nil
		},
	}
	updateCmd.Flags().StringVar(&newName, "name", "", "New product name")
	updateCmd.Flags().Int64Var(&newPrice, "price", 0, "New price in VND")
	updateCmd.Flags().StringVar(&newImage, "image", "", "New image URI")

	rmCmd := &cobra.Command{
		Use:   "rm NAME",
		Short: "Remove a product by name (case and surrounding spaces ignored)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			if err := svc.Products.Remove(cmdContext(cmd), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}

	var output string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			data, err := svc.Products.ExportXLSX(cmdContext(cmd))
			if err != nil {
				return err
			}
			if err := afero.WriteFile(a.fs, output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported catalog to %s\n", output)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "products.xlsx", "Output file")

	cmd.AddCommand(listCmd, addCmd, updateCmd, rmCmd, exportCmd)
	return cmd
}
