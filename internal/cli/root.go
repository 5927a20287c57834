package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sangkips/booth-pos/internal/bootstrap"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// BuildFunc constructs the service graph the commands operate on
type BuildFunc func() (*bootstrap.Services, error)

type app struct {
	build BuildFunc
	fs    afero.Fs
	svc   *bootstrap.Services
}

func (a *app) services() (*bootstrap.Services, error) {
	if a.svc != nil {
		return a.svc, nil
	}
	svc, err := a.build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	a.svc = svc
	return svc, nil
}

func (a *app) close() {
	if a.svc != nil {
		_ = a.svc.Close()
		a.svc = nil
	}
}

// NewRootCmd creates the posctl command tree. fs is where exported files are written.
func NewRootCmd(build BuildFunc, fs afero.Fs) *cobra.Command {
	a := &app{build: build, fs: fs}

	rootCmd := &cobra.Command{
		Use:   "posctl",
		Short: "Operate the booth point of sale from the command line",
		Long: `posctl manages the product catalog, incomplete bills, the VietQR
image cache and the merchant bank account of a booth-pos installation.`,
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	rootCmd.AddCommand(
		newProductsCmd(a),
		newBillCmd(a),
		newQRCmd(a),
		newSettingsCmd(a),
		newBanksCmd(a),
		newPrinterCmd(a),
	)
	return rootCmd
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
