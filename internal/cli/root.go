// Package cli implements the splitledger command line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fkhayef/splitledger/internal/app"
	"github.com/fkhayef/splitledger/internal/config"
	"github.com/fkhayef/splitledger/internal/logging"
)

// runtime carries state set up by the root command for its subcommands
type runtime struct {
	configFile string
	app        *app.App
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rt := &runtime{}

	cmd := &cobra.Command{
		Use:   "splitledger",
		Short: "Record shared expenses and settle them with the fewest practical transfers",
		Long: `splitledger keeps a ledger of who paid for what. Each expense is split evenly
between its participants, and the settle command reduces all debts to a short list of payments.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load(rt.configFile)
			if err != nil {
				return err
			}
			logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

			a, err := app.New(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			rt.app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if rt.app == nil {
				return nil
			}
			return rt.app.Close()
		},
	}

	cmd.PersistentFlags().StringVarP(&rt.configFile, "config", "c", "", "Path to a config file (default: ./config.yaml or $HOME/.splitledger/config.yaml)")

	cmd.AddCommand(
		newAddCmd(rt),
		newListCmd(rt),
		newBalancesCmd(rt),
		newSettleCmd(rt),
		newPeopleCmd(rt),
		newResetCmd(rt),
		newExportCmd(rt),
		newServeCmd(rt),
	)

	return cmd
}

func (rt *runtime) currency() string {
	return rt.app.Config.Display.Currency
}

func printLines(w io.Writer, lines []string, empty string) {
	if len(lines) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
