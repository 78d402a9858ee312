package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fkhayef/splitledger/internal/balance"
	"github.com/fkhayef/splitledger/internal/expense"
	"github.com/fkhayef/splitledger/internal/export"
	"github.com/fkhayef/splitledger/internal/server"
)

const noResult = "Add people and expenses to see the result."

func newAddCmd(rt *runtime) *cobra.Command {
	var (
		payer        string
		amount       string
		participants []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense split evenly between participants",
		Example: `  splitledger add --payer Alice --amount 90 --with Alice,Bob,Carol`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := expense.New(payer, amount, participants)
			if err != nil {
				return err
			}

			records, err := rt.app.Session.AddExpense(cmd.Context(), e)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range records {
				fmt.Fprintln(out, r.Format(rt.currency()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&payer, "payer", "p", "", "Person who paid")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount paid")
	cmd.Flags().StringSliceVarP(&participants, "with", "w", nil, "People sharing the expense, including the payer")
	_ = cmd.MarkFlagRequired("payer")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("with")

	return cmd
}

func newListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List raw expense entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			records := rt.app.Session.Records(cmd.Context())
			lines := make([]string, len(records))
			for i, r := range records {
				lines[i] = r.Format(rt.currency())
			}
			printLines(cmd.OutOrStdout(), lines, "No expenses recorded.")
			return nil
		},
	}
}

func newBalancesCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show the net balance of every person",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := rt.app.Session.Balances(cmd.Context()).Entries()
			lines := make([]string, len(entries))
			for i, e := range entries {
				amount := e.Amount
				if balance.IsZero(amount) {
					amount = decimal.Zero
				}
				lines[i] = fmt.Sprintf("%s: %s %s", e.Person, rt.currency(), amount.StringFixed(2))
			}
			printLines(cmd.OutOrStdout(), lines, noResult)
			return nil
		},
	}
}

func newSettleCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "settle",
		Short: "Show the transfers that settle every debt",
		RunE: func(cmd *cobra.Command, args []string) error {
			transfers := rt.app.Session.Settlements(cmd.Context())
			lines := make([]string, len(transfers))
			for i, t := range transfers {
				lines[i] = t.Format(rt.currency())
			}
			printLines(cmd.OutOrStdout(), lines, noResult)
			return nil
		},
	}
}

func newPeopleCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "people",
		Short: "List everyone named in the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			people := rt.app.Session.People(cmd.Context())
			lines := make([]string, len(people))
			for i, p := range people {
				lines[i] = string(p)
			}
			printLines(cmd.OutOrStdout(), lines, "No people yet.")
			return nil
		},
	}
}

func newResetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt.app.Session.Reset(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Ledger cleared.")
			return nil
		},
	}
}

func newExportCmd(rt *runtime) *cobra.Command {
	var (
		format      string
		settlements bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expense entries and settlements as CSV, JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rows := export.RecordRows(rt.app.Session.Records(ctx), rt.currency())
			if settlements {
				rows = append(rows, export.TransferRows(rt.app.Session.Settlements(ctx), rt.currency())...)
			}
			return export.Write(cmd.OutOrStdout(), f, rows)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatCSV), "Output format: csv, json or yaml")
	cmd.Flags().BoolVarP(&settlements, "settlements", "s", true, "Include settlement transfers")

	return cmd
}

func newServeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg := rt.app.Config
			router := server.NewRouter(rt.app.Session, rt.app.Logger, server.Options{
				Currency:       cfg.Display.Currency,
				AllowedOrigins: cfg.Server.AllowedOrigins,
			})
			return server.Run(ctx, ":"+cfg.Server.Port, router, rt.app.Logger)
		},
	}
}
