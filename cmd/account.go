package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	accountsrender "github.com/bnema/nickserv-gender/internal/adapters/render/accounts"
	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/ports"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage registered accounts",
	}

	cmd.AddCommand(
		newAccountAddCmd(app),
		newAccountListCmd(app),
	)

	return cmd
}

func newAccountAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.accounts.Register(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			app.audit.LogCommand(cmd.Context(), domain.Source{AccountID: account.ID, AccountName: account.Name}, ports.AuditRegister, "REGISTER: "+account.Name)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s)\n", account.Name, account.ID)
			return err
		},
	}
}

func newAccountListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := app.accounts.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}

			rendered, err := app.accountsRenderer(summaries, accountsrender.RenderOptions{})
			if err != nil {
				return fmt.Errorf("render accounts: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print accounts as JSON")
	return cmd
}
