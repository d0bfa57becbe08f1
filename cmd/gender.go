package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/nickserv-gender/internal/adapters/host"
	"github.com/bnema/nickserv-gender/internal/adapters/render/reply"
	"github.com/bnema/nickserv-gender/internal/application"
)

var errCommandRefused = errors.New("command refused")

func newGenderCmd(app *app) *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "gender [text...]",
		Short: "Set or clear the gender of an account",
		Long:  "Sets the gender shown in INFO for --account. Without text the stored gender is cleared. Text containing a banned word is refused.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			source, err := app.sourceFor(ctx, accountID)
			if err != nil {
				return err
			}

			rt, err := app.newOfflineRuntime(ctx)
			if err != nil {
				return err
			}

			term := reply.NewTerminal(cmd.OutOrStdout())
			line := strings.TrimSpace(application.GenderCommandName + " " + strings.Join(args, " "))
			if err := rt.bus.Invoke(ctx, source, host.NickServService, line, term); err != nil {
				return err
			}
			if term.Failed() {
				return errCommandRefused
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account to act as")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
