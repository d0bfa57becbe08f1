package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/nickserv-gender/internal/adapters/host"
	"github.com/bnema/nickserv-gender/internal/adapters/render/reply"
	"github.com/bnema/nickserv-gender/internal/domain"
)

func newInfoCmd(app *app) *cobra.Command {
	var viewer string

	cmd := &cobra.Command{
		Use:   "info <account>",
		Short: "Show registration information for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			source := domain.Source{}
			if viewer != "" {
				var err error
				if source, err = app.sourceFor(ctx, viewer); err != nil {
					return err
				}
			}

			rt, err := app.newOfflineRuntime(ctx)
			if err != nil {
				return err
			}

			term := reply.NewTerminal(cmd.OutOrStdout())
			if err := rt.bus.Invoke(ctx, source, host.NickServService, "INFO "+args[0], term); err != nil {
				return err
			}
			if term.Failed() {
				return errCommandRefused
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&viewer, "as", "", "Account viewing the information")
	return cmd
}
