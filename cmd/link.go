package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/nickserv-gender/internal/adapters/host"
)

func newLinkCmd(app *app) *cobra.Command {
	var noAutoload bool

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Replay uplink events from stdin and write protocol lines to stdout",
		Long: `Reads one event per line from stdin:

  CONNECT <uid> <nick>
  REGISTER <uid> <account>
  IDENTIFY <uid> <account>
  MSG <uid> <service> <command line>
  INFO <uid> <account>
  QUIT <uid>
  LOAD
  UNLOAD

The nickserv/gender module is loaded before the first event unless --no-autoload is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rt, err := app.newRuntime(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if !noAutoload {
				if err := rt.bus.Load(ctx, rt.module); err != nil {
					return err
				}
			}

			script := host.Script{Bus: rt.bus, Module: rt.module, Logger: app.logger}
			return script.Run(ctx, cmd.InOrStdin())
		},
	}

	cmd.Flags().BoolVar(&noAutoload, "no-autoload", false, "Wait for a LOAD event before starting the module")
	return cmd
}
