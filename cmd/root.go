package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func Execute() error {
	return execute(newRootCmd())
}

// execute runs rootCmd and then releases the app, whether or not the command failed.
func execute(rootCmd *cobra.Command, closeApp func() error) error {
	err := rootCmd.Execute()
	return errors.Join(err, closeApp())
}

func newRootCmd() (*cobra.Command, func() error) {
	rootCmd := &cobra.Command{
		Use:           "nsgender",
		Short:         "NickServ gender module: set, clear and show account gender",
		Long:          "nsgender runs the nickserv/gender services module. It manages the gender attribute of registered accounts, enforces the banned words list, and replays uplink events to propagate gender metadata to live sessions.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, func() error { return nil }
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newGenderCmd(app),
		newInfoCmd(app),
		newLinkCmd(app),
	)

	return rootCmd, app.close
}
