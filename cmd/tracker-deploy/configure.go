package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigureCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure <environment>",
		Short: "Run the configuration engine against a Provisioned environment (§4.2.3)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			listener := newTextListener(cmd.OutOrStdout())

			_, err := app.Deployer.Configure(context.Background(), name, listener)
			if err != nil {
				return wrapDomainError("configure", fmt.Sprintf("configuring environment %q", name), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configured environment %q\n", name)
			return nil
		},
	}

	return cmd
}
