package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newReleaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release <environment>",
		Short: "Render and deploy the tracker stack's artifacts to a Configured environment (§4.2.4)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			listener := newTextListener(cmd.OutOrStdout())

			_, err := app.Deployer.Release(context.Background(), name, listener)
			if err != nil {
				return wrapDomainError("release", fmt.Sprintf("releasing environment %q", name), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Released environment %q\n", name)
			return nil
		},
	}

	return cmd
}
