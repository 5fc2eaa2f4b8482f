package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newPurgeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge <environment>",
		Short: "Remove every local trace of an environment: its state, build artifacts, and templates directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := app.Deployer.Purge(context.Background(), name); err != nil {
				return wrapDomainError("purge", fmt.Sprintf("purging environment %q", name), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Purged environment %q\n", name)
			return nil
		},
	}

	return cmd
}
