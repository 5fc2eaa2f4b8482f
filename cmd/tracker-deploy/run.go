package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <environment>",
		Short: "Start the compose stack on a Released environment (§4.2.5)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			_, err := app.Deployer.Run(context.Background(), name)
			if err != nil {
				return wrapDomainError("run", fmt.Sprintf("starting environment %q", name), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Running environment %q\n", name)
			return nil
		},
	}

	return cmd
}
