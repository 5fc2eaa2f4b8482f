package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDestroyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "destroy <environment>",
		Short: "Tear down an environment's remote infrastructure, from whichever lifecycle state it is in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			listener := newTextListener(cmd.OutOrStdout())

			_, err := app.Deployer.Destroy(context.Background(), name, listener)
			if err != nil {
				return wrapDomainError("destroy", fmt.Sprintf("destroying environment %q", name), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Destroyed environment %q\n", name)
			return nil
		},
	}

	return cmd
}
