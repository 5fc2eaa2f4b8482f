package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newProvisionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision <environment>",
		Short: "Provision infrastructure for a Created environment (§4.2.2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			listener := newTextListener(cmd.OutOrStdout())

			provisioned, err := app.Deployer.Provision(context.Background(), name, listener)
			if err != nil {
				return wrapDomainError("provision", fmt.Sprintf("provisioning environment %q", name), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Provisioned environment %q at %s (method: %s)\n",
				name, provisioned.InstanceIP.String(), provisioned.Method)
			return nil
		},
	}

	return cmd
}
