package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCreateCmd(app *App) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new environment from a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			name, inputs, err := app.Deployer.Validate(ctx, configPath)
			if err != nil {
				return wrapDomainError("create", fmt.Sprintf("parsing configuration file %q", configPath), err)
			}

			created, err := app.Deployer.CreateEnvironment(ctx, name.String(), inputs)
			if err != nil {
				return wrapDomainError("create", fmt.Sprintf("creating environment %q", name.String()), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created environment %q (instance %q)\n", created.Base.Name.String(), created.Base.InstanceName.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the environment creation configuration file")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}
