package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file without creating an environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _, err := app.Deployer.Validate(context.Background(), configPath)
			if err != nil {
				return wrapDomainError("validate", fmt.Sprintf("parsing configuration file %q", configPath), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid for environment %q\n", name.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the environment creation configuration file")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}
