package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newTestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <environment>",
		Short: "Validate the remote services of a Running environment, warning on DNS mismatches (§4.2.6)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			result, err := app.Deployer.Test(context.Background(), name)
			if err != nil {
				return wrapDomainError("test", fmt.Sprintf("testing environment %q", name), err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.ComposeOutput)
			for _, warning := range result.DNSWarnings {
				if !warning.Resolved {
					fmt.Fprintf(out, "warning: domain %q did not resolve (expected %s)\n", warning.Domain, warning.ExpectedIP)
					continue
				}
				fmt.Fprintf(out, "warning: domain %q resolves to %s, not the instance's known ip %s\n",
					warning.Domain, warning.ResolvedIPs, warning.ExpectedIP)
			}
			return nil
		},
	}

	return cmd
}
