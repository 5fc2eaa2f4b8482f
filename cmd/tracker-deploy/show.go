package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <environment>",
		Short: "Show the current persisted state of an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			any, err := app.Deployer.Show(context.Background(), name)
			if err != nil {
				return wrapDomainError("show", fmt.Sprintf("looking up environment %q", name), err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:       %s\n", any.Name.String())
			fmt.Fprintf(out, "instance:   %s\n", any.InstanceName.String())
			fmt.Fprintf(out, "state:      %s\n", any.State)
			fmt.Fprintf(out, "created_at: %s\n", any.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
			if any.InstanceIP != nil {
				fmt.Fprintf(out, "instance_ip: %s\n", any.InstanceIP.String())
			}
			if any.Method != "" {
				fmt.Fprintf(out, "provision_method: %s\n", any.Method)
			}
			if any.Failure != nil {
				fmt.Fprintf(out, "failed_step:   %s\n", any.Failure.FailedStep)
				fmt.Fprintf(out, "error_kind:    %s\n", any.Failure.ErrorKind)
				fmt.Fprintf(out, "error_summary: %s\n", any.Failure.ErrorSummary)
				if any.Failure.TraceFilePath != "" {
					fmt.Fprintf(out, "trace_file:    %s\n", any.Failure.TraceFilePath)
				}
			}
			return nil
		},
	}

	return cmd
}
