package main

import (
	"github.com/spf13/cobra"

	"github.com/torrust/tracker-deploy/internal/command"
	"github.com/torrust/tracker-deploy/internal/sdk"
)

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &App{}

	cmd := &cobra.Command{
		Use:           "tracker-deploy",
		Short:         "Provisions, configures, and releases a Torrust Tracker deployment environment",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.build(flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", sdk.DefaultDataDir, "Directory where environment state and traces are persisted")
	cmd.PersistentFlags().StringVar(&flags.buildDir, "build-dir", sdk.DefaultBuildDir, "Directory where rendered deployment artifacts are written")
	cmd.PersistentFlags().StringVar(&flags.templatesDir, "templates-dir", sdk.DefaultTemplatesDir, "Root of each environment's recorded templates directory (removed by purge; templates are rendered from the embedded copy, not written here)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.provisionerBinary, "provisioner-binary", "", "OpenTofu-compatible binary name (default: tofu)")
	cmd.PersistentFlags().StringVar(&flags.configEngineBinary, "config-engine-binary", "", "Ansible-compatible binary name (default: ansible-playbook)")
	cmd.PersistentFlags().DurationVar(&flags.provisionTimeout, "provision-timeout", command.DefaultProvisionTimeout,
		"Bound on the entire provision command, including the SSH-reachability and cloud-init waits")

	cmd.AddCommand(newCreateCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newProvisionCmd(app))
	cmd.AddCommand(newConfigureCmd(app))
	cmd.AddCommand(newReleaseCmd(app))
	cmd.AddCommand(newRunCmd(app))
	cmd.AddCommand(newTestCmd(app))
	cmd.AddCommand(newDestroyCmd(app))
	cmd.AddCommand(newPurgeCmd(app))

	return cmd
}
