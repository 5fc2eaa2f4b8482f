// Command tracker-deploy is the CLI front end over internal/sdk's Deployer
// façade: one subcommand per lifecycle operation (§4.2), wiring cobra flags
// straight onto Deployer method calls and rendering progress to stdout.
package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
