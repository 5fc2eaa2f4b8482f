package main

import (
	"fmt"
	"os"
	"time"

	"github.com/torrust/tracker-deploy/internal/logging"
	"github.com/torrust/tracker-deploy/internal/sdk"
)

// rootFlags holds the persistent flags every subcommand reads from, mirrored
// after the teacher CLI's rootFlags struct.
type rootFlags struct {
	dataDir            string
	buildDir           string
	templatesDir       string
	logLevel           string
	provisionerBinary  string
	configEngineBinary string
	provisionTimeout   time.Duration
}

// App bundles the long-lived Deployer built once a command actually runs, so
// every subcommand factory can close over a pointer that is only populated
// after cobra parses the persistent flags.
type App struct {
	Deployer *sdk.Deployer
}

// build assembles the Deployer from the parsed root flags. Called from
// rootCmd's PersistentPreRunE, once per invocation.
func (a *App) build(flags *rootFlags) error {
	logger, err := logging.New(logging.Options{
		Writer:    os.Stderr,
		Level:     flags.logLevel,
		Component: "cli",
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	builder := sdk.NewBuilder().
		WithDataDir(flags.dataDir).
		WithBuildDir(flags.buildDir).
		WithTemplatesDir(flags.templatesDir).
		WithProvisionerBinary(flags.provisionerBinary).
		WithConfigEngineBinary(flags.configEngineBinary).
		WithProvisionTimeout(flags.provisionTimeout).
		WithLogger(logger).
		WithRunnerStreams(os.Stdout, os.Stderr)

	deployer, buildErr := builder.Build()
	if buildErr != nil {
		return fmt.Errorf("assemble deployer: %w", buildErr)
	}
	a.Deployer = deployer
	return nil
}

// newCommandError formats a user-facing CLI error the way the teacher CLI
// does: operation, cause, and a remediation suggestion on separate lines.
func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	if e.suggestion == "" {
		return fmt.Sprintf("Failed to %s: %s\n\nError: %v", e.operation, e.context, e.cause)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// wrapDomainError formats cause as a commandError, using errkind's own
// remediation hint as the suggestion when cause carries one.
func wrapDomainError(operation, context string, cause error) error {
	return newCommandError(operation, context, cause, remediationFor(cause))
}
