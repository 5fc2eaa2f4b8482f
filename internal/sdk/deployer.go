// Package sdk exposes the deployer's embeddable façade (§6.4): one method
// per lifecycle command, each taking owned inputs and returning either an
// Environment in the resulting state, a result DTO, or a classified error.
// cmd/tracker-deploy is the façade's only consumer inside this repository,
// but the package is built to be imported directly by other Go programs.
package sdk

import (
	"context"

	"github.com/torrust/tracker-deploy/internal/command"
	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/ident"
	"github.com/torrust/tracker-deploy/internal/progress"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// Deployer is the façade over every lifecycle command. It holds no state
// of its own beyond the shared command.Deps; every method call loads and
// persists the environment it concerns directly through the repository.
// Construct one with NewBuilder.
type Deployer struct {
	create    command.CreateHandler
	provision command.ProvisionHandler
	configure command.ConfigureHandler
	release   command.ReleaseHandler
	run       command.RunHandler
	test      command.TestHandler
	destroy   command.DestroyHandler
	purge     command.PurgeHandler
	show      command.ShowHandler
	list      command.ListHandler
	validate  command.ValidateHandler
}

func newDeployer(deps command.Deps) *Deployer {
	return &Deployer{
		create:    command.NewCreateHandler(deps),
		provision: command.NewProvisionHandler(deps),
		configure: command.NewConfigureHandler(deps),
		release:   command.NewReleaseHandler(deps),
		run:       command.NewRunHandler(deps),
		test:      command.NewTestHandler(deps),
		destroy:   command.NewDestroyHandler(deps),
		purge:     command.NewPurgeHandler(deps),
		show:      command.NewShowHandler(deps),
		list:      command.NewListHandler(deps),
		validate:  command.NewValidateHandler(),
	}
}

// CreateEnvironment validates name and persists a fresh Created environment
// from inputs. Fails AlreadyExists if name is already taken.
func (d *Deployer) CreateEnvironment(ctx context.Context, name string, inputs userinput.UserInputs) (environment.Created, error) {
	envName, err := ident.NewEnvironmentName(name)
	if err != nil {
		return environment.Created{}, err
	}
	return d.create.Execute(ctx, envName, inputs)
}

// Show returns the named environment's persisted state, narrowable to its
// concrete lifecycle type via AnyEnvironmentState's TryInto* accessors.
func (d *Deployer) Show(ctx context.Context, name string) (environment.AnyEnvironmentState, error) {
	return d.show.Execute(ctx, name)
}

// List returns the names of every persisted environment.
func (d *Deployer) List(ctx context.Context) ([]string, error) {
	return d.list.Execute(ctx)
}

// Validate parses and converts the configuration file at path without
// persisting anything, for a dry-run check of an operator-authored config.
func (d *Deployer) Validate(ctx context.Context, path string) (ident.EnvironmentName, userinput.UserInputs, error) {
	return d.validate.Execute(ctx, path)
}

// Provision runs the Provision command (§4.2.2) against a Created
// environment. listener may be nil.
func (d *Deployer) Provision(ctx context.Context, name string, listener progress.Listener) (environment.Provisioned, error) {
	return d.provision.Execute(ctx, name, listener)
}

// Configure runs the Configure command (§4.2.3) against a Provisioned
// environment. listener may be nil.
func (d *Deployer) Configure(ctx context.Context, name string, listener progress.Listener) (environment.Configured, error) {
	return d.configure.Execute(ctx, name, listener)
}

// Release runs the Release command (§4.2.4) against a Configured
// environment. listener may be nil.
func (d *Deployer) Release(ctx context.Context, name string, listener progress.Listener) (environment.Released, error) {
	return d.release.Execute(ctx, name, listener)
}

// Run starts a Released environment's compose stack remotely.
func (d *Deployer) Run(ctx context.Context, name string) (environment.Running, error) {
	return d.run.Execute(ctx, name)
}

// Test validates a Running environment's remote services, returning
// advisory DNS warnings alongside the compose status.
func (d *Deployer) Test(ctx context.Context, name string) (command.TestResult, error) {
	return d.test.Execute(ctx, name)
}

// Destroy tears down the named environment's remote infrastructure from a
// settled or failed lifecycle state; an environment in an in-flight state
// (Provisioning, Configuring, Releasing, Destroying) or already Destroyed
// is rejected with a Validation error. listener may be nil.
func (d *Deployer) Destroy(ctx context.Context, name string, listener progress.Listener) (environment.Destroyed, error) {
	return d.destroy.Execute(ctx, name, listener)
}

// Purge removes every trace of the named environment from local disk: its
// persisted state, build artifacts, and templates directory.
func (d *Deployer) Purge(ctx context.Context, name string) error {
	return d.purge.Execute(ctx, name)
}
