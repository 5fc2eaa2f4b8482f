package command

import (
	"context"
	"path/filepath"

	"github.com/torrust/tracker-deploy/internal/adapter"
	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/progress"
	"github.com/torrust/tracker-deploy/internal/step"
)

// ConfigureHandler implements the Configure command (§4.2.3): two ordered
// idempotent playbook runs against the already-provisioned instance.
type ConfigureHandler struct {
	deps Deps
}

// NewConfigureHandler constructs a ConfigureHandler.
func NewConfigureHandler(deps Deps) ConfigureHandler {
	return ConfigureHandler{deps: deps}
}

// Execute installs the container runtime and compose tooling on the named
// environment's instance. It requires the environment to be Provisioned.
func (h ConfigureHandler) Execute(ctx context.Context, name string, listener progress.Listener) (environment.Configured, error) {
	startedAt := h.deps.clockNow()
	listener = progress.OrNoOp(listener)

	any, err := h.deps.Repo.LoadAny(name)
	if err != nil {
		return environment.Configured{}, err
	}
	if any == nil {
		return environment.Configured{}, errkind.New(errkind.NotFound, "environment \""+name+"\" does not exist")
	}
	provisioned, err := any.TryIntoProvisioned()
	if err != nil {
		return environment.Configured{}, err
	}

	configuring := provisioned.StartConfiguring()
	if err := h.deps.Repo.SaveConfiguring(configuring); err != nil {
		return environment.Configured{}, err
	}

	base := configuring.Base
	configEngineDir := filepath.Join(base.BuildDir, "config-engine")
	configEngine := adapter.NewConfigEngine(h.deps.Runner, h.deps.ConfigEngineBinary, configEngineDir)

	steps := []step.Named{
		{
			Step:        environment.ConfigureStepInstallContainerRuntime,
			Description: "install container runtime",
			Action: func(actionCtx context.Context) error {
				return configEngine.RunPlaybook(actionCtx, "inventory.ini", "install-container-runtime.yml")
			},
		},
		{
			Step:        environment.ConfigureStepInstallContainerCompose,
			Description: "install container-compose",
			Action: func(actionCtx context.Context) error {
				return configEngine.RunPlaybook(actionCtx, "inventory.ini", "install-container-compose.yml")
			},
		},
	}

	tracker := step.NewTracker(listener)
	failedStep, runErr := tracker.Run(ctx, steps)
	if runErr != nil {
		failure := h.deps.buildFailure(ctx, "configure", name, base.TracesDir, startedAt, failedStep, runErr)
		configureFailed := configuring.ConfigureFailed(failure)
		if saveErr := h.deps.Repo.SaveConfigureFailed(configureFailed); saveErr != nil {
			return environment.Configured{}, errkind.Wrap(errkind.StatePersistence, "persist configure_failed state after: "+runErr.Error(), saveErr)
		}
		return environment.Configured{}, runErr
	}

	configured := configuring.Configured()
	if err := h.deps.Repo.SaveConfigured(configured); err != nil {
		return environment.Configured{}, err
	}

	h.deps.logger().Info(ctx, "environment configured", "environment", name)
	return configured, nil
}
