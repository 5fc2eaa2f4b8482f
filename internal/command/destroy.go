package command

import (
	"context"
	"os"
	"path/filepath"

	"github.com/torrust/tracker-deploy/internal/adapter"
	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/progress"
	"github.com/torrust/tracker-deploy/internal/step"
)

// DestroyHandler implements the Destroy command (§4.2.5): tearing down
// provider infrastructure from any settled or failed state, with an
// emergency path that removes local state files once the teardown succeeds.
type DestroyHandler struct {
	deps Deps
}

// NewDestroyHandler constructs a DestroyHandler.
func NewDestroyHandler(deps Deps) DestroyHandler {
	return DestroyHandler{deps: deps}
}

// Execute tears down the named environment's infrastructure. It accepts
// Created, Provisioned, Configured, Released, Running, the failed states
// ProvisionFailed, ConfigureFailed, ReleaseFailed and RunFailed, and a
// retry from DestroyFailed. Every other state (the in-flight Provisioning,
// Configuring, Releasing and Destroying, and Destroyed) is rejected with a
// Validation error.
func (h DestroyHandler) Execute(ctx context.Context, name string, listener progress.Listener) (environment.Destroyed, error) {
	startedAt := h.deps.clockNow()
	listener = progress.OrNoOp(listener)

	any, err := h.deps.Repo.LoadAny(name)
	if err != nil {
		return environment.Destroyed{}, err
	}
	if any == nil {
		return environment.Destroyed{}, errkind.New(errkind.NotFound, "environment \""+name+"\" does not exist")
	}

	destroying, err := h.startDestroying(*any)
	if err != nil {
		return environment.Destroyed{}, err
	}
	if err := h.deps.Repo.SaveDestroying(destroying); err != nil {
		return environment.Destroyed{}, err
	}

	base := destroying.Base

	var projectDir string
	if destroying.InstanceInfo != nil {
		projectDir = filepath.Join(base.BuildDir, "tofu", string(destroying.InstanceInfo.Method))
	}

	steps := []step.Named{
		{
			Step:        environment.DestroyStepDestroyInfrastructure,
			Description: "destroy infrastructure",
			Action: func(actionCtx context.Context) error {
				if projectDir == "" {
					return nil
				}
				provisioner := adapter.NewProvisioner(h.deps.Runner, h.deps.ProvisionerBinary, projectDir)
				return provisioner.Destroy(actionCtx)
			},
		},
		{
			Step:        environment.DestroyStepRemoveLocalState,
			Description: "remove local state",
			Action: func(context.Context) error {
				// Emergency path: once the provider confirms teardown, the
				// local tofu state file is no longer authoritative and is
				// removed so a future Provision starts from a clean project.
				if projectDir == "" {
					return nil
				}
				statePath := filepath.Join(projectDir, "terraform.tfstate")
				if err := os.Remove(statePath); err != nil && !os.IsNotExist(err) {
					return errkind.Wrap(errkind.Internal, "failed to remove local state file "+statePath, err)
				}
				return nil
			},
		},
	}

	tracker := step.NewTracker(listener)
	failedStep, runErr := tracker.Run(ctx, steps)
	if runErr != nil {
		failure := h.deps.buildFailure(ctx, "destroy", name, base.TracesDir, startedAt, failedStep, runErr)
		destroyFailed := destroying.DestroyFailed(failure)
		if saveErr := h.deps.Repo.SaveDestroyFailed(destroyFailed); saveErr != nil {
			return environment.Destroyed{}, errkind.Wrap(errkind.StatePersistence, "persist destroy_failed state after: "+runErr.Error(), saveErr)
		}
		return environment.Destroyed{}, runErr
	}

	destroyed := destroying.Destroyed()
	if err := h.deps.Repo.SaveDestroyed(destroyed); err != nil {
		return environment.Destroyed{}, err
	}

	h.deps.logger().Info(ctx, "environment destroyed", "environment", name)
	return destroyed, nil
}

// startDestroying dispatches on the persisted state tag to the matching
// StartDestroying transition. Each lifecycle state knows its own path into
// Destroying; this is the one place that must recognize all of them.
func (h DestroyHandler) startDestroying(any environment.AnyEnvironmentState) (environment.Destroying, error) {
	switch any.State {
	case environment.StateCreated:
		s, err := any.TryIntoCreated()
		if err != nil {
			return environment.Destroying{}, err
		}
		return s.StartDestroying(), nil
	case environment.StateProvisionFailed:
		s, err := any.TryIntoProvisionFailed()
		if err != nil {
			return environment.Destroying{}, err
		}
		return s.StartDestroying(), nil
	case environment.StateProvisioned:
		s, err := any.TryIntoProvisioned()
		if err != nil {
			return environment.Destroying{}, err
		}
		return s.StartDestroying(), nil
	case environment.StateConfigureFailed:
		s, err := any.TryIntoConfigureFailed()
		if err != nil {
			return environment.Destroying{}, err
		}
		return s.StartDestroying(), nil
	case environment.StateConfigured:
		s, err := any.TryIntoConfigured()
		if err != nil {
			return environment.Destroying{}, err
		}
		return s.StartDestroying(), nil
	case environment.StateReleaseFailed:
		s, err := any.TryIntoReleaseFailed()
		if err != nil {
			return environment.Destroying{}, err
		}
		return s.StartDestroying(), nil
	case environment.StateReleased:
		s, err := any.TryIntoReleased()
		if err != nil {
			return environment.Destroying{}, err
		}
		return s.StartDestroying(), nil
	case environment.StateRunFailed:
		s, err := any.TryIntoRunFailed()
		if err != nil {
			return environment.Destroying{}, err
		}
		return s.StartDestroying(), nil
	case environment.StateRunning:
		s, err := any.TryIntoRunning()
		if err != nil {
			return environment.Destroying{}, err
		}
		return s.StartDestroying(), nil
	case environment.StateDestroyFailed:
		s, err := any.TryIntoDestroyFailed()
		if err != nil {
			return environment.Destroying{}, err
		}
		return s.StartDestroying(), nil
	default:
		return environment.Destroying{}, errkind.New(errkind.Validation,
			"environment is in state \""+string(any.State)+"\" and has nothing left to destroy")
	}
}
