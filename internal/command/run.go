package command

import (
	"context"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
)

// RunHandler implements the Run command (§4.2.5): starting the already
// deployed compose stack on the remote instance.
type RunHandler struct {
	deps Deps
}

// NewRunHandler constructs a RunHandler.
func NewRunHandler(deps Deps) RunHandler {
	return RunHandler{deps: deps}
}

// Execute starts the named environment's compose stack remotely. It
// requires the environment to be Released, yielding Running on success.
func (h RunHandler) Execute(ctx context.Context, name string) (environment.Running, error) {
	startedAt := h.deps.clockNow()

	any, err := h.deps.Repo.LoadAny(name)
	if err != nil {
		return environment.Running{}, err
	}
	if any == nil {
		return environment.Running{}, errkind.New(errkind.NotFound, "environment \""+name+"\" does not exist")
	}

	released, convErr := any.TryIntoReleased()
	if convErr != nil {
		return environment.Running{}, convErr
	}

	base := released.Base
	inputs := base.UserInputs
	remote := h.deps.remoteExecFor(released.InstanceIP.String(), inputs.SSHCredentials.Port,
		inputs.SSHCredentials.Username.String(), inputs.SSHCredentials.PrivateKeyPath)

	if _, err := remote.ComposeUp(remoteBase); err != nil {
		failure := h.deps.buildFailure(ctx, "run", name, base.TracesDir, startedAt, environment.RunStepStartComposeStack, err)
		runFailed := released.RunFailed(failure)
		if saveErr := h.deps.Repo.SaveRunFailed(runFailed); saveErr != nil {
			return environment.Running{}, errkind.Wrap(errkind.StatePersistence, "persist run_failed state after: "+err.Error(), saveErr)
		}
		return environment.Running{}, err
	}

	running := released.StartRunning()
	if err := h.deps.Repo.SaveRunning(running); err != nil {
		return environment.Running{}, err
	}

	h.deps.logger().Info(ctx, "environment running", "environment", name)
	return running, nil
}
