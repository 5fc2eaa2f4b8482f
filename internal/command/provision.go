package command

import (
	"context"
	"fmt"
	"net"
	"path/filepath"

	"github.com/torrust/tracker-deploy/internal/adapter"
	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/progress"
	"github.com/torrust/tracker-deploy/internal/step"
	"github.com/torrust/tracker-deploy/internal/templating"
)

// ProvisionHandler implements the Provision command (§4.2.2): nine
// ordered steps that render the provisioner project, apply it, and
// hand off to the configuration engine once the instance is reachable.
type ProvisionHandler struct {
	deps Deps
}

// NewProvisionHandler constructs a ProvisionHandler.
func NewProvisionHandler(deps Deps) ProvisionHandler {
	return ProvisionHandler{deps: deps}
}

// Execute provisions the named environment's remote infrastructure. It
// requires the environment to be in the Created state.
func (h ProvisionHandler) Execute(ctx context.Context, name string, listener progress.Listener) (environment.Provisioned, error) {
	ctx, cancel := context.WithTimeout(ctx, h.deps.provisionTimeout())
	defer cancel()

	startedAt := h.deps.clockNow()

	any, err := h.deps.Repo.LoadAny(name)
	if err != nil {
		return environment.Provisioned{}, err
	}
	if any == nil {
		return environment.Provisioned{}, errkind.New(errkind.NotFound, "environment \""+name+"\" does not exist")
	}
	created, err := any.TryIntoCreated()
	if err != nil {
		return environment.Provisioned{}, err
	}

	listener = progress.OrNoOp(listener)

	provisioning := created.StartProvisioning()
	if err := h.deps.Repo.SaveProvisioning(provisioning); err != nil {
		return environment.Provisioned{}, err
	}

	base := provisioning.Base
	inputs := base.UserInputs
	method := inputs.Provider.Method

	projectDir := filepath.Join(base.BuildDir, "tofu", string(method))
	configEngineDir := filepath.Join(base.BuildDir, "config-engine")
	provisioner := adapter.NewProvisioner(h.deps.Runner, h.deps.ProvisionerBinary, projectDir)
	configEngine := adapter.NewConfigEngine(h.deps.Runner, h.deps.ConfigEngineBinary, configEngineDir)

	var instanceIP net.IP

	steps := []step.Named{
		{
			Step:        environment.ProvisionStepRenderProvisionerTemplates,
			Description: "render provisioner templates",
			Action: func(context.Context) error {
				gen, err := templating.ProvisionerGenerator(method)
				if err != nil {
					return err
				}
				_, err = gen.Render(projectDir, templating.NewProvisionerContext(inputs, startedAt))
				return err
			},
		},
		{
			Step:        environment.ProvisionStepInitProvisioner,
			Description: "initialize provisioner",
			Action:      provisioner.Init,
		},
		{
			Step:        environment.ProvisionStepValidateProvisioner,
			Description: "validate provisioner configuration",
			Action:      provisioner.Validate,
		},
		{
			Step:        environment.ProvisionStepPlan,
			Description: "plan infrastructure changes",
			Action:      provisioner.Plan,
		},
		{
			Step:        environment.ProvisionStepApply,
			Description: "apply infrastructure changes",
			Action:      provisioner.Apply,
		},
		{
			Step:        environment.ProvisionStepFetchInstanceInfo,
			Description: "fetch instance info",
			Action: func(actionCtx context.Context) error {
				outputs, err := provisioner.Outputs(actionCtx)
				if err != nil {
					return err
				}
				output, ok := outputs["instance_ip"]
				if !ok {
					return errkind.New(errkind.CommandExecution, "provisioner output \"instance_ip\" was not produced")
				}
				raw := fmt.Sprintf("%v", output.Value)
				ip := net.ParseIP(raw)
				if ip == nil {
					return errkind.New(errkind.CommandExecution, "provisioner output \"instance_ip\" value \""+raw+"\" is not a valid IP address")
				}
				instanceIP = ip
				listener.OnDetail("instance ip: " + ip.String())
				return nil
			},
		},
		{
			Step:        environment.ProvisionStepRenderConfigTemplates,
			Description: "render configuration-engine templates",
			Action: func(context.Context) error {
				gen := templating.ConfigEngineGenerator()
				_, err := gen.Render(configEngineDir, templating.NewConfigEngineContext(inputs, instanceIP.String(), startedAt))
				return err
			},
		},
		{
			Step:        environment.ProvisionStepWaitSSH,
			Description: "wait for SSH reachability",
			Action: func(actionCtx context.Context) error {
				return h.deps.SSHProbe.WaitReachable(actionCtx, instanceIP.String(), inputs.SSHCredentials.Port,
					inputs.SSHCredentials.Username.String(), inputs.SSHCredentials.PrivateKeyPath)
			},
		},
		{
			Step:        environment.ProvisionStepWaitCloudInit,
			Description: "wait for cloud-init completion",
			Action: func(actionCtx context.Context) error {
				return configEngine.RunPlaybook(actionCtx, "inventory.ini", "wait-cloud-init.yml")
			},
		},
	}

	tracker := step.NewTracker(listener)
	failedStep, runErr := tracker.Run(ctx, steps)
	if runErr != nil {
		failure := h.deps.buildFailure(ctx, "provision", name, base.TracesDir, startedAt, failedStep, runErr)
		provisionFailed := provisioning.ProvisionFailed(failure)
		if saveErr := h.deps.Repo.SaveProvisionFailed(provisionFailed); saveErr != nil {
			return environment.Provisioned{}, errkind.Wrap(errkind.StatePersistence, "persist provision_failed state after: "+runErr.Error(), saveErr)
		}
		return environment.Provisioned{}, runErr
	}

	provisioned := provisioning.Provisioned(instanceIP, method)
	if err := h.deps.Repo.SaveProvisioned(provisioned); err != nil {
		return environment.Provisioned{}, err
	}

	h.deps.logger().Info(ctx, "environment provisioned", "environment", name, "instance_ip", instanceIP.String())
	return provisioned, nil
}
