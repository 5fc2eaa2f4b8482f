package command

import (
	"time"

	"github.com/torrust/tracker-deploy/internal/adapter"
	"github.com/torrust/tracker-deploy/internal/clock"
	"github.com/torrust/tracker-deploy/internal/logging"
	"github.com/torrust/tracker-deploy/internal/repository"
	"github.com/torrust/tracker-deploy/internal/trace"
)

// DefaultProvisionTimeout bounds the entire Provision command, including the
// two steps named in §5 ("SSH wait and cloud-init wait use bounded
// timeouts"): waiting for SSH reachability and waiting for cloud-init to
// report completion. An unreachable instance fails with a classified
// Timeout error instead of hanging the command forever.
const DefaultProvisionTimeout = 15 * time.Minute

// Deps bundles every collaborator a command handler needs: persistence,
// timing, logging, trace writing, and the directory layout new
// environments are created under. One Deps is shared by every handler
// constructed for a given Deployer instance.
type Deps struct {
	Repo   *repository.Typed
	Clock  clock.Clock
	Logger logging.Logger
	Tracer *trace.Writer
	Paths  Paths

	// Runner is shared across every adapter this Deps constructs; its
	// Stdout/Stderr, if set, receive a live tee of subprocess output.
	Runner adapter.Runner

	// ProvisionerBinary and ConfigEngineBinary name the external tools
	// invoked by Provision, Configure, and Release. Empty defaults to
	// "tofu" and "ansible-playbook" respectively (see adapter.NewProvisioner,
	// adapter.NewConfigEngine).
	ProvisionerBinary  string
	ConfigEngineBinary string

	// SSHProbe waits for the provisioned instance to accept SSH
	// connections before Provision hands off to the configuration engine.
	SSHProbe adapter.SSHProbe

	// ProvisionTimeout bounds the Provision command. Zero defaults to
	// DefaultProvisionTimeout.
	ProvisionTimeout time.Duration
}

func (d Deps) provisionTimeout() time.Duration {
	if d.ProvisionTimeout <= 0 {
		return DefaultProvisionTimeout
	}
	return d.ProvisionTimeout
}

func (d Deps) logger() logging.Logger {
	if d.Logger == nil {
		return logging.NewNoOpLogger()
	}
	return d.Logger
}

func (d Deps) tracer() *trace.Writer {
	if d.Tracer == nil {
		return trace.New(d.logger())
	}
	return d.Tracer
}

// remoteExecFor constructs a RemoteExec bound to an environment's
// provisioned instance, using its configured SSH credentials. Every
// handler that talks to the remote instance over SSH goes through this
// one constructor.
func (d Deps) remoteExecFor(ip string, port int, username, privateKeyPath string) adapter.RemoteExec {
	return adapter.NewRemoteExec(ip, port, username, privateKeyPath)
}
