package environment

import (
	"net"

	"github.com/torrust/tracker-deploy/internal/userinput"
)

// Created is the state an environment is constructed into by the Create
// command. No external side effects besides its own directory exist yet.
type Created struct{ Base }

// StartProvisioning begins a Provision command (§4.2.2).
func (c Created) StartProvisioning() Provisioning { return Provisioning{Base: c.Base} }

// StartDestroying begins a Destroy command from a state that never reached
// Provisioned: there is no remote infrastructure and no known IP.
func (c Created) StartDestroying() Destroying { return Destroying{Base: c.Base} }

// Provisioning is the in-flight state of a Provision command.
type Provisioning struct{ Base }

// Provisioned completes a successful Provision command.
func (p Provisioning) Provisioned(ip net.IP, method userinput.ProvisionMethod) Provisioned {
	return Provisioned{Base: p.Base, InstanceInfo: InstanceInfo{InstanceIP: ip, Method: method}}
}

// ProvisionFailed records a failed Provision command.
func (p Provisioning) ProvisionFailed(ctx FailureContext) ProvisionFailed {
	return ProvisionFailed{Base: p.Base, Failure: ctx}
}

// ProvisionFailed is the substate a failed Provision command leaves the
// environment in. Operators may retry Provision from here, or destroy.
type ProvisionFailed struct {
	Base
	Failure FailureContext
}

// StartDestroying begins a Destroy command. No instance IP is known: the
// Provision command failed before or during infrastructure apply.
func (p ProvisionFailed) StartDestroying() Destroying { return Destroying{Base: p.Base} }

// Provisioned is reached once infrastructure exists and its IP is known
// (invariant I1 begins holding from here onward).
type Provisioned struct {
	Base
	InstanceInfo
}

// StartConfiguring begins a Configure command (§4.2.3).
func (p Provisioned) StartConfiguring() Configuring {
	return Configuring{Base: p.Base, InstanceInfo: p.InstanceInfo}
}

// StartDestroying begins a Destroy command with known infrastructure.
func (p Provisioned) StartDestroying() Destroying {
	return Destroying{Base: p.Base, InstanceInfo: &p.InstanceInfo}
}

// Configuring is the in-flight state of a Configure command.
type Configuring struct {
	Base
	InstanceInfo
}

// Configured completes a successful Configure command.
func (c Configuring) Configured() Configured {
	return Configured{Base: c.Base, InstanceInfo: c.InstanceInfo}
}

// ConfigureFailed records a failed Configure command.
func (c Configuring) ConfigureFailed(ctx FailureContext) ConfigureFailed {
	return ConfigureFailed{Base: c.Base, InstanceInfo: c.InstanceInfo, Failure: ctx}
}

// ConfigureFailed is the substate a failed Configure command leaves the
// environment in.
type ConfigureFailed struct {
	Base
	InstanceInfo
	Failure FailureContext
}

// StartDestroying begins a Destroy command.
func (c ConfigureFailed) StartDestroying() Destroying {
	return Destroying{Base: c.Base, InstanceInfo: &c.InstanceInfo}
}

// Configured is reached once the container runtime and compose tooling are
// installed on the remote host.
type Configured struct {
	Base
	InstanceInfo
}

// StartReleasing begins a Release command (§4.2.4).
func (c Configured) StartReleasing() Releasing {
	return Releasing{Base: c.Base, InstanceInfo: c.InstanceInfo}
}

// StartDestroying begins a Destroy command.
func (c Configured) StartDestroying() Destroying {
	return Destroying{Base: c.Base, InstanceInfo: &c.InstanceInfo}
}

// Releasing is the in-flight state of a Release command.
type Releasing struct {
	Base
	InstanceInfo
}

// Released completes a successful Release command.
func (r Releasing) Released() Released {
	return Released{Base: r.Base, InstanceInfo: r.InstanceInfo}
}

// ReleaseFailed records a failed Release command.
func (r Releasing) ReleaseFailed(ctx FailureContext) ReleaseFailed {
	return ReleaseFailed{Base: r.Base, InstanceInfo: r.InstanceInfo, Failure: ctx}
}

// ReleaseFailed is the substate a failed Release command leaves the
// environment in.
type ReleaseFailed struct {
	Base
	InstanceInfo
	Failure FailureContext
}

// StartDestroying begins a Destroy command.
func (r ReleaseFailed) StartDestroying() Destroying {
	return Destroying{Base: r.Base, InstanceInfo: &r.InstanceInfo}
}

// Released is reached once rendered artifacts are copied to the remote
// host, before the stack is started.
type Released struct {
	Base
	InstanceInfo
}

// StartRunning begins a Run command (§4.2.5).
func (r Released) StartRunning() Running {
	return Running{Base: r.Base, InstanceInfo: r.InstanceInfo}
}

// RunFailed records a failed Run command attempted directly from Released.
func (r Released) RunFailed(ctx FailureContext) RunFailed {
	return RunFailed{Base: r.Base, InstanceInfo: r.InstanceInfo, Failure: ctx}
}

// StartDestroying begins a Destroy command.
func (r Released) StartDestroying() Destroying {
	return Destroying{Base: r.Base, InstanceInfo: &r.InstanceInfo}
}

// Running is reached once the compose stack has been started remotely.
type Running struct {
	Base
	InstanceInfo
}

// RunFailed records a failure discovered while already Running (e.g. a
// subsequent Run invocation that fails to restart the stack).
func (r Running) RunFailed(ctx FailureContext) RunFailed {
	return RunFailed{Base: r.Base, InstanceInfo: r.InstanceInfo, Failure: ctx}
}

// StartDestroying begins a Destroy command.
func (r Running) StartDestroying() Destroying {
	return Destroying{Base: r.Base, InstanceInfo: &r.InstanceInfo}
}

// RunFailed is the substate a failed Run command leaves the environment in.
type RunFailed struct {
	Base
	InstanceInfo
	Failure FailureContext
}

// StartDestroying begins a Destroy command.
func (r RunFailed) StartDestroying() Destroying {
	return Destroying{Base: r.Base, InstanceInfo: &r.InstanceInfo}
}

// Destroying is the in-flight state of a Destroy command. InstanceInfo is
// nil when no infrastructure was ever provisioned.
type Destroying struct {
	Base
	InstanceInfo *InstanceInfo
}

// Destroyed completes a successful Destroy command.
func (d Destroying) Destroyed() Destroyed {
	return Destroyed{Base: d.Base, InstanceInfo: d.InstanceInfo}
}

// DestroyFailed records a failed Destroy command.
func (d Destroying) DestroyFailed(ctx FailureContext) DestroyFailed {
	return DestroyFailed{Base: d.Base, InstanceInfo: d.InstanceInfo, Failure: ctx}
}

// Destroyed is the terminal state of a successful Destroy command. The
// environment document is retained until Purge removes it.
type Destroyed struct {
	Base
	InstanceInfo *InstanceInfo
}

// DestroyFailed is the substate a failed Destroy command leaves the
// environment in. Operators may retry Destroy.
type DestroyFailed struct {
	Base
	InstanceInfo *InstanceInfo
	Failure      FailureContext
}

// StartDestroying retries a Destroy command.
func (d DestroyFailed) StartDestroying() Destroying {
	return Destroying{Base: d.Base, InstanceInfo: d.InstanceInfo}
}
