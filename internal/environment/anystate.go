package environment

import (
	"net"
	"time"

	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/ident"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// State is the closed set of lifecycle phase tags persisted in the
// "state" field of environment.json.
type State string

const (
	StateCreated         State = "created"
	StateProvisioning    State = "provisioning"
	StateProvisioned     State = "provisioned"
	StateProvisionFailed State = "provision_failed"
	StateConfiguring     State = "configuring"
	StateConfigured      State = "configured"
	StateConfigureFailed State = "configure_failed"
	StateReleasing       State = "releasing"
	StateReleased        State = "released"
	StateReleaseFailed   State = "release_failed"
	StateRunning         State = "running"
	StateRunFailed       State = "run_failed"
	StateDestroying      State = "destroying"
	StateDestroyed       State = "destroyed"
	StateDestroyFailed   State = "destroy_failed"
)

// wireFailure is the JSON shape of a FailureContext, embedded flat into
// AnyEnvironmentState.
type wireFailure struct {
	StartedAt     time.Time     `json:"started_at"`
	FailedAt      time.Time     `json:"failed_at"`
	Duration      time.Duration `json:"duration"`
	ErrorSummary  string        `json:"error_summary"`
	TraceFilePath string        `json:"trace_file_path,omitempty"`
	FailedStep    string        `json:"failed_step"`
	ErrorKind     errkind.Kind  `json:"error_kind"`
}

func toWireFailure(f FailureContext) wireFailure {
	return wireFailure{
		StartedAt:     f.StartedAt,
		FailedAt:      f.FailedAt,
		Duration:      f.Duration,
		ErrorSummary:  f.ErrorSummary,
		TraceFilePath: f.TraceFilePath,
		FailedStep:    f.FailedStep,
		ErrorKind:     f.ErrorKind,
	}
}

func (w wireFailure) toFailureContext() FailureContext {
	return FailureContext{
		StartedAt:     w.StartedAt,
		FailedAt:      w.FailedAt,
		Duration:      w.Duration,
		ErrorSummary:  w.ErrorSummary,
		TraceFilePath: w.TraceFilePath,
		FailedStep:    w.FailedStep,
		ErrorKind:     w.ErrorKind,
	}
}

// AnyEnvironmentState is the closed sum over every lifecycle state, and the
// JSON wire format persisted as environment.json: one flat document tagged
// by "state", carrying every field any state might need. Deserialization
// from disk always funnels through this type; callers then narrow to the
// concrete state they expect via the TryInto* accessors, which return a
// WrongStateError when the document holds a different variant.
type AnyEnvironmentState struct {
	State        State                     `json:"state"`
	Name         ident.EnvironmentName     `json:"name"`
	InstanceName ident.InstanceName        `json:"instance_name"`
	UserInputs   userinput.UserInputs      `json:"user_inputs"`
	CreatedAt    time.Time                 `json:"created_at"`
	BuildDir     string                    `json:"build_dir"`
	DataDir      string                    `json:"data_dir"`
	TemplatesDir string                    `json:"templates_dir"`
	TracesDir    string                    `json:"traces_dir"`
	InstanceIP   net.IP                    `json:"instance_ip,omitempty"`
	Method       userinput.ProvisionMethod `json:"provision_method,omitempty"`
	Failure      *wireFailure              `json:"failure,omitempty"`
}

func baseOf(b Base) AnyEnvironmentState {
	return AnyEnvironmentState{
		Name:         b.Name,
		InstanceName: b.InstanceName,
		UserInputs:   b.UserInputs,
		CreatedAt:    b.CreatedAt,
		BuildDir:     b.BuildDir,
		DataDir:      b.DataDir,
		TemplatesDir: b.TemplatesDir,
		TracesDir:    b.TracesDir,
	}
}

func (a AnyEnvironmentState) toBase() Base {
	return Base{
		Name:         a.Name,
		InstanceName: a.InstanceName,
		UserInputs:   a.UserInputs,
		CreatedAt:    a.CreatedAt,
		BuildDir:     a.BuildDir,
		DataDir:      a.DataDir,
		TemplatesDir: a.TemplatesDir,
		TracesDir:    a.TracesDir,
	}
}

func wrongState(expected State, actual State) error {
	return &errkind.WrongStateError{Expected: string(expected), Actual: string(actual)}
}

// ToAny converts any concrete lifecycle state into its wire representation.
// One overload per state, named after the state for call-site clarity.

func CreatedToAny(c Created) AnyEnvironmentState {
	any := baseOf(c.Base)
	any.State = StateCreated
	return any
}

func ProvisioningToAny(p Provisioning) AnyEnvironmentState {
	any := baseOf(p.Base)
	any.State = StateProvisioning
	return any
}

func ProvisionedToAny(p Provisioned) AnyEnvironmentState {
	any := baseOf(p.Base)
	any.State = StateProvisioned
	any.InstanceIP = p.InstanceIP
	any.Method = p.Method
	return any
}

func ProvisionFailedToAny(p ProvisionFailed) AnyEnvironmentState {
	any := baseOf(p.Base)
	any.State = StateProvisionFailed
	f := toWireFailure(p.Failure)
	any.Failure = &f
	return any
}

func ConfiguringToAny(c Configuring) AnyEnvironmentState {
	any := baseOf(c.Base)
	any.State = StateConfiguring
	any.InstanceIP = c.InstanceIP
	any.Method = c.Method
	return any
}

func ConfiguredToAny(c Configured) AnyEnvironmentState {
	any := baseOf(c.Base)
	any.State = StateConfigured
	any.InstanceIP = c.InstanceIP
	any.Method = c.Method
	return any
}

func ConfigureFailedToAny(c ConfigureFailed) AnyEnvironmentState {
	any := baseOf(c.Base)
	any.State = StateConfigureFailed
	any.InstanceIP = c.InstanceIP
	any.Method = c.Method
	f := toWireFailure(c.Failure)
	any.Failure = &f
	return any
}

func ReleasingToAny(r Releasing) AnyEnvironmentState {
	any := baseOf(r.Base)
	any.State = StateReleasing
	any.InstanceIP = r.InstanceIP
	any.Method = r.Method
	return any
}

func ReleasedToAny(r Released) AnyEnvironmentState {
	any := baseOf(r.Base)
	any.State = StateReleased
	any.InstanceIP = r.InstanceIP
	any.Method = r.Method
	return any
}

func ReleaseFailedToAny(r ReleaseFailed) AnyEnvironmentState {
	any := baseOf(r.Base)
	any.State = StateReleaseFailed
	any.InstanceIP = r.InstanceIP
	any.Method = r.Method
	f := toWireFailure(r.Failure)
	any.Failure = &f
	return any
}

func RunningToAny(r Running) AnyEnvironmentState {
	any := baseOf(r.Base)
	any.State = StateRunning
	any.InstanceIP = r.InstanceIP
	any.Method = r.Method
	return any
}

func RunFailedToAny(r RunFailed) AnyEnvironmentState {
	any := baseOf(r.Base)
	any.State = StateRunFailed
	any.InstanceIP = r.InstanceIP
	any.Method = r.Method
	f := toWireFailure(r.Failure)
	any.Failure = &f
	return any
}

func DestroyingToAny(d Destroying) AnyEnvironmentState {
	any := baseOf(d.Base)
	any.State = StateDestroying
	if d.InstanceInfo != nil {
		any.InstanceIP = d.InstanceInfo.InstanceIP
		any.Method = d.InstanceInfo.Method
	}
	return any
}

func DestroyedToAny(d Destroyed) AnyEnvironmentState {
	any := baseOf(d.Base)
	any.State = StateDestroyed
	if d.InstanceInfo != nil {
		any.InstanceIP = d.InstanceInfo.InstanceIP
		any.Method = d.InstanceInfo.Method
	}
	return any
}

func DestroyFailedToAny(d DestroyFailed) AnyEnvironmentState {
	any := baseOf(d.Base)
	any.State = StateDestroyFailed
	if d.InstanceInfo != nil {
		any.InstanceIP = d.InstanceInfo.InstanceIP
		any.Method = d.InstanceInfo.Method
	}
	f := toWireFailure(d.Failure)
	any.Failure = &f
	return any
}

// TryIntoCreated narrows to Created, or returns a WrongStateError.
func (a AnyEnvironmentState) TryIntoCreated() (Created, error) {
	if a.State != StateCreated {
		return Created{}, wrongState(StateCreated, a.State)
	}
	return Created{Base: a.toBase()}, nil
}

func (a AnyEnvironmentState) TryIntoProvisioning() (Provisioning, error) {
	if a.State != StateProvisioning {
		return Provisioning{}, wrongState(StateProvisioning, a.State)
	}
	return Provisioning{Base: a.toBase()}, nil
}

func (a AnyEnvironmentState) TryIntoProvisioned() (Provisioned, error) {
	if a.State != StateProvisioned {
		return Provisioned{}, wrongState(StateProvisioned, a.State)
	}
	return Provisioned{Base: a.toBase(), InstanceInfo: InstanceInfo{InstanceIP: a.InstanceIP, Method: a.Method}}, nil
}

func (a AnyEnvironmentState) TryIntoProvisionFailed() (ProvisionFailed, error) {
	if a.State != StateProvisionFailed {
		return ProvisionFailed{}, wrongState(StateProvisionFailed, a.State)
	}
	return ProvisionFailed{Base: a.toBase(), Failure: a.Failure.toFailureContext()}, nil
}

func (a AnyEnvironmentState) TryIntoConfiguring() (Configuring, error) {
	if a.State != StateConfiguring {
		return Configuring{}, wrongState(StateConfiguring, a.State)
	}
	return Configuring{Base: a.toBase(), InstanceInfo: InstanceInfo{InstanceIP: a.InstanceIP, Method: a.Method}}, nil
}

func (a AnyEnvironmentState) TryIntoConfigured() (Configured, error) {
	if a.State != StateConfigured {
		return Configured{}, wrongState(StateConfigured, a.State)
	}
	return Configured{Base: a.toBase(), InstanceInfo: InstanceInfo{InstanceIP: a.InstanceIP, Method: a.Method}}, nil
}

func (a AnyEnvironmentState) TryIntoConfigureFailed() (ConfigureFailed, error) {
	if a.State != StateConfigureFailed {
		return ConfigureFailed{}, wrongState(StateConfigureFailed, a.State)
	}
	return ConfigureFailed{Base: a.toBase(), InstanceInfo: InstanceInfo{InstanceIP: a.InstanceIP, Method: a.Method}, Failure: a.Failure.toFailureContext()}, nil
}

func (a AnyEnvironmentState) TryIntoReleasing() (Releasing, error) {
	if a.State != StateReleasing {
		return Releasing{}, wrongState(StateReleasing, a.State)
	}
	return Releasing{Base: a.toBase(), InstanceInfo: InstanceInfo{InstanceIP: a.InstanceIP, Method: a.Method}}, nil
}

func (a AnyEnvironmentState) TryIntoReleased() (Released, error) {
	if a.State != StateReleased {
		return Released{}, wrongState(StateReleased, a.State)
	}
	return Released{Base: a.toBase(), InstanceInfo: InstanceInfo{InstanceIP: a.InstanceIP, Method: a.Method}}, nil
}

func (a AnyEnvironmentState) TryIntoReleaseFailed() (ReleaseFailed, error) {
	if a.State != StateReleaseFailed {
		return ReleaseFailed{}, wrongState(StateReleaseFailed, a.State)
	}
	return ReleaseFailed{Base: a.toBase(), InstanceInfo: InstanceInfo{InstanceIP: a.InstanceIP, Method: a.Method}, Failure: a.Failure.toFailureContext()}, nil
}

func (a AnyEnvironmentState) TryIntoRunning() (Running, error) {
	if a.State != StateRunning {
		return Running{}, wrongState(StateRunning, a.State)
	}
	return Running{Base: a.toBase(), InstanceInfo: InstanceInfo{InstanceIP: a.InstanceIP, Method: a.Method}}, nil
}

func (a AnyEnvironmentState) TryIntoRunFailed() (RunFailed, error) {
	if a.State != StateRunFailed {
		return RunFailed{}, wrongState(StateRunFailed, a.State)
	}
	return RunFailed{Base: a.toBase(), InstanceInfo: InstanceInfo{InstanceIP: a.InstanceIP, Method: a.Method}, Failure: a.Failure.toFailureContext()}, nil
}

func (a AnyEnvironmentState) TryIntoDestroying() (Destroying, error) {
	if a.State != StateDestroying {
		return Destroying{}, wrongState(StateDestroying, a.State)
	}
	return Destroying{Base: a.toBase(), InstanceInfo: a.instanceInfoOrNil()}, nil
}

func (a AnyEnvironmentState) TryIntoDestroyed() (Destroyed, error) {
	if a.State != StateDestroyed {
		return Destroyed{}, wrongState(StateDestroyed, a.State)
	}
	return Destroyed{Base: a.toBase(), InstanceInfo: a.instanceInfoOrNil()}, nil
}

func (a AnyEnvironmentState) TryIntoDestroyFailed() (DestroyFailed, error) {
	if a.State != StateDestroyFailed {
		return DestroyFailed{}, wrongState(StateDestroyFailed, a.State)
	}
	return DestroyFailed{Base: a.toBase(), InstanceInfo: a.instanceInfoOrNil(), Failure: a.Failure.toFailureContext()}, nil
}

func (a AnyEnvironmentState) instanceInfoOrNil() *InstanceInfo {
	if a.InstanceIP == nil {
		return nil
	}
	return &InstanceInfo{InstanceIP: a.InstanceIP, Method: a.Method}
}

