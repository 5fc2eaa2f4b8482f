package sdk

import (
	"io"
	"time"

	"github.com/torrust/tracker-deploy/internal/adapter"
	"github.com/torrust/tracker-deploy/internal/clock"
	"github.com/torrust/tracker-deploy/internal/command"
	"github.com/torrust/tracker-deploy/internal/logging"
	"github.com/torrust/tracker-deploy/internal/repository"
	"github.com/torrust/tracker-deploy/internal/trace"
)

// Default directory layout, rooted at the current working directory,
// matching the repository layout named throughout the command handlers'
// doc comments and the end-to-end scenario's "a repository at ./data/".
const (
	DefaultDataDir      = "./data"
	DefaultBuildDir     = "./build"
	DefaultTemplatesDir = "./templates"
)

// Builder assembles a Deployer's collaborators one field at a time,
// mirroring the teacher CLI's own main()-level composition of its use
// cases from infrastructure adapters rather than a single opaque
// constructor call. Zero-value fields fall back to sensible defaults in
// Build.
type Builder struct {
	dataDir            string
	buildDir           string
	templatesDir       string
	provisionerBinary  string
	configEngineBinary string
	lockTimeout        time.Duration
	provisionTimeout   time.Duration
	logger             logging.Logger
	clock              clock.Clock
	runnerStdout       io.Writer
	runnerStderr       io.Writer
}

// NewBuilder starts a Builder with every field unset; Build fills in
// defaults for whatever was never set.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithDataDir overrides where environment.json documents and traces are
// persisted. Default: DefaultDataDir.
func (b *Builder) WithDataDir(dir string) *Builder {
	b.dataDir = dir
	return b
}

// WithBuildDir overrides where rendered provisioner/config-engine/release
// artifacts are written. Default: DefaultBuildDir.
func (b *Builder) WithBuildDir(dir string) *Builder {
	b.buildDir = dir
	return b
}

// WithTemplatesDir overrides the root of each environment's recorded
// templates directory, which purge removes. Templates are rendered directly
// from the embedded copy and are not written there. Default:
// DefaultTemplatesDir.
func (b *Builder) WithTemplatesDir(dir string) *Builder {
	b.templatesDir = dir
	return b
}

// WithProvisionerBinary overrides the OpenTofu-compatible binary name.
// Default: "tofu" (applied by adapter.NewProvisioner when left empty).
func (b *Builder) WithProvisionerBinary(binary string) *Builder {
	b.provisionerBinary = binary
	return b
}

// WithConfigEngineBinary overrides the Ansible-compatible binary name.
// Default: "ansible-playbook" (applied by adapter.NewConfigEngine when left
// empty).
func (b *Builder) WithConfigEngineBinary(binary string) *Builder {
	b.configEngineBinary = binary
	return b
}

// WithLockTimeout overrides how long the repository waits to acquire its
// advisory per-environment lock before giving up. Default:
// repository.DefaultLockTimeout.
func (b *Builder) WithLockTimeout(timeout time.Duration) *Builder {
	b.lockTimeout = timeout
	return b
}

// WithProvisionTimeout overrides how long the Provision command may run in
// total, including the bounded SSH-reachability and cloud-init waits named
// in §5. Default: command.DefaultProvisionTimeout.
func (b *Builder) WithProvisionTimeout(timeout time.Duration) *Builder {
	b.provisionTimeout = timeout
	return b
}

// WithLogger overrides the structured logger every handler and adapter
// logs through. Default: a logging.CharmLogger at info level on stdout.
func (b *Builder) WithLogger(logger logging.Logger) *Builder {
	b.logger = logger
	return b
}

// WithClock overrides the time source used for created_at/started_at/trace
// timestamps. Default: clock.SystemClock.
func (b *Builder) WithClock(c clock.Clock) *Builder {
	b.clock = c
	return b
}

// WithRunnerStreams enables live tee-ing of every subprocess's stdout/
// stderr to the given writers, in addition to the captured output used for
// trace files and JSON parsing. Default: capture only, no live streaming.
func (b *Builder) WithRunnerStreams(stdout, stderr io.Writer) *Builder {
	b.runnerStdout = stdout
	b.runnerStderr = stderr
	return b
}

// Build assembles a Deployer from the configured (or defaulted)
// collaborators. It never fails today, but returns an error to leave room
// for future validation (e.g. an unwritable data directory) without
// breaking callers.
func (b *Builder) Build() (*Deployer, error) {
	dataDir := b.dataDir
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	buildDir := b.buildDir
	if buildDir == "" {
		buildDir = DefaultBuildDir
	}
	templatesDir := b.templatesDir
	if templatesDir == "" {
		templatesDir = DefaultTemplatesDir
	}

	logger := b.logger
	if logger == nil {
		charmLogger, err := logging.New(logging.Options{Component: "sdk"})
		if err != nil {
			return nil, err
		}
		logger = charmLogger
	}

	clk := b.clock
	if clk == nil {
		clk = clock.SystemClock{}
	}

	var repo *repository.Repository
	if b.lockTimeout > 0 {
		repo = repository.NewWithLockTimeout(dataDir, b.lockTimeout)
	} else {
		repo = repository.New(dataDir)
	}

	deps := command.Deps{
		Repo:   repository.NewTyped(repo),
		Clock:  clk,
		Logger: logger,
		Tracer: trace.New(logger),
		Paths: command.Paths{
			DataDir:      dataDir,
			BuildDir:     buildDir,
			TemplatesDir: templatesDir,
		},
		Runner:             adapter.Runner{Stdout: b.runnerStdout, Stderr: b.runnerStderr},
		ProvisionerBinary:  b.provisionerBinary,
		ConfigEngineBinary: b.configEngineBinary,
		SSHProbe:           adapter.NewSSHProbe(),
		ProvisionTimeout:   b.provisionTimeout,
	}

	return newDeployer(deps), nil
}
