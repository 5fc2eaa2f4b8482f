package command

import (
	"context"
	"path"
	"path/filepath"
	"time"

	"github.com/torrust/tracker-deploy/internal/adapter"
	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/progress"
	"github.com/torrust/tracker-deploy/internal/step"
	"github.com/torrust/tracker-deploy/internal/templating"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// remoteBase is the directory on the provisioned instance every release
// artifact is rooted under.
const remoteBase = "/opt/tracker-deploy"

// ReleaseHandler implements the Release command (§4.2.4): a fixed-order
// sequence of gated substeps, each a pure predicate on UserInputs, that
// renders and deploys every artifact the configured stack needs.
type ReleaseHandler struct {
	deps Deps
}

// NewReleaseHandler constructs a ReleaseHandler.
func NewReleaseHandler(deps Deps) ReleaseHandler {
	return ReleaseHandler{deps: deps}
}

// Execute renders and deploys the named environment's release artifacts.
// It requires the environment to be Configured.
func (h ReleaseHandler) Execute(ctx context.Context, name string, listener progress.Listener) (environment.Released, error) {
	startedAt := h.deps.clockNow()
	listener = progress.OrNoOp(listener)

	any, err := h.deps.Repo.LoadAny(name)
	if err != nil {
		return environment.Released{}, err
	}
	if any == nil {
		return environment.Released{}, errkind.New(errkind.NotFound, "environment \""+name+"\" does not exist")
	}
	configured, err := any.TryIntoConfigured()
	if err != nil {
		return environment.Released{}, err
	}

	releasing := configured.StartReleasing()
	if err := h.deps.Repo.SaveReleasing(releasing); err != nil {
		return environment.Released{}, err
	}

	base := releasing.Base
	inputs := base.UserInputs
	releaseDir := filepath.Join(base.BuildDir, "release")
	remote := h.deps.remoteExecFor(releasing.InstanceIP.String(), inputs.SSHCredentials.Port,
		inputs.SSHCredentials.Username.String(), inputs.SSHCredentials.PrivateKeyPath)

	steps := h.buildSteps(inputs, releaseDir, remote, startedAt)

	tracker := step.NewTracker(listener)
	failedStep, runErr := tracker.Run(ctx, steps)
	if runErr != nil {
		failure := h.deps.buildFailure(ctx, "release", name, base.TracesDir, startedAt, failedStep, runErr)
		releaseFailed := releasing.ReleaseFailed(failure)
		if saveErr := h.deps.Repo.SaveReleaseFailed(releaseFailed); saveErr != nil {
			return environment.Released{}, errkind.Wrap(errkind.StatePersistence, "persist release_failed state after: "+runErr.Error(), saveErr)
		}
		return environment.Released{}, runErr
	}

	released := releasing.Released()
	if err := h.deps.Repo.SaveReleased(released); err != nil {
		return environment.Released{}, err
	}

	h.deps.logger().Info(ctx, "environment released", "environment", name)
	return released, nil
}

// buildSteps assembles the fixed-order, gated substep list. Each gate is a
// pure predicate on inputs; within a gate the order never changes.
func (h ReleaseHandler) buildSteps(inputs userinput.UserInputs, releaseDir string, remote adapter.RemoteExec, generatedAt time.Time) []step.Named {
	steps := []step.Named{
		{
			Step:        environment.ReleaseStepRenderComposeArtifacts,
			Description: "render compose artifacts",
			Action: func(context.Context) error {
				ctx, err := templating.NewComposeContext(inputs, generatedAt)
				if err != nil {
					return err
				}
				_, err = templating.ComposeGenerator().Render(filepath.Join(releaseDir, "compose"), ctx)
				return err
			},
		},
		{
			Step:        environment.ReleaseStepCreateTrackerStorage,
			Description: "create tracker storage",
			Action: func(context.Context) error {
				_, err := remote.Run("mkdir -p " + path.Join(remoteBase, "storage/tracker/lib/database"))
				return err
			},
		},
		{
			Step:        environment.ReleaseStepInitTrackerDatabase,
			Description: "initialize tracker database",
			Action: func(context.Context) error {
				dbPath := path.Join(remoteBase, "storage/tracker/lib/database", inputs.Tracker.Core.Database.DatabaseName)
				_, err := remote.Run("touch " + dbPath)
				return err
			},
		},
		{
			Step:        environment.ReleaseStepRenderTrackerConfig,
			Description: "render tracker config",
			Action: func(context.Context) error {
				ctx := templating.NewTrackerConfigContext(inputs, generatedAt)
				_, err := templating.TrackerConfigGenerator().Render(filepath.Join(releaseDir, "tracker"), ctx)
				return err
			},
		},
		{
			Step:        environment.ReleaseStepDeployTrackerConfig,
			Description: "deploy tracker config",
			Action: func(context.Context) error {
				return remote.CopyFile(
					filepath.Join(releaseDir, "tracker", "config.toml"),
					path.Join(remoteBase, "config/tracker/config.toml"))
			},
		},
		{
			Step:        environment.ReleaseStepDeployComposeFiles,
			Description: "deploy compose files",
			Action: func(context.Context) error {
				return remote.CopyFile(
					filepath.Join(releaseDir, "compose", "docker-compose.yml"),
					path.Join(remoteBase, "docker-compose.yml"))
			},
		},
	}

	if inputs.UsesMySQL() {
		steps = append(steps, step.Named{
			Step:        environment.ReleaseStepCreateMySQLStorage,
			Description: "create mysql storage",
			Action: func(context.Context) error {
				_, err := remote.Run("mkdir -p " + path.Join(remoteBase, "storage/mysql"))
				return err
			},
		})
	}

	if inputs.HasPrometheus() {
		steps = append(steps,
			step.Named{
				Step:        environment.ReleaseStepCreatePrometheusStorage,
				Description: "create prometheus storage",
				Action: func(context.Context) error {
					_, err := remote.Run("mkdir -p " + path.Join(remoteBase, "storage/prometheus"))
					return err
				},
			},
			step.Named{
				Step:        environment.ReleaseStepRenderPrometheusConfig,
				Description: "render prometheus config",
				Action: func(context.Context) error {
					ctx := templating.NewPrometheusContext(inputs, generatedAt)
					_, err := templating.PrometheusGenerator().Render(filepath.Join(releaseDir, "prometheus"), ctx)
					return err
				},
			},
			step.Named{
				Step:        environment.ReleaseStepDeployPrometheusConfig,
				Description: "deploy prometheus config",
				Action: func(context.Context) error {
					return remote.CopyFile(
						filepath.Join(releaseDir, "prometheus", "prometheus.yml"),
						path.Join(remoteBase, "config/prometheus/prometheus.yml"))
				},
			},
		)
	}

	if inputs.HasGrafana() {
		steps = append(steps, step.Named{
			Step:        environment.ReleaseStepCreateGrafanaStorage,
			Description: "create grafana storage",
			Action: func(context.Context) error {
				_, err := remote.Run("mkdir -p " + path.Join(remoteBase, "storage/grafana"))
				return err
			},
		})
	}

	if inputs.HasGrafana() && inputs.HasPrometheus() {
		steps = append(steps,
			step.Named{
				Step:        environment.ReleaseStepRenderGrafanaProvisioning,
				Description: "render grafana provisioning",
				Action: func(context.Context) error {
					ctx := templating.NewGrafanaContext(inputs, generatedAt)
					_, err := templating.GrafanaGenerator().Render(filepath.Join(releaseDir, "grafana"), ctx)
					return err
				},
			},
			step.Named{
				Step:        environment.ReleaseStepDeployGrafanaProvisioning,
				Description: "deploy grafana provisioning",
				Action: func(context.Context) error {
					return remote.CopyFile(
						filepath.Join(releaseDir, "grafana", "provisioning", "datasources", "datasource.yml"),
						path.Join(remoteBase, "config/grafana/provisioning/datasources/datasource.yml"))
				},
			},
		)
	}

	if inputs.HasAnyTLS() {
		steps = append(steps,
			step.Named{
				Step:        environment.ReleaseStepRenderReverseProxyConfig,
				Description: "render reverse proxy config",
				Action: func(context.Context) error {
					ctx, err := templating.NewReverseProxyContext(inputs, generatedAt)
					if err != nil {
						return err
					}
					_, err = templating.ReverseProxyGenerator().Render(filepath.Join(releaseDir, "reverse-proxy"), ctx)
					return err
				},
			},
			step.Named{
				Step:        environment.ReleaseStepDeployReverseProxyConfig,
				Description: "deploy reverse proxy config",
				Action: func(context.Context) error {
					return remote.CopyFile(
						filepath.Join(releaseDir, "reverse-proxy", "Caddyfile"),
						path.Join(remoteBase, "config/reverse-proxy/Caddyfile"))
				},
			},
		)
	}

	if inputs.HasBackup() {
		steps = append(steps,
			step.Named{
				Step:        environment.ReleaseStepRenderBackupTemplates,
				Description: "render backup templates",
				Action: func(context.Context) error {
					ctx := templating.NewBackupContext(inputs, generatedAt)
					_, err := templating.BackupGenerator().Render(filepath.Join(releaseDir, "backup"), ctx)
					return err
				},
			},
			step.Named{
				Step:        environment.ReleaseStepCreateBackupStorage,
				Description: "create backup storage",
				Action: func(context.Context) error {
					_, err := remote.Run("mkdir -p " + path.Join(remoteBase, "storage/backup"))
					return err
				},
			},
			step.Named{
				Step:        environment.ReleaseStepDeployBackupConfig,
				Description: "deploy backup config",
				Action: func(context.Context) error {
					return remote.CopyFile(
						filepath.Join(releaseDir, "backup", "backup.sh"),
						path.Join(remoteBase, "config/backup/backup.sh"))
				},
			},
		)
	}

	return steps
}
