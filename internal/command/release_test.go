package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/adapter"
	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

func stepNames(t *testing.T, handler ReleaseHandler, inputs userinput.UserInputs) []string {
	t.Helper()
	remote := adapter.NewRemoteExec("127.0.0.1", 22, "torrust", "/key")
	steps := handler.buildSteps(inputs, t.TempDir(), remote, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, s.Step.String())
	}
	return names
}

func TestReleaseBuildStepsBaseSequenceOnly(t *testing.T) {
	t.Parallel()

	handler := ReleaseHandler{}
	names := stepNames(t, handler, newTestUserInputs(t))

	require.Equal(t, []string{
		string(environment.ReleaseStepRenderComposeArtifacts),
		string(environment.ReleaseStepCreateTrackerStorage),
		string(environment.ReleaseStepInitTrackerDatabase),
		string(environment.ReleaseStepRenderTrackerConfig),
		string(environment.ReleaseStepDeployTrackerConfig),
		string(environment.ReleaseStepDeployComposeFiles),
	}, names)
}

func TestReleaseBuildStepsAddsPrometheusGateWhenConfigured(t *testing.T) {
	t.Parallel()

	handler := ReleaseHandler{}
	inputs := newTestUserInputs(t)
	prometheus, err := userinput.NewPrometheusConfig(15)
	require.NoError(t, err)
	inputs.Prometheus = &prometheus

	names := stepNames(t, handler, inputs)
	require.Contains(t, names, string(environment.ReleaseStepCreatePrometheusStorage))
	require.Contains(t, names, string(environment.ReleaseStepRenderPrometheusConfig))
	require.Contains(t, names, string(environment.ReleaseStepDeployPrometheusConfig))
	require.NotContains(t, names, string(environment.ReleaseStepCreateGrafanaStorage))
	require.NotContains(t, names, string(environment.ReleaseStepRenderGrafanaProvisioning))
}

func TestReleaseBuildStepsOnlyAddsGrafanaProvisioningWhenPrometheusAlsoConfigured(t *testing.T) {
	t.Parallel()

	handler := ReleaseHandler{}
	inputs := newTestUserInputs(t)
	grafana, err := userinput.NewGrafanaConfig("admin-pass", "", false)
	require.NoError(t, err)
	inputs.Grafana = &grafana

	names := stepNames(t, handler, inputs)
	require.Contains(t, names, string(environment.ReleaseStepCreateGrafanaStorage))
	require.NotContains(t, names, string(environment.ReleaseStepRenderGrafanaProvisioning),
		"grafana provisioning requires prometheus to also be configured")
	require.NotContains(t, names, string(environment.ReleaseStepDeployGrafanaProvisioning))
}

func TestReleaseBuildStepsAddsBackupGateWhenConfigured(t *testing.T) {
	t.Parallel()

	handler := ReleaseHandler{}
	inputs := newTestUserInputs(t)
	schedule, err := userinput.NewCronSchedule("0 3 * * *")
	require.NoError(t, err)
	retention, err := userinput.NewRetentionDays(7)
	require.NoError(t, err)
	backup := userinput.NewBackupConfig(schedule, retention)
	inputs.Backup = &backup

	names := stepNames(t, handler, inputs)
	require.Contains(t, names, string(environment.ReleaseStepRenderBackupTemplates))
	require.Contains(t, names, string(environment.ReleaseStepCreateBackupStorage))
	require.Contains(t, names, string(environment.ReleaseStepDeployBackupConfig))
}

func TestReleaseBuildStepsNeverAddsMySQLGate(t *testing.T) {
	t.Parallel()

	// UsesMySQL is always false today (only SQLite is a supported driver),
	// so the gate is unreachable with any constructible UserInputs.
	handler := ReleaseHandler{}
	names := stepNames(t, handler, newTestUserInputs(t))
	require.NotContains(t, names, string(environment.ReleaseStepCreateMySQLStorage))
}
