package environment

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/ident"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

func newTestBase(t *testing.T) Base {
	t.Helper()

	name, err := ident.NewEnvironmentName("torrust-demo")
	require.NoError(t, err)
	instanceName, err := ident.NewInstanceName("torrust-vm-demo")
	require.NoError(t, err)
	profile, err := ident.NewProfileName("torrust-profile")
	require.NoError(t, err)
	provider, err := userinput.NewLXDProvider(profile.String())
	require.NoError(t, err)
	ssh, err := userinput.NewSSHCredentials("/home/user/.ssh/id_ed25519", "/home/user/.ssh/id_ed25519.pub", "torrust", 22)
	require.NoError(t, err)
	db, err := userinput.NewSQLiteDatabaseConfig("tracker.db")
	require.NoError(t, err)
	httpAPI, err := userinput.NewHTTPAPIConfig("127.0.0.1:1212", "s3cr3t", "", false)
	require.NoError(t, err)
	tracker := userinput.TrackerConfig{
		Core:    userinput.TrackerCoreConfig{Database: db, Private: false},
		HTTPAPI: httpAPI,
	}
	inputs := userinput.New(ssh, provider, instanceName, tracker, nil, nil, nil, nil, nil)

	return Base{
		Name:         name,
		InstanceName: instanceName,
		UserInputs:   inputs,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		BuildDir:     "/var/lib/torrust/demo/build",
		DataDir:      "/var/lib/torrust/demo/data",
		TemplatesDir: "/var/lib/torrust/demo/templates",
		TracesDir:    "/var/lib/torrust/demo/traces",
	}
}

func someFailureContext() FailureContext {
	started := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	failed := started.Add(5 * time.Second)
	return NewFailureContext(started, failed, "apply exited with status 1", ProvisionStepApply, errkind.CommandExecution, "")
}

func TestHappyPathTransitionChain(t *testing.T) {
	t.Parallel()

	base := newTestBase(t)
	ip := net.ParseIP("10.0.0.5")

	created := Created{Base: base}
	provisioning := created.StartProvisioning()
	provisioned := provisioning.Provisioned(ip, userinput.ProvisionMethodLXD)
	require.Equal(t, ip, provisioned.InstanceIP)
	require.Equal(t, userinput.ProvisionMethodLXD, provisioned.Method)

	configuring := provisioned.StartConfiguring()
	configured := configuring.Configured()
	require.Equal(t, ip, configured.InstanceIP)

	releasing := configured.StartReleasing()
	released := releasing.Released()
	require.Equal(t, ip, released.InstanceIP)

	running := released.StartRunning()
	require.Equal(t, ip, running.InstanceIP)

	destroying := running.StartDestroying()
	require.NotNil(t, destroying.InstanceInfo)
	require.Equal(t, ip, destroying.InstanceInfo.InstanceIP)

	destroyed := destroying.Destroyed()
	require.NotNil(t, destroyed.InstanceInfo)
	require.Equal(t, ip, destroyed.InstanceInfo.InstanceIP)
}

func TestProvisionFailurePathAndRetry(t *testing.T) {
	t.Parallel()

	base := newTestBase(t)
	provisioning := Created{Base: base}.StartProvisioning()

	failure := someFailureContext()
	failed := provisioning.ProvisionFailed(failure)
	require.Equal(t, failure, failed.Failure)

	destroying := failed.StartDestroying()
	require.Nil(t, destroying.InstanceInfo)
}

func TestConfigureFailurePreservesInstanceInfo(t *testing.T) {
	t.Parallel()

	base := newTestBase(t)
	ip := net.ParseIP("10.0.0.9")
	provisioned := Created{Base: base}.StartProvisioning().Provisioned(ip, userinput.ProvisionMethodHetzner)
	configuring := provisioned.StartConfiguring()

	failure := someFailureContext()
	failed := configuring.ConfigureFailed(failure)
	require.Equal(t, ip, failed.InstanceIP)
	require.Equal(t, failure, failed.Failure)

	destroying := failed.StartDestroying()
	require.NotNil(t, destroying.InstanceInfo)
	require.Equal(t, ip, destroying.InstanceInfo.InstanceIP)
}

func TestReleaseFailurePathAndRetry(t *testing.T) {
	t.Parallel()

	base := newTestBase(t)
	ip := net.ParseIP("10.0.0.10")
	configured := Created{Base: base}.
		StartProvisioning().
		Provisioned(ip, userinput.ProvisionMethodLXD).
		StartConfiguring().
		Configured()

	releasing := configured.StartReleasing()
	failure := someFailureContext()
	failed := releasing.ReleaseFailed(failure)
	require.Equal(t, ip, failed.InstanceIP)

	destroying := failed.StartDestroying()
	require.NotNil(t, destroying.InstanceInfo)
}

func TestRunFailureFromReleasedAndFromRunning(t *testing.T) {
	t.Parallel()

	base := newTestBase(t)
	ip := net.ParseIP("10.0.0.11")
	released := Created{Base: base}.
		StartProvisioning().
		Provisioned(ip, userinput.ProvisionMethodLXD).
		StartConfiguring().
		Configured().
		StartReleasing().
		Released()

	failure := someFailureContext()
	failedFromReleased := released.RunFailed(failure)
	require.Equal(t, ip, failedFromReleased.InstanceIP)

	running := released.StartRunning()
	failedFromRunning := running.RunFailed(failure)
	require.Equal(t, ip, failedFromRunning.InstanceIP)
}

func TestDestroyFailedRetriesPreservingInstanceInfo(t *testing.T) {
	t.Parallel()

	base := newTestBase(t)
	ip := net.ParseIP("10.0.0.12")
	provisioned := Created{Base: base}.StartProvisioning().Provisioned(ip, userinput.ProvisionMethodLXD)
	destroying := provisioned.StartDestroying()

	failure := someFailureContext()
	failed := destroying.DestroyFailed(failure)
	require.NotNil(t, failed.InstanceInfo)
	require.Equal(t, ip, failed.InstanceInfo.InstanceIP)

	retried := failed.StartDestroying()
	require.NotNil(t, retried.InstanceInfo)
	require.Equal(t, ip, retried.InstanceInfo.InstanceIP)
}

func TestDestroyFromCreatedHasNoInstanceInfo(t *testing.T) {
	t.Parallel()

	base := newTestBase(t)
	destroying := Created{Base: base}.StartDestroying()
	require.Nil(t, destroying.InstanceInfo)

	destroyed := destroying.Destroyed()
	require.Nil(t, destroyed.InstanceInfo)
}
