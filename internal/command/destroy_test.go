package command

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// TestStartDestroyingAcceptsEveryDestroyableState exercises the dispatch
// switch in startDestroying against every concrete state that exposes a
// StartDestroying transition, confirming none of them is accidentally
// rejected.
func TestStartDestroyingAcceptsEveryDestroyableState(t *testing.T) {
	t.Parallel()

	handler := DestroyHandler{}
	ip := net.ParseIP("10.0.0.5")

	created := environment.Created{Base: newTestBase(t, "destroy-dispatch")}
	provisioning := created.StartProvisioning()
	provisioned := provisioning.Provisioned(ip, userinput.ProvisionMethodLXD)
	configured := provisioned.StartConfiguring().Configured()
	released := configured.StartReleasing().Released()
	running := released.StartRunning()

	failure := environment.FailureContext{ErrorSummary: "step failed", FailedStep: "apply", ErrorKind: errkind.CommandExecution}

	cases := map[string]environment.AnyEnvironmentState{
		"created":          environment.CreatedToAny(created),
		"provisioned":      environment.ProvisionedToAny(provisioned),
		"configured":       environment.ConfiguredToAny(configured),
		"released":         environment.ReleasedToAny(released),
		"running":          environment.RunningToAny(running),
		"provision_failed": environment.ProvisionFailedToAny(created.StartProvisioning().ProvisionFailed(failure)),
		"configure_failed": environment.ConfigureFailedToAny(provisioned.StartConfiguring().ConfigureFailed(failure)),
		"release_failed":   environment.ReleaseFailedToAny(configured.StartReleasing().ReleaseFailed(failure)),
		"run_failed":       environment.RunFailedToAny(running.RunFailed(failure)),
		"destroy_failed":   environment.DestroyFailedToAny(provisioned.StartDestroying().DestroyFailed(failure)),
	}

	for name, any := range cases {
		any := any
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			destroying, err := handler.startDestroying(any)
			require.NoError(t, err)
			require.Equal(t, "destroy-dispatch", destroying.Base.Name.String())
		})
	}
}

// TestStartDestroyingRejectsNonDestroyableState confirms a state with no
// StartDestroying transition (here the terminal Destroyed state) produces a
// Validation error instead of panicking.
func TestStartDestroyingRejectsNonDestroyableState(t *testing.T) {
	t.Parallel()

	handler := DestroyHandler{}
	created := environment.Created{Base: newTestBase(t, "destroy-rejects")}
	destroyed := created.StartDestroying().Destroyed()

	_, err := handler.startDestroying(environment.DestroyedToAny(destroyed))
	require.Error(t, err)

	var domainErr *errkind.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errkind.Validation, domainErr.Kind)
}
