package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
)

func TestClockNowFallsBackToSystemClockWhenUnset(t *testing.T) {
	t.Parallel()

	deps := Deps{}
	before := time.Now().UTC()
	now := deps.clockNow()
	after := time.Now().UTC()

	require.False(t, now.Before(before))
	require.False(t, now.After(after))
}

func TestBuildFailureClassifiesAndRecordsTheFailedStep(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	tracesDir := filepath.Join(t.TempDir(), "traces")
	startedAt := deps.clockNow()
	cause := errkind.New(errkind.CommandExecution, "apply failed")

	failure := deps.buildFailure(context.Background(), "provision", "env-a", tracesDir, startedAt,
		environment.ProvisionStepApply, cause)

	require.Equal(t, errkind.CommandExecution, failure.ErrorKind)
	require.Equal(t, environment.ProvisionStepApply.String(), failure.FailedStep)
	require.NotEmpty(t, failure.TraceFilePath)

	entries, err := os.ReadDir(tracesDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestBuildFailureToleratesAnUnwritableTracesDirectory(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	// tracesDir's parent is a regular file, so os.MkdirAll on it must fail:
	// buildFailure must still return a usable FailureContext with an empty
	// trace path rather than surfacing the write error (§4.4).
	blocker := filepath.Join(t.TempDir(), "not-a-directory")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	tracesDir := filepath.Join(blocker, "traces")

	startedAt := deps.clockNow()
	cause := errkind.New(errkind.Connectivity, "ssh unreachable")

	failure := deps.buildFailure(context.Background(), "provision", "env-b", tracesDir, startedAt,
		environment.ProvisionStepWaitSSH, cause)

	require.Equal(t, errkind.Connectivity, failure.ErrorKind)
	require.Equal(t, environment.ProvisionStepWaitSSH.String(), failure.FailedStep)
	require.Empty(t, failure.TraceFilePath)
}
