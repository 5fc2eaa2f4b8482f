package adapter

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

func TestRunnerRunCapturesStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell assumptions do not hold on Windows")
	}
	t.Parallel()

	runner := Runner{}
	result, err := runner.Run(context.Background(), "", "echo", "hello")
	require.NoError(t, err)
	require.Equal(t, "hello", result.Stdout)
}

func TestRunnerRunClassifiesNonZeroExitAsCommandExecution(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell assumptions do not hold on Windows")
	}
	t.Parallel()

	runner := Runner{}
	_, err := runner.Run(context.Background(), "", "sh", "-c", "echo boom >&2; exit 1")
	require.Error(t, err)

	var domainErr *errkind.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errkind.CommandExecution, domainErr.Kind)
	require.Contains(t, domainErr.Error(), "boom")
}

func TestRunnerRunClassifiesMissingBinaryAsCommandStartup(t *testing.T) {
	t.Parallel()

	runner := Runner{}
	_, err := runner.Run(context.Background(), "", "definitely-not-a-real-binary-xyz")
	require.Error(t, err)

	var domainErr *errkind.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errkind.CommandStartup, domainErr.Kind)
}

func TestRunnerRunClassifiesDeadlineExceededAsTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell assumptions do not hold on Windows")
	}
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	runner := Runner{}
	_, err := runner.Run(ctx, "", "sleep", "1")
	require.Error(t, err)

	var domainErr *errkind.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errkind.Timeout, domainErr.Kind)
}

func TestLookPathFindsShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell assumptions do not hold on Windows")
	}
	t.Parallel()

	require.True(t, LookPath("sh"))
	require.False(t, LookPath("definitely-not-a-real-binary-xyz"))
}
