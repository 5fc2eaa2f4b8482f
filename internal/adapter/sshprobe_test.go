package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

func TestWaitReachableClassifiesDeadlineExceededAsTimeout(t *testing.T) {
	t.Parallel()

	keyPath := filepath.Join(t.TempDir(), "not-a-real-key")
	require.NoError(t, os.WriteFile(keyPath, []byte("not a valid key"), 0o600))

	probe := SSHProbe{RetryInterval: 20 * time.Millisecond}
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	err := probe.WaitReachable(ctx, "127.0.0.1", 1, "torrust", keyPath)
	require.Error(t, err)

	var domainErr *errkind.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errkind.Timeout, domainErr.Kind)
}

func TestWaitReachableClassifiesExplicitCancellationAsConnectivity(t *testing.T) {
	t.Parallel()

	keyPath := filepath.Join(t.TempDir(), "not-a-real-key")
	require.NoError(t, os.WriteFile(keyPath, []byte("not a valid key"), 0o600))

	probe := SSHProbe{RetryInterval: 20 * time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(80*time.Millisecond, cancel)

	err := probe.WaitReachable(ctx, "127.0.0.1", 1, "torrust", keyPath)
	require.Error(t, err)

	var domainErr *errkind.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errkind.Connectivity, domainErr.Kind)
}

func TestNewSSHProbeUsesDefaultRetryInterval(t *testing.T) {
	t.Parallel()

	probe := NewSSHProbe()
	require.Equal(t, DefaultRetryInterval, probe.RetryInterval)
}
