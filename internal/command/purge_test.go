package command

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
)

func TestPurgeHandlerRemovesPersistedStateAndDirectories(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	base := newTestBase(t, "purge-me")
	_, buildDir, templatesDir, _ := deps.Paths.ForEnvironment("purge-me")
	base.BuildDir = buildDir
	base.TemplatesDir = templatesDir
	require.NoError(t, deps.Repo.SaveCreated(environment.Created{Base: base}))
	require.NoError(t, os.MkdirAll(base.BuildDir, 0o755))
	require.NoError(t, os.MkdirAll(base.TemplatesDir, 0o755))

	purge := NewPurgeHandler(deps)
	require.NoError(t, purge.Execute(context.Background(), "purge-me"))

	exists, err := deps.Repo.Exists("purge-me")
	require.NoError(t, err)
	require.False(t, exists)

	_, statErr := os.Stat(base.BuildDir)
	require.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(base.TemplatesDir)
	require.True(t, os.IsNotExist(statErr))
}

func TestPurgeHandlerNotFound(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	purge := NewPurgeHandler(deps)
	err := purge.Execute(context.Background(), "does-not-exist")
	require.Error(t, err)

	var domainErr *errkind.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errkind.NotFound, domainErr.Kind)
}
