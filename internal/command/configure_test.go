package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
)

func TestConfigureHandlerNotFound(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	handler := NewConfigureHandler(deps)
	_, err := handler.Execute(context.Background(), "does-not-exist", nil)
	require.Error(t, err)

	var domainErr *errkind.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errkind.NotFound, domainErr.Kind)
}

func TestConfigureHandlerRejectsWrongSourceState(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	created := environment.Created{Base: newTestBase(t, "configure-wrong-state")}
	require.NoError(t, deps.Repo.SaveCreated(created))

	handler := NewConfigureHandler(deps)
	_, err := handler.Execute(context.Background(), "configure-wrong-state", nil)
	requireWrongState(t, err, "provisioned")
}
