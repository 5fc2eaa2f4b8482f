package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/ident"
)

func TestCreateHandlerPersistsCreatedState(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	handler := NewCreateHandler(deps)

	name, err := ident.NewEnvironmentName("create-success")
	require.NoError(t, err)

	created, err := handler.Execute(context.Background(), name, newTestUserInputs(t))
	require.NoError(t, err)
	require.Equal(t, name, created.Base.Name)

	any, err := deps.Repo.LoadAny(name.String())
	require.NoError(t, err)
	require.NotNil(t, any)
	require.Equal(t, environment.StateCreated, any.State)
}

func TestCreateHandlerRejectsDuplicateName(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	handler := NewCreateHandler(deps)

	name, err := ident.NewEnvironmentName("create-duplicate")
	require.NoError(t, err)

	_, err = handler.Execute(context.Background(), name, newTestUserInputs(t))
	require.NoError(t, err)

	_, err = handler.Execute(context.Background(), name, newTestUserInputs(t))
	require.Error(t, err)

	var domainErr *errkind.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errkind.AlreadyExists, domainErr.Kind)
}
