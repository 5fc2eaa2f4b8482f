package userinput

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/ident"
)

func buildMinimalUserInputs(t *testing.T) UserInputs {
	t.Helper()

	creds, err := NewSSHCredentials("/abs/testing_rsa", "/abs/testing_rsa.pub", "torrust", 22)
	require.NoError(t, err)
	provider, err := NewLXDProvider("lxd-e2e-provision")
	require.NoError(t, err)
	instance, err := ident.NewInstanceName("torrust-vm-e2e-provision")
	require.NoError(t, err)
	database, err := NewSQLiteDatabaseConfig("tracker.db")
	require.NoError(t, err)
	httpAPI, err := NewHTTPAPIConfig("0.0.0.0:1212", "token", "", false)
	require.NoError(t, err)

	tracker := TrackerConfig{
		Core:    TrackerCoreConfig{Database: database, Private: false},
		HTTPAPI: httpAPI,
	}

	return New(creds, provider, instance, tracker, nil, nil, nil, nil, nil)
}

func TestHasAnyTLSFalseWithoutHTTPS(t *testing.T) {
	t.Parallel()

	inputs := buildMinimalUserInputs(t)
	require.False(t, inputs.HasAnyTLS())
}

func TestHasAnyTLSTrueWhenHTTPAPIProxied(t *testing.T) {
	t.Parallel()

	inputs := buildMinimalUserInputs(t)
	https, err := NewHTTPSConfig("admin@example.com", false)
	require.NoError(t, err)
	inputs.HTTPS = &https

	httpAPI, err := NewHTTPAPIConfig("0.0.0.0:1212", "token", "tracker.example.com", true)
	require.NoError(t, err)
	inputs.Tracker.HTTPAPI = httpAPI

	require.True(t, inputs.HasAnyTLS())
}

func TestUsesMySQLAlwaysFalse(t *testing.T) {
	t.Parallel()

	inputs := buildMinimalUserInputs(t)
	require.False(t, inputs.UsesMySQL())
}
