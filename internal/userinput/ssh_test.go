package userinput

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSSHCredentialsRejectsRelativePaths(t *testing.T) {
	t.Parallel()

	_, err := NewSSHCredentials("fixtures/testing_rsa", "/abs/testing_rsa.pub", "torrust", 22)
	require.Error(t, err)
}

func TestNewSSHCredentialsRejectsInvalidPort(t *testing.T) {
	t.Parallel()

	_, err := NewSSHCredentials("/abs/testing_rsa", "/abs/testing_rsa.pub", "torrust", 70000)
	require.Error(t, err)
}

func TestNewSSHCredentialsValid(t *testing.T) {
	t.Parallel()

	creds, err := NewSSHCredentials("/abs/testing_rsa", "/abs/testing_rsa.pub", "torrust", 22)
	require.NoError(t, err)
	require.Equal(t, "torrust", creds.Username.String())
	require.Equal(t, 22, creds.Port)
}
