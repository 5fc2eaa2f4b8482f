package userinput

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUDPTrackerConfigValidBindAddress(t *testing.T) {
	t.Parallel()

	cfg, err := NewUDPTrackerConfig("0.0.0.0:6969")
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:6969", cfg.BindAddress)
}

func TestNewUDPTrackerConfigRejectsInvalidBindAddress(t *testing.T) {
	t.Parallel()

	_, err := NewUDPTrackerConfig("invalid")
	require.Error(t, err)
}

func TestNewHTTPAPIConfigValidConfig(t *testing.T) {
	t.Parallel()

	cfg, err := NewHTTPAPIConfig("0.0.0.0:1212", "MyAccessToken", "", false)
	require.NoError(t, err)
	require.Equal(t, 1212, cfg.BindAddress.Port)
	require.Equal(t, "MyAccessToken", cfg.AdminToken)
	require.Nil(t, cfg.Domain)
}

func TestNewHTTPAPIConfigRejectsDynamicPort(t *testing.T) {
	t.Parallel()

	_, err := NewHTTPAPIConfig("0.0.0.0:0", "tok", "", false)
	require.Error(t, err)
}

func TestNewHTTPAPIConfigTLSRequiresDomain(t *testing.T) {
	t.Parallel()

	_, err := NewHTTPAPIConfig("0.0.0.0:1212", "tok", "", true)
	require.Error(t, err)

	cfg, err := NewHTTPAPIConfig("0.0.0.0:1212", "tok", "tracker.example.com", true)
	require.NoError(t, err)
	require.NotNil(t, cfg.Domain)
	require.Equal(t, "tracker.example.com", cfg.Domain.String())
}

func TestNewHealthCheckAPIConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewHealthCheckAPIConfig("127.0.0.1:1313", "", false)
	require.NoError(t, err)
	require.Equal(t, 1313, cfg.BindAddress.Port)
	require.False(t, cfg.UseTLSProxy)
}
