package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

// SSHProbe implements the "wait for SSH reachability" provision step:
// repeatedly attempts a full SSH handshake and a trivial remote command
// (the `ssh ... true` contract, §6.2) until it succeeds or the deadline
// passes.
type SSHProbe struct {
	RetryInterval time.Duration
}

// DefaultRetryInterval matches the cadence a human running `ssh` in a
// retry loop would use: frequent enough not to waste the timeout budget,
// sparse enough not to hammer a booting instance.
const DefaultRetryInterval = 2 * time.Second

// NewSSHProbe constructs an SSHProbe with the default retry interval.
func NewSSHProbe() SSHProbe {
	return SSHProbe{RetryInterval: DefaultRetryInterval}
}

// WaitReachable blocks until host:port accepts an SSH handshake as username
// using the key at privateKeyPath and can run a trivial command, or ctx's
// deadline/cancellation fires first. Exceeding ctx's deadline classifies as
// Timeout (§5); any other cancellation classifies as Connectivity.
func (p SSHProbe) WaitReachable(ctx context.Context, host string, port int, username, privateKeyPath string) error {
	interval := p.RetryInterval
	if interval <= 0 {
		interval = DefaultRetryInterval
	}

	var lastErr error
	for {
		client, err := dialClient(host, port, username, privateKeyPath, interval)
		if err == nil {
			_, runErr := runOneCommand(client, "true")
			client.Close()
			if runErr == nil {
				return nil
			}
			lastErr = runErr
		} else {
			lastErr = err
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return errkind.Wrap(errkind.Timeout, "timed out waiting for ssh reachability on "+host, lastErr)
			}
			return errkind.Wrap(errkind.Connectivity, "cancelled while waiting for ssh reachability on "+host, lastErr)
		case <-time.After(interval):
		}
	}
}
