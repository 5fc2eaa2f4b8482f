package adapter

import "context"

// ShellDetector implements the "which <cmd>" collaborator contract (§6.2):
// a command is present when the probe exits zero.
type ShellDetector struct {
	Runner Runner
}

// NewShellDetector constructs a ShellDetector.
func NewShellDetector(runner Runner) ShellDetector {
	return ShellDetector{Runner: runner}
}

// Present reports whether cmd resolves to an executable on PATH.
func (d ShellDetector) Present(ctx context.Context, cmd string) bool {
	_, err := d.Runner.Run(ctx, "", "which", cmd)
	return err == nil
}
