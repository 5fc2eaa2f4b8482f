// Package adapter implements the thin collaborator wrappers the core calls
// into: the infrastructure provisioner, the configuration engine, an SSH
// reachability probe, remote compose invocation over SSH, and shell
// detection. Each adapter is a small struct holding a working directory (or
// connection parameters) and exposes one method per sub-command; none of
// them interpret output beyond what the collaborator's own contract
// guarantees (§6.2), following the teacher's internalexec streaming-capture
// pattern.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

// CommandResult captures the captured stdout/stderr of a subprocess run,
// trimmed of surrounding whitespace.
type CommandResult struct {
	Stdout string
	Stderr string
}

// Runner executes external collaborator commands, tee-ing their output to
// the host process's own streams while also capturing it for trace files
// and JSON parsing.
type Runner struct {
	// Stdout/Stderr are where live output is additionally streamed; nil
	// disables streaming and only captures.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args in dir, returning captured output. A
// non-zero exit or a failure to start the process both produce a
// *errkind.DomainError: CommandStartup if the binary could not be found
// or executed at all, CommandExecution if it ran and exited non-zero, or
// Timeout if ctx's deadline expired before it finished.
func (r Runner) Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	if r.Stdout != nil {
		cmd.Stdout = io.MultiWriter(r.Stdout, &stdoutBuf)
	} else {
		cmd.Stdout = &stdoutBuf
	}
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(r.Stderr, &stderrBuf)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	result := CommandResult{
		Stdout: strings.TrimSpace(stdoutBuf.String()),
		Stderr: strings.TrimSpace(stderrBuf.String()),
	}
	if err == nil {
		return result, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return result, errkind.Wrap(errkind.Timeout, name+" did not finish before its deadline", err)
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return result, errkind.Wrap(errkind.CommandStartup, name+" could not be started", err)
	}

	message := name + " exited with an error"
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		message = name + " exited with status " + exitErr.String()
	}
	if result.Stderr != "" {
		message += ": " + result.Stderr
	} else if result.Stdout != "" {
		message += ": " + result.Stdout
	}
	return result, errkind.Wrap(errkind.CommandExecution, message, err)
}

// LookPath reports whether name resolves to an executable on PATH, mirroring
// the collaborator contract's "which <cmd>" exit-0-when-present check
// without actually spawning a shell.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
