// Package trace formats and writes human-readable post-mortem trace files
// for failed commands. Writing is best-effort: a failure to write a trace
// never converts an otherwise-successful failed-state persist into a
// reported failure, it is only logged.
package trace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/logging"
)

// Record holds everything the writer needs to render one trace file. One
// Record is built per failed command invocation.
type Record struct {
	Command     string
	Environment string
	StartedAt   time.Time
	FailedAt    time.Time
	Duration    time.Duration
	FailedStep  string
	ErrorKind   errkind.Kind
	Err         error
}

// Writer renders Records to <traces_dir>/<timestamp>-<command>.txt.
type Writer struct {
	logger logging.Logger
}

// New constructs a Writer. logger may be a no-op logger in tests.
func New(logger logging.Logger) *Writer {
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}
	return &Writer{logger: logger}
}

// Write renders rec and writes it under tracesDir, returning the path it
// wrote to. Failures are logged and returned; callers must treat a write
// failure as non-fatal to the command's outcome (§4.4) and simply persist
// an empty trace_file_path.
func (w *Writer) Write(ctx context.Context, tracesDir string, rec Record) (string, error) {
	if err := os.MkdirAll(tracesDir, 0o755); err != nil {
		w.logger.Warn(ctx, "failed to create traces directory", "traces_dir", tracesDir, "error", err)
		return "", errkind.Wrap(errkind.Internal, "create traces directory", err)
	}

	fileName := fmt.Sprintf("%s-%s.txt", rec.FailedAt.UTC().Format("20060102T150405Z"), rec.Command)
	path := filepath.Join(tracesDir, fileName)
	body := render(rec)

	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		w.logger.Warn(ctx, "failed to write trace file", "path", path, "error", err)
		return "", errkind.Wrap(errkind.Internal, "write trace file", err)
	}
	return path, nil
}

func render(rec Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "command: %s\n", rec.Command)
	fmt.Fprintf(&b, "environment: %s\n", rec.Environment)
	fmt.Fprintf(&b, "started_at: %s\n", rec.StartedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "failed_at: %s\n", rec.FailedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "duration: %s\n", rec.Duration)
	fmt.Fprintf(&b, "failed_step: %s\n", rec.FailedStep)
	fmt.Fprintf(&b, "error_kind: %s\n", rec.ErrorKind)
	b.WriteString("\nerror chain:\n")
	renderChain(&b, rec.Err)
	b.WriteString("\nremediation:\n")
	fmt.Fprintf(&b, "  %s\n", errkind.Help(rec.ErrorKind))

	return b.String()
}

// renderChain walks a Traceable chain, one summary line per link, falling
// back to err.Error() for a non-Traceable leaf so a trace never goes empty
// just because a step wrapped a plain error.
func renderChain(b *strings.Builder, err error) {
	if err == nil {
		b.WriteString("  (no error recorded)\n")
		return
	}

	depth := 0
	current := err
	for current != nil {
		traceable, ok := current.(errkind.Traceable)
		if !ok {
			fmt.Fprintf(b, "  %s%s\n", strings.Repeat("  ", depth), current.Error())
			return
		}
		fmt.Fprintf(b, "  %s%s\n", strings.Repeat("  ", depth), traceable.Summary())

		next, hasNext := traceable.TraceSource()
		if !hasNext {
			return
		}
		current, _ = next.(error)
		depth++
	}
}
