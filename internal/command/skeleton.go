package command

import (
	"context"
	"time"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/trace"
)

// clockNow returns the Deps clock's current time, falling back to the
// system clock when none was configured (e.g. a handler built directly in
// a test without a full Deployer).
func (d Deps) clockNow() time.Time {
	if d.Clock == nil {
		return time.Now().UTC()
	}
	return d.Clock.Now()
}

// buildFailure classifies err, writes a best-effort trace file under
// tracesDir, and returns the FailureContext a handler embeds into its
// failed-substate transition. Per §4.4, a trace-write failure is only
// logged: it never converts an otherwise-successful failed-state persist
// into a reported failure, and the FailureContext's trace_file_path is
// simply left empty.
func (d Deps) buildFailure(ctx context.Context, commandName, environmentName, tracesDir string, startedAt time.Time, failedStep environment.Step, err error) environment.FailureContext {
	kind := errkind.KindOf(err)
	failedAt := d.clockNow()

	tracePath, traceErr := d.tracer().Write(ctx, tracesDir, trace.Record{
		Command:     commandName,
		Environment: environmentName,
		StartedAt:   startedAt,
		FailedAt:    failedAt,
		Duration:    failedAt.Sub(startedAt),
		FailedStep:  failedStep.String(),
		ErrorKind:   kind,
		Err:         err,
	})
	if traceErr != nil {
		d.logger().Warn(ctx, "failed to write trace file for failed command",
			"command", commandName, "environment", environmentName, "error", traceErr)
		tracePath = ""
	}

	return environment.NewFailureContext(startedAt, failedAt, err.Error(), failedStep, kind, tracePath)
}
