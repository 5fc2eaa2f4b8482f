package environment

import (
	"time"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

// FailureContext is the common base every failing command's own context
// extends with a failed_step and error_kind (§3.3). Every failure state
// carries exactly one non-empty FailureContext (invariant I2); non-failure
// states carry none.
type FailureContext struct {
	StartedAt     time.Time
	FailedAt      time.Time
	Duration      time.Duration
	ErrorSummary  string
	TraceFilePath string
	FailedStep    string
	ErrorKind     errkind.Kind
}

// NewFailureContext builds a FailureContext. traceFilePath is empty when
// trace-file writing itself failed or was skipped; it is always
// best-effort (§4.4).
func NewFailureContext(startedAt, failedAt time.Time, errorSummary string, failedStep Step, kind errkind.Kind, traceFilePath string) FailureContext {
	return FailureContext{
		StartedAt:     startedAt,
		FailedAt:      failedAt,
		Duration:      failedAt.Sub(startedAt),
		ErrorSummary:  errorSummary,
		TraceFilePath: traceFilePath,
		FailedStep:    failedStep.String(),
		ErrorKind:     kind,
	}
}
