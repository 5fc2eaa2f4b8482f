// Package errkind provides the deployer's closed error taxonomy. Every error
// produced by the core is classifiable into exactly one Kind, chosen by the
// producer at the call site — never inferred by a consumer.
package errkind

import (
	"errors"
	"fmt"
)

// Kind is the closed classifier attached to every DomainError.
type Kind string

const (
	CommandStartup    Kind = "command_startup"
	CommandExecution  Kind = "command_execution"
	TemplateRendering Kind = "template_rendering"
	StatePersistence  Kind = "state_persistence"
	Connectivity      Kind = "connectivity"
	Timeout           Kind = "timeout"
	Validation        Kind = "validation"
	NotFound          Kind = "not_found"
	AlreadyExists     Kind = "already_exists"
	Internal          Kind = "internal"
)

// remediation holds a one-line operator hint per error kind, grounded in the
// original implementation's per-command "errors.rs" remediation messages.
var remediation = map[Kind]string{
	CommandStartup:    "verify the external tool is installed and on PATH, then retry",
	CommandExecution:  "inspect the captured stdout/stderr in the trace file for the underlying failure",
	TemplateRendering: "check that the environment configuration supplies every value the template requires",
	StatePersistence:  "the environment's on-disk state may be stale; reconcile manually before retrying",
	Connectivity:      "check that the instance's firewall allows the configured port and that the instance is running",
	Timeout:           "the operation exceeded its deadline; rerun once the remote host is known to be responsive",
	Validation:        "fix the reported field(s) in the configuration and resubmit",
	NotFound:          "confirm the environment name and that `create` has been run",
	AlreadyExists:     "pick a different environment name or destroy/purge the existing one first",
	Internal:          "this is a bug in the deployer; please report it with the trace file attached",
}

// Help returns the remediation hint registered for kind, or empty if none.
func Help(kind Kind) string {
	return remediation[kind]
}

// Traceable is implemented by errors that can contribute a line to a
// post-mortem trace file: their own one-line summary, plus an optional
// link to the error they wrap.
type Traceable interface {
	error
	Summary() string
	TraceSource() (Traceable, bool)
}

// DomainError is the concrete error type produced across the deployer's
// core. It carries a Kind classification, a short summary, and an optional
// wrapped cause.
type DomainError struct {
	Kind    Kind
	Message string
	Cause   error
}

// New constructs a DomainError with the given kind and message.
func New(kind Kind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// Wrap constructs a DomainError that chains an underlying cause.
func Wrap(kind Kind, message string, cause error) *DomainError {
	return &DomainError{Kind: kind, Message: message, Cause: cause}
}

// Error implements error.
func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause so errors.Is/As work across the chain.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Summary implements Traceable.
func (e *DomainError) Summary() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// TraceSource implements Traceable, returning the wrapped cause when it is
// itself Traceable.
func (e *DomainError) TraceSource() (Traceable, bool) {
	if e == nil || e.Cause == nil {
		return nil, false
	}
	if t, ok := e.Cause.(Traceable); ok {
		return t, true
	}
	return nil, false
}

// Help returns the remediation hint for this error's kind.
func (e *DomainError) Help() string {
	if e == nil {
		return ""
	}
	return Help(e.Kind)
}

var _ Traceable = (*DomainError)(nil)

// WrongStateError reports that a command expected an environment in one
// lifecycle state but found it in another.
type WrongStateError struct {
	Expected string
	Actual   string
}

func (e *WrongStateError) Error() string {
	return fmt.Sprintf("wrong state: expected %s, found %s", e.Expected, e.Actual)
}

// Summary implements Traceable. KindOf classifies a WrongStateError as
// Validation: the caller asked for an operation that is not valid from the
// environment's current state.
func (e *WrongStateError) Summary() string { return e.Error() }

// TraceSource implements Traceable; WrongStateError never wraps a cause.
func (e *WrongStateError) TraceSource() (Traceable, bool) { return nil, false }

var _ Traceable = (*WrongStateError)(nil)

// KindOf extracts the Kind classification a command handler must record in
// a FailureContext. It never inspects error text; it only recognizes the
// typed errors this package and its callers produce, defaulting to
// Internal for anything else so a classification is always available.
func KindOf(err error) Kind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	var wrongState *WrongStateError
	if errors.As(err, &wrongState) {
		return Validation
	}
	return Internal
}
