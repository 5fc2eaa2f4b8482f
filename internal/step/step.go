// Package step runs an ordered sequence of named actions for a command
// handler, threading the step that is currently executing so a failure is
// always paired with its ground-truth label rather than reverse-engineered
// from the error (spec's step-tracking contract, P7).
package step

import (
	"context"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/progress"
)

// Action is one atomic, reversible-or-retriable unit of work: one external
// tool invocation or one template render. It returns only once its
// post-condition holds; suspension (subprocess execution, file I/O, SSH
// probing, timed sleeps) happens only inside an Action.
type Action func(ctx context.Context) error

// Named pairs a step's enumeration value with its description and Action,
// in the order a command executes them.
type Named struct {
	Step        environment.Step
	Description string
	Action      Action
}

// Tracker runs an ordered sequence of Named steps for one command
// invocation, notifying a progress.Listener at each step boundary.
type Tracker struct {
	listener progress.Listener
}

// NewTracker constructs a Tracker. A nil listener is replaced with a no-op.
func NewTracker(listener progress.Listener) *Tracker {
	return &Tracker{listener: progress.OrNoOp(listener)}
}

// Run executes steps in order. On the first failing step it returns that
// step (the exact enumeration value it was executing, never inferred from
// the error) and the error it produced. On full success it returns (nil,
// nil).
func (t *Tracker) Run(ctx context.Context, steps []Named) (environment.Step, error) {
	total := len(steps)
	for i, s := range steps {
		t.listener.OnStepStarted(i+1, total, s.Description)
		if err := s.Action(ctx); err != nil {
			return s.Step, err
		}
		t.listener.OnStepCompleted(i+1, s.Description)
	}
	return nil, nil
}
