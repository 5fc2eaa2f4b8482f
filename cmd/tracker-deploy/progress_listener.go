package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/torrust/tracker-deploy/internal/progress"
)

// textListener renders progress.Listener events as plain lines to an
// io.Writer, in the spirit of the teacher CLI's non-interactive apply output
// (runApply's NonInteractive branch prints modelState.View() once; here each
// event is printed as it arrives instead, since provision/configure/release/
// destroy can run for minutes and an operator watching a terminal wants
// incremental feedback).
type textListener struct {
	mu  sync.Mutex
	out io.Writer
}

func newTextListener(out io.Writer) *textListener {
	return &textListener{out: out}
}

var _ progress.Listener = (*textListener)(nil)

func (l *textListener) OnStepStarted(stepNumber, totalSteps int, description string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%d/%d] %s\n", stepNumber, totalSteps, description)
}

func (l *textListener) OnStepCompleted(stepNumber int, description string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "      done: %s\n", description)
}

func (l *textListener) OnDetail(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "      %s\n", message)
}

func (l *textListener) OnDebug(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "      debug: %s\n", message)
}
