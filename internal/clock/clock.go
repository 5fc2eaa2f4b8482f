// Package clock provides the injectable time source used across the
// deployer so that created_at, started_at, and trace timestamps are
// deterministic in tests.
package clock

import "time"

// Clock abstracts time.Now so tests can supply a fixed instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

var _ Clock = SystemClock{}

// Fixed is a Clock that always returns the same instant. Used by tests that
// need byte-identical, reproducible output (template rendering determinism,
// created_at assertions).
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time { return f.At }

var _ Clock = Fixed{}
