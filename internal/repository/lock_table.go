package repository

import (
	"sync"
	"time"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

// DefaultLockTimeout is the default time an operation waits to acquire a
// per-environment lock before failing with a StatePersistence error.
const DefaultLockTimeout = 30 * time.Second

// lockTable is a process-wide mapping from environment name to an advisory,
// timed-acquisition lock. Every repository operation on a given name
// acquires that name's slot first; operations on distinct names proceed
// concurrently. Acquisition respects a configured timeout: on timeout the
// caller must not retry silently, since a slow peer is likely still
// progressing.
//
// Each slot is a buffered channel of capacity 1 used as a binary semaphore:
// a full channel means the lock is free, acquiring drains it, releasing
// refills it. This is the standard channel-as-mutex idiom and needs no
// third-party timed-lock library.
type lockTable struct {
	mu      sync.Mutex
	slots   map[string]chan struct{}
	timeout time.Duration
}

func newLockTable(timeout time.Duration) *lockTable {
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	return &lockTable{slots: make(map[string]chan struct{}), timeout: timeout}
}

func (t *lockTable) slotFor(name string) chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	slot, ok := t.slots[name]
	if !ok {
		slot = make(chan struct{}, 1)
		slot <- struct{}{}
		t.slots[name] = slot
	}
	return slot
}

// acquire blocks until name's lock is held or the table's timeout elapses.
// It returns a release function the caller must invoke exactly once.
func (t *lockTable) acquire(name string) (func(), error) {
	slot := t.slotFor(name)
	select {
	case <-slot:
		return func() { slot <- struct{}{} }, nil
	case <-time.After(t.timeout):
		return nil, errkind.New(errkind.StatePersistence, "timed out acquiring lock for environment \""+name+"\"")
	}
}

// forget removes name's slot entirely. Callers must not hold name's lock
// when calling this; it is only safe to call immediately after a successful
// Delete, once no other operation can still be referencing the old slot.
func (t *lockTable) forget(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.slots, name)
}
