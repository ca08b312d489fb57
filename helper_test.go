// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/scop"
)

// trace records the observable acquire/use/release event sequence of a run.
// Runs are single-goroutine, so no synchronization is needed.
type trace struct {
	events []string
}

func (tr *trace) record(event string) {
	tr.events = append(tr.events, event)
}

// use records the use of a handle inside a procedure body.
func (tr *trace) use(h string) {
	tr.record("use(" + h + ")")
}

// cap returns a capability whose handle is name, recording every
// acquire and release.
func (tr *trace) cap(name string) scop.Capability[string] {
	return scop.CapabilityFunc[string]{
		AcquireFunc: func() (string, error) {
			tr.record("acquire(" + name + ")")
			return name, nil
		},
		ReleaseFunc: func(h string) error {
			tr.record("release(" + h + ")")
			return nil
		},
	}
}

// failingCap fails every acquisition with err, recording each attempt.
func (tr *trace) failingCap(name string, err error) scop.Capability[string] {
	return scop.CapabilityFunc[string]{
		AcquireFunc: func() (string, error) {
			tr.record("acquire-fail(" + name + ")")
			return "", err
		},
	}
}

// badReleaseCap acquires normally but fails every release with err.
// The release attempt is still recorded.
func (tr *trace) badReleaseCap(name string, err error) scop.Capability[string] {
	return scop.CapabilityFunc[string]{
		AcquireFunc: func() (string, error) {
			tr.record("acquire(" + name + ")")
			return name, nil
		},
		ReleaseFunc: func(h string) error {
			tr.record("release(" + h + ")")
			return err
		},
	}
}

// blockingCap returns iox.ErrWouldBlock until ready reports true.
func (tr *trace) blockingCap(name string, ready func() bool) scop.Capability[string] {
	return scop.CapabilityFunc[string]{
		AcquireFunc: func() (string, error) {
			if !ready() {
				return "", iox.ErrWouldBlock
			}
			tr.record("acquire(" + name + ")")
			return name, nil
		},
		ReleaseFunc: func(h string) error {
			tr.record("release(" + h + ")")
			return nil
		},
	}
}

// acquires returns the recorded acquire events' names, in order.
func (tr *trace) acquires() []string {
	return tr.filter("acquire(")
}

// releases returns the recorded release events' names, in order.
func (tr *trace) releases() []string {
	return tr.filter("release(")
}

func (tr *trace) filter(prefix string) []string {
	var names []string
	for _, e := range tr.events {
		if strings.HasPrefix(e, prefix) {
			names = append(names, strings.TrimSuffix(strings.TrimPrefix(e, prefix), ")"))
		}
	}
	return names
}

// want fails the test unless the recorded events match exactly.
func (tr *trace) want(t *testing.T, events ...string) {
	t.Helper()
	if len(tr.events) != len(events) {
		t.Fatalf("events got %v, want %v", tr.events, events)
	}
	for i := range events {
		if tr.events[i] != events[i] {
			t.Fatalf("event %d got %q, want %q (all: %v)", i, tr.events[i], events[i], tr.events)
		}
	}
}

// reversedOf reports whether releases is the exact reverse of acquires.
func reversedOf(acquires, releases []string) bool {
	if len(acquires) != len(releases) {
		return false
	}
	n := len(acquires)
	for i := range acquires {
		if releases[n-1-i] != acquires[i] {
			return false
		}
	}
	return true
}
