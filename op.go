// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop

import (
	"code.hybscloud.com/kont"
)

// scopeDispatcher is the structural interface for scope operations.
// DispatchScope is non-blocking: it returns iox.ErrWouldBlock unchanged when
// the capability cannot make progress yet, and any other error when the
// acquisition failed. A frame is registered only on success.
type scopeDispatcher interface {
	DispatchScope(rec *Record) (kont.Resumed, error)
}

// failDispatcher is implemented by operations that can observe an
// acquisition failure and resume the procedure instead of failing it.
type failDispatcher interface {
	DispatchScopeFailure(err error) kont.Resumed
}

// Acquire is the effect operation requesting one scoped resource.
// Perform(Acquire[H]{Cap: c}) suspends the procedure until the driver has
// acquired a handle from c, then resumes with the handle. The matching
// release is registered on the driver's unwind record, not tied to any
// lexical scope in the procedure.
type Acquire[H any] struct {
	kont.Phantom[H]
	Cap Capability[H]
}

// DispatchScope performs the acquisition and registers the release frame.
func (a Acquire[H]) DispatchScope(rec *Record) (kont.Resumed, error) {
	h, err := a.Cap.Acquire()
	if err != nil {
		return nil, err
	}
	c := a.Cap
	rec.push(h, func() error { return c.Release(h) })
	return h, nil
}

// TryAcquire is the effect operation requesting one scoped resource with
// observable failure. The procedure is resumed with Either[error, H]:
// Right(handle) on success (with the release registered exactly as for
// [Acquire]), Left(err) when the acquisition failed, letting the procedure
// react — fall back, or propagate by failing itself.
type TryAcquire[H any] struct {
	kont.Phantom[kont.Either[error, H]]
	Cap Capability[H]
}

// DispatchScope performs the acquisition and registers the release frame.
// Acquisition failure is reported to the driver as an error here; the
// Left resume value is produced by DispatchScopeFailure.
func (a TryAcquire[H]) DispatchScope(rec *Record) (kont.Resumed, error) {
	h, err := a.Cap.Acquire()
	if err != nil {
		return nil, err
	}
	c := a.Cap
	rec.push(h, func() error { return c.Release(h) })
	return kont.Right[error, H](h), nil
}

// DispatchScopeFailure converts an acquisition failure into the Left resume
// value the procedure observes.
func (TryAcquire[H]) DispatchScopeFailure(err error) kont.Resumed {
	return kont.Left[error, H](err)
}
