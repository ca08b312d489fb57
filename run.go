// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Outcome is the terminal result of driving one procedure.
//
// Err is the primary cause: nil on completion, the procedure's own failure,
// or an *AcquireError when an acquisition failed. Release holds every
// release failure observed while unwinding, deepest frame first; a release
// failure after successful completion leaves Err nil — success with
// reportable diagnostics, not failure.
type Outcome[A any] struct {
	Value   A
	Err     error
	Release []ReleaseError
	Serial  Serial
}

// Ok reports whether the run completed without a primary failure.
// Release may be non-empty even when Ok is true.
func (o Outcome[A]) Ok() bool { return o.Err == nil }

// Clean reports whether the run completed and every release succeeded.
func (o Outcome[A]) Clean() bool { return o.Err == nil && len(o.Release) == 0 }

// Run drives an Expr-world procedure to its outcome on the calling
// goroutine. Waits past iox.ErrWouldBlock acquisitions via adaptive backoff
// (iox.Backoff), without spawning goroutines or creating channels.
func Run[A any](m kont.Expr[A]) Outcome[A] {
	return Drive(NewProc(m))
}

// Drive drives a not-yet-started procedure to its outcome.
//
// The loop is the iterative trampoline: each iteration performs one
// acquire+resume against the run's unwind record, so physical call depth
// stays constant regardless of how many frames are open. Every exit path
// unwinds the record to empty before the outcome is reported.
func Drive[A any](p *Proc[A]) Outcome[A] {
	var rec Record
	var bo iox.Backoff
	st := p.Start()
	for {
		if _, ok := st.Yielded(); !ok {
			return settle(p, st, &rec)
		}
		next, err := Advance(p, &rec, st)
		if err != nil {
			bo.Wait()
			continue
		}
		bo.Reset()
		st = next
	}
}

// Advance performs the suspended resource request against rec: one
// acquisition plus the resume handing the handle back.
//
// On success (nil error), the acquisition's frame is registered on rec and
// the returned step is the procedure's next request, completion, or failure.
// On iox.ErrWouldBlock, the step is returned unconsumed and may be retried
// after the resource can make progress. Any other acquisition error is
// injected through [Proc.FailResume] wrapped as *AcquireError: observable
// requests continue with Left, plain requests fail the procedure — either
// way the returned error is nil and no frame was registered.
func Advance[A any](p *Proc[A], rec *Record, st StepResult[A]) (StepResult[A], error) {
	d, ok := st.Yielded()
	if !ok {
		panic("scop: no pending resource request in Advance")
	}
	v, err := d.dispatch(rec)
	if err != nil {
		if iox.IsWouldBlock(err) {
			return st, err
		}
		return p.FailResume(&AcquireError{Depth: rec.Depth() + 1, Err: err}), nil
	}
	return p.Resume(v), nil
}

// settle unwinds the record and builds the outcome for a finished step.
func settle[A any](p *Proc[A], st StepResult[A], rec *Record) Outcome[A] {
	released := rec.Unwind()
	if err, ok := st.Failed(); ok {
		return Outcome[A]{Err: err, Release: released, Serial: p.Serial()}
	}
	v, _ := st.Completed()
	return Outcome[A]{Value: v, Release: released, Serial: p.Serial()}
}
