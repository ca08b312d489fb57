// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop

import (
	"code.hybscloud.com/kont"
)

// Stepping boundary for external runtimes.
// A Proc is driven one resource request at a time; each of Start, Resume,
// and FailResume advances to the next request, completion, or failure.

type stepKind uint8

const (
	stepYielded stepKind = iota + 1
	stepCompleted
	stepFailed
)

// Descriptor describes one pending resource request: the operation the
// procedure suspended on, carrying its acquisition parameters.
// Immutable once produced.
type Descriptor struct {
	op scopeDispatcher
}

// Op returns the suspended effect operation, e.g. for inspection as a
// concrete Acquire[H] or TryAcquire[H].
func (d Descriptor) Op() kont.Operation { return d.op }

// dispatch performs the acquisition against rec, registering the release
// frame on success.
func (d Descriptor) dispatch(rec *Record) (kont.Resumed, error) {
	return d.op.DispatchScope(rec)
}

// Observable reports whether the request can observe an acquisition failure
// ([TryAcquire]) rather than propagating it through [Proc.FailResume].
func (d Descriptor) Observable() bool {
	_, ok := d.op.(failDispatcher)
	return ok
}

// StepResult is the tagged result of starting or resuming a procedure:
// yielded on a resource request, completed with the final value, or failed.
type StepResult[A any] struct {
	desc  Descriptor
	value A
	err   error
	kind  stepKind
}

// Yielded returns the pending request descriptor, if the procedure suspended
// on a resource request.
func (s StepResult[A]) Yielded() (Descriptor, bool) {
	return s.desc, s.kind == stepYielded
}

// Completed returns the final value, if the procedure ran to completion.
func (s StepResult[A]) Completed() (A, bool) {
	return s.value, s.kind == stepCompleted
}

// Failed returns the failure, if the procedure failed.
func (s StepResult[A]) Failed() (error, bool) {
	return s.err, s.kind == stepFailed
}

// Proc adapts an Expr-world computation into an externally steppable
// procedure. It runs only while being stepped, suspends exactly at resource
// requests, and is owned by one driver run: stepping is affine, and no two
// drivers may step the same Proc concurrently.
type Proc[A any] struct {
	expr    kont.Expr[A]
	susp    *kont.Suspension[A]
	serial  Serial
	started bool
}

// NewProc creates a procedure from an Expr-world computation and assigns it
// the next run serial. Use [Reify] first for Cont-world computations.
func NewProc[A any](m kont.Expr[A]) *Proc[A] {
	return &Proc[A]{expr: m, serial: nextSerial()}
}

// Serial returns the serial number assigned to this procedure's run.
func (p *Proc[A]) Serial() Serial {
	return p.serial
}

// Start begins evaluation up to the first resource request.
// Panics if the procedure has already been started.
func (p *Proc[A]) Start() StepResult[A] {
	if p.started {
		panic("scop: procedure started twice")
	}
	p.started = true
	expr := p.expr
	p.expr = kont.Expr[A]{}
	value, susp := kont.StepExpr(expr)
	return p.classify(value, susp)
}

// Resume hands the acquired value back to the procedure and advances to the
// next request, completion, or failure. For [Acquire] requests the value is
// the bare handle; for [TryAcquire] it is Right(handle).
// Panics if there is no pending resource request.
func (p *Proc[A]) Resume(v kont.Resumed) StepResult[A] {
	susp := p.pending()
	p.susp = nil
	value, next := susp.Resume(v)
	return p.classify(value, next)
}

// FailResume injects an acquisition failure at the current suspension point.
// A [TryAcquire] request observes the failure as Left(err) and the procedure
// continues; a plain [Acquire] request propagates it, failing the procedure.
// External failure (such as a host-imposed timeout) is injected the same way.
// Panics if there is no pending resource request.
func (p *Proc[A]) FailResume(err error) StepResult[A] {
	susp := p.pending()
	p.susp = nil
	if op, ok := susp.Op().(failDispatcher); ok {
		value, next := susp.Resume(op.DispatchScopeFailure(err))
		return p.classify(value, next)
	}
	susp.Discard()
	return StepResult[A]{kind: stepFailed, err: err}
}

func (p *Proc[A]) pending() *kont.Suspension[A] {
	if p.susp == nil {
		panic("scop: no pending resource request")
	}
	return p.susp
}

// classify maps a kont stepping result onto StepResult. Scope operations
// yield; error operations are dispatched eagerly, either failing the
// procedure (Throw) or resuming past the operation (Catch with a recovered
// body). The loop is iterative: physical depth does not grow with the
// number of consecutive error operations.
func (p *Proc[A]) classify(value A, susp *kont.Suspension[A]) StepResult[A] {
	for {
		if susp == nil {
			return StepResult[A]{kind: stepCompleted, value: value}
		}
		op := susp.Op()
		if sop, ok := op.(scopeDispatcher); ok {
			p.susp = susp
			return StepResult[A]{kind: stepYielded, desc: Descriptor{op: sop}}
		}
		if eop, ok := op.(errorDispatcher); ok {
			var ctx kont.ErrorContext[error]
			v, _ := eop.DispatchError(&ctx)
			if ctx.HasErr {
				susp.Discard()
				return StepResult[A]{kind: stepFailed, err: ctx.Err}
			}
			value, susp = susp.Resume(v)
			continue
		}
		panic("scop: unhandled effect in procedure")
	}
}
