// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scop provides scoped-resource procedures via algebraic effects
// on [code.hybscloud.com/kont].
//
// A procedure acquires a sequence of resources (files, sockets, locks,
// connections), uses their handles, and produces a result. The driver
// guarantees that every resource successfully acquired is released, in exact
// reverse order of acquisition, on every exit path — normal completion,
// procedure failure, or a failed acquisition partway through — without nested
// lexical scoping and without growing the physical call stack with the number
// of resources held.
//
// # Architecture
//
//   - Resources: callers implement the [Capability] acquire/release contract.
//     Acquisition is non-blocking at the boundary: [code.hybscloud.com/iox.ErrWouldBlock]
//     means "cannot progress yet" and is retried with adaptive backoff; any
//     other error is an acquisition failure and triggers unwinding.
//   - Procedures: kont computations in either world — closure-based
//     (Cont-world, [code.hybscloud.com/kont.Eff]) or defunctionalized
//     (Expr-world, [code.hybscloud.com/kont.Expr]) — that request resources
//     through the [Acquire] and [TryAcquire] effect operations.
//   - Unwinding: the driver keeps a LIFO unwind record of open frames; a
//     frame is removed exactly when its release hook is invoked, and a failed
//     release never prevents the remaining frames from being attempted.
//   - Outcomes: [Outcome] carries the primary result or failure plus every
//     release failure observed during unwinding; release failures never
//     replace the primary cause.
//
// # API Topologies
//
//   - Operations: [Acquire] resumes with the bare handle; [TryAcquire]
//     resumes with [code.hybscloud.com/kont.Either] so the procedure can
//     observe an acquisition failure instead of propagating it.
//   - Cont-world: [With], [TryWith], [Done], [Fail], [Recover].
//   - Expr-world: pooled-frame variants [ExprWith], [ExprTryWith], [ExprFail].
//     Bridge via [Reify] and [Reflect].
//   - Recursive: [Iterate] and [ExprIterate] for procedures acquiring an
//     unbounded number of resources iteratively.
//
// # Execution
//
//   - Stepping: [NewProc] adapts a computation into a [Proc] that external
//     runtimes drive one resource request at a time through [Proc.Start],
//     [Proc.Resume], and [Proc.FailResume], each returning a tagged
//     [StepResult] (yielded, completed, or failed).
//   - Blocking: [Run] (Expr-world) and [Exec] (Cont-world) drive a single
//     procedure to its [Outcome] on the calling goroutine with an iterative
//     loop; physical call depth stays constant regardless of how many
//     resources are held.
//   - Scheduled: [RunAll] and [ExecAll] drive any number of procedures on the
//     calling goroutine, executing each step as an independently scheduled
//     unit of work drawn from a bounded lock-free queue
//     ([code.hybscloud.com/lfq]).
//
// Each driver run owns its unwind record exclusively; independent runs share
// no mutable state. Within a run, execution is strictly sequential and the
// procedure suspends only at resource requests. Stepping is affine: resuming
// the same suspension twice panics.
//
// # Example
//
//	file := scop.CapabilityFunc[string]{
//		AcquireFunc: func() (string, error) { return openLog() },
//		ReleaseFunc: func(h string) error { return closeLog(h) },
//	}
//	proc := scop.With(file, func(h string) kont.Eff[int] {
//		return scop.Done(len(h))
//	})
//	outcome := scop.Exec(proc)
//	if !outcome.Ok() {
//		// primary failure; outcome.Release holds any release failures
//	}
package scop
