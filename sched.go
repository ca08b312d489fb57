// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
)

// Task-delegation trampoline: each driver step runs as an independently
// scheduled unit of work drawn from a bounded lock-free queue. A unit's
// physical frame is reclaimed before the next unit runs; the logical nesting
// of deeper steps lives in the procedures' own continuations, never on the
// call stack.

// task is the scheduler's bookkeeping for one run: the procedure, its
// exclusively owned unwind record, and the step it is parked on.
type task[A any] struct {
	proc *Proc[A]
	rec  Record
	st   StepResult[A]
}

// queueCapacity rounds n up to a power of two for the SPSC ring.
func queueCapacity(n int) int {
	c := 1
	for c < n {
		c <<= 1
	}
	return c
}

// RunAll drives any number of Expr-world procedures to their outcomes on the
// calling goroutine. Each step — one acquire+resume — is a unit of work
// dequeued from a bounded lock-free SPSC queue; runs still pending after a
// unit are re-queued, so the runs interleave step by step. When a full cycle
// of pending runs makes no progress (every acquisition would block), the
// scheduler backs off adaptively (iox.Backoff).
//
// The queue's producer and consumer are both the calling goroutine, so no
// cross-goroutine ordering is involved. Outcomes are returned in argument
// order. Does not spawn goroutines or create channels.
func RunAll[A any](procs ...kont.Expr[A]) []Outcome[A] {
	outcomes := make([]Outcome[A], len(procs))
	if len(procs) == 0 {
		return outcomes
	}

	tasks := make([]task[A], len(procs))
	var q lfq.SPSC[int]
	q.Init(queueCapacity(len(procs)))

	// Capacity covers every run, so enqueues below cannot fail: at most
	// one queue slot per pending run is in flight.
	pending := 0
	for i := range procs {
		t := &tasks[i]
		t.proc = NewProc(procs[i])
		t.st = t.proc.Start()
		if _, ok := t.st.Yielded(); !ok {
			outcomes[i] = settle(t.proc, t.st, &t.rec)
			continue
		}
		slot := i
		_ = q.Enqueue(&slot)
		pending++
	}

	var bo iox.Backoff
	stalled := 0
	for pending > 0 {
		i, err := q.Dequeue()
		if err != nil {
			continue
		}
		t := &tasks[i]
		next, err := Advance(t.proc, &t.rec, t.st)
		if err != nil {
			slot := i
			_ = q.Enqueue(&slot)
			stalled++
			if stalled >= pending {
				bo.Wait()
				stalled = 0
			}
			continue
		}
		bo.Reset()
		stalled = 0
		t.st = next
		if _, ok := t.st.Yielded(); ok {
			slot := i
			_ = q.Enqueue(&slot)
			continue
		}
		outcomes[i] = settle(t.proc, t.st, &t.rec)
		pending--
	}
	return outcomes
}
