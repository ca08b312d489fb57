// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop

import (
	"strconv"

	"code.hybscloud.com/kont"
)

// AcquireError reports a failed acquisition. Depth is the depth the frame
// would have occupied; the frame was never created, and every frame acquired
// at shallower depths is still unwound.
type AcquireError struct {
	Depth int
	Err   error
}

func (e *AcquireError) Error() string {
	return "scop: acquire at depth " + strconv.Itoa(e.Depth) + ": " + e.Err.Error()
}

func (e *AcquireError) Unwrap() error { return e.Err }

// ReleaseError reports a failed release observed during unwinding.
// Release failures never suppress or replace the failure (or success) that
// triggered the unwind; they are collected on [Outcome.Release] as auxiliary
// diagnostics, ordered deepest frame first.
type ReleaseError struct {
	Depth int
	Err   error
}

func (e ReleaseError) Error() string {
	return "scop: release at depth " + strconv.Itoa(e.Depth) + ": " + e.Err.Error()
}

func (e ReleaseError) Unwrap() error { return e.Err }

// errorDispatcher is the structural interface for kont error-effect
// operations (Throw, Catch) with error as the thrown type.
// Error operations are dispatched eagerly during classification.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
}

// Fail aborts the procedure with err (Cont-world). All frames acquired so
// far are unwound and err becomes the primary cause of the outcome.
func Fail[A any](err error) kont.Eff[A] {
	return kont.ThrowError[error, A](err)
}

// ExprFail aborts the procedure with err (Expr-world).
func ExprFail[A any](err error) kont.Expr[A] {
	return kont.ExprThrowError[error, A](err)
}

// Recover runs body, calling handler if it fails.
// The handler's result replaces the failure; frames acquired before Recover
// stay open.
//
// kont evaluates catch bodies with an error-only handler, so body and
// handler must not request resources; acquire inside either and nothing
// handles the operation.
func Recover[A any](body kont.Eff[A], handler func(error) kont.Eff[A]) kont.Eff[A] {
	return kont.CatchError(body, handler)
}
