// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop

import (
	"code.hybscloud.com/kont"
)

// identityResume is the identity resume function for EffectFrame
// construction. Named function produces a static function value, consistent
// with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func withUnwind[H, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	use := data.(func(H) kont.Expr[B])
	result := use(current.(H))
	return kont.Erased(result.Value), result.Frame
}

// ExprWith acquires a resource from c and passes the handle to use.
// Fuses ExprPerform(Acquire[H]{Cap: c}) + ExprBind with pooled single-use
// frames; evaluate at most once.
func ExprWith[H, B any](c Capability[H], use func(H) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = use
	bf.Unwind = withUnwind[H, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Acquire[H]{Cap: c}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

func tryWithUnwind[H, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	use := data.(func(kont.Either[error, H]) kont.Expr[B])
	result := use(current.(kont.Either[error, H]))
	return kont.Erased(result.Value), result.Frame
}

// ExprTryWith acquires a resource from c with observable failure.
// Fuses ExprPerform(TryAcquire[H]{Cap: c}) + ExprBind with pooled single-use
// frames; evaluate at most once.
func ExprTryWith[H, B any](c Capability[H], use func(kont.Either[error, H]) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = use
	bf.Unwind = tryWithUnwind[H, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = TryAcquire[H]{Cap: c}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
