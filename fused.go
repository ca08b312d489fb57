// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop

import (
	"code.hybscloud.com/kont"
)

// With acquires a resource from c and passes the handle to use.
// Fuses Perform(Acquire[H]{Cap: c}) + Bind. The release is registered on the
// driver's unwind record and runs when the whole procedure unwinds, in
// reverse acquisition order — not at the end of use.
func With[H, B any](c Capability[H], use func(H) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Acquire[H]{Cap: c}), use)
}

// TryWith acquires a resource from c with observable failure.
// Fuses Perform(TryAcquire[H]{Cap: c}) + Bind: use receives Right(handle) on
// success, Left(err) when the acquisition failed.
func TryWith[H, B any](c Capability[H], use func(kont.Either[error, H]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(TryAcquire[H]{Cap: c}), use)
}

// Done completes the procedure with a.
func Done[A any](a A) kont.Eff[A] {
	return kont.Pure(a)
}
