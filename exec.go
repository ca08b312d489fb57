// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop

import (
	"code.hybscloud.com/kont"
)

// Exec drives a Cont-world procedure to its outcome on the calling
// goroutine. Equivalent to Run(Reify(m)).
func Exec[A any](m kont.Eff[A]) Outcome[A] {
	return Run(kont.Reify(m))
}

// ExecAll drives several Cont-world procedures on the calling goroutine via
// the task-delegation scheduler. Equivalent to RunAll over Reify of each.
func ExecAll[A any](procs ...kont.Eff[A]) []Outcome[A] {
	exprs := make([]kont.Expr[A], len(procs))
	for i, m := range procs {
		exprs[i] = kont.Reify(m)
	}
	return RunAll(exprs...)
}
