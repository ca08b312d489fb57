// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world procedure to Expr-world.
// The resulting Expr can be driven with Run, RunAll, or stepped through
// a Proc.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world procedure to Cont-world.
// The resulting Eff can be driven with Exec or ExecAll.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
