// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/scop"
)

var noopCap = scop.CapabilityFunc[int]{
	AcquireFunc: func() (int, error) { return 0, nil },
	ReleaseFunc: func(int) error { return nil },
}

// BenchmarkExecSingle measures one acquire/use/release round-trip.
func BenchmarkExecSingle(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		scop.Exec(scop.With(noopCap, func(h int) kont.Eff[int] {
			return scop.Done(h)
		}))
	}
}

// BenchmarkRunExprSingle measures the Expr-world counterpart.
func BenchmarkRunExprSingle(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		scop.Run(scop.ExprWith(noopCap, func(h int) kont.Expr[int] {
			return kont.ExprReturn(h)
		}))
	}
}

// BenchmarkExecNested3 measures three nested scopes.
func BenchmarkExecNested3(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		scop.Exec(scop.With(noopCap, func(h1 int) kont.Eff[int] {
			return scop.With(noopCap, func(h2 int) kont.Eff[int] {
				return scop.With(noopCap, func(h3 int) kont.Eff[int] {
					return scop.Done(h1 + h2 + h3)
				})
			})
		}))
	}
}

// BenchmarkRunDeep1000 measures a 1000-deep sequential acquisition run.
func BenchmarkRunDeep1000(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		scop.Run(scop.ExprIterate(0, func(i int) kont.Expr[kont.Either[int, int]] {
			if i == 1000 {
				return kont.ExprReturn(kont.Right[int](i))
			}
			return scop.ExprWith(noopCap, func(h int) kont.Expr[kont.Either[int, int]] {
				return kont.ExprReturn(kont.Left[int, int](i + 1))
			})
		}))
	}
}

// BenchmarkRunAll8 measures the task-delegation scheduler over eight runs.
func BenchmarkRunAll8(b *testing.B) {
	b.ReportAllocs()
	procs := make([]kont.Expr[int], 8)
	for b.Loop() {
		for i := range procs {
			procs[i] = scop.ExprWith(noopCap, func(h int) kont.Expr[int] {
				return scop.ExprWith(noopCap, func(h2 int) kont.Expr[int] {
					return kont.ExprReturn(h + h2)
				})
			})
		}
		scop.RunAll(procs...)
	}
}
