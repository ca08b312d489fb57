// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/scop"
)

func TestSerialMonotonic(t *testing.T) {
	p1 := scop.NewProc(kont.ExprReturn(0))
	p2 := scop.NewProc(kont.ExprReturn(0))
	p3 := scop.NewProc(kont.ExprReturn(0))

	s1 := p1.Serial()
	s2 := p2.Serial()
	s3 := p3.Serial()

	if s1 >= s2 {
		t.Fatalf("serials not increasing: %d >= %d", s1, s2)
	}
	if s2 >= s3 {
		t.Fatalf("serials not increasing: %d >= %d", s2, s3)
	}
}

func TestOutcomeCarriesProcSerial(t *testing.T) {
	p := scop.NewProc(kont.ExprReturn(7))
	want := p.Serial()
	out := scop.Drive(p)
	if out.Serial != want {
		t.Fatalf("outcome serial %d, want %d", out.Serial, want)
	}
}
