package vi

import (
	"testing"

	"github.com/modeseven/test64/hardware/spec"
	"github.com/modeseven/test64/test"
)

func TestComputeDeterminism(t *testing.T) {
	for _, std := range []spec.Spec{spec.NTSC, spec.PAL, spec.MPAL} {
		a := Compute(spec.ModeGame, std, 3, -2)
		b := Compute(spec.ModeGame, std, 3, -2)
		test.ExpectEquality(t, a, b)

		a = Compute(spec.ModeTall, std, 0, 0)
		b = Compute(spec.ModeTall, std, 0, 0)
		test.ExpectEquality(t, a, b)
	}
}

func TestModeFolding(t *testing.T) {
	// any mode whose resolution index is not the tall one uses the standard
	// template. mode 9 has the same low bits as the game mode
	a := Compute(spec.VideoMode(9), spec.NTSC, 0, 0)
	b := Compute(spec.ModeGame, spec.NTSC, 0, 0)
	test.ExpectEquality(t, a, b)

	c := Compute(spec.ModeTall, spec.NTSC, 0, 0)
	test.ExpectInequality(t, c, b)
	test.ExpectEquality(t, c.Com.Width, uint32(640))
	test.ExpectEquality(t, c.Com.Ctrl&CtrlSerrate, uint32(CtrlSerrate))
}

func TestPALVerticalBias(t *testing.T) {
	// the bias and trim apply to both fields, whatever the corrections are
	for _, hc := range []int8{0, 4, -4} {
		for _, vc := range []int8{0, 2, -2} {
			pal := Compute(spec.ModeGame, spec.PAL, hc, vc)
			for fld := range 2 {
				expected := palStandard.Fld[fld].VStart - palVStartBias + palVStartTrim
				expected += uint32(int32(vc) * correctionCoarse)
				expected += uint32(int32(vc) * correctionFine)
				test.ExpectEquality(t, pal.Fld[fld].VStart, expected)
			}
		}
	}

	// the 60Hz standards are not biased
	ntsc := Compute(spec.ModeGame, spec.NTSC, 0, 0)
	test.ExpectEquality(t, ntsc.Fld[0].VStart, ntscStandard.Fld[0].VStart)
	test.ExpectEquality(t, ntsc.Fld[1].VStart, ntscStandard.Fld[1].VStart)
}

func TestCorrectionTerms(t *testing.T) {
	base := Compute(spec.ModeGame, spec.NTSC, 0, 0)

	for _, c := range []int8{1, 2, 5, -1, -3, 127, -128} {
		// vertical-scale correction moves VStart on both fields by the sum of
		// the coarse and fine terms
		img := Compute(spec.ModeGame, spec.NTSC, 0, c)
		delta := uint32(int32(c)*correctionCoarse) + uint32(int32(c)*correctionFine)
		for fld := range 2 {
			test.ExpectEquality(t, img.Fld[fld].VStart, base.Fld[fld].VStart+delta)

			// the coarse term lands in the high half-word and the fine term in
			// the low. neither term alone accounts for the movement
			test.ExpectInequality(t, img.Fld[fld].VStart, base.Fld[fld].VStart+uint32(int32(c)*correctionCoarse))
			test.ExpectInequality(t, img.Fld[fld].VStart, base.Fld[fld].VStart+uint32(int32(c)*correctionFine))
		}
		test.ExpectEquality(t, img.Com.HStart, base.Com.HStart)

		// horizontal-start correction moves HStart the same way
		img = Compute(spec.ModeGame, spec.NTSC, c, 0)
		test.ExpectEquality(t, img.Com.HStart, base.Com.HStart+delta)
		test.ExpectInequality(t, img.Com.HStart, base.Com.HStart+uint32(int32(c)*correctionCoarse))
		test.ExpectInequality(t, img.Com.HStart, base.Com.HStart+uint32(int32(c)*correctionFine))
		test.ExpectEquality(t, img.Fld[0].VStart, base.Fld[0].VStart)
	}

	// zero correction leaves the template untouched
	test.ExpectEquality(t, base, ntscStandard)
}
