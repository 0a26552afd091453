// Package vi computes and holds the register image for the video interface,
// the DAC that reads an image from RDRAM and outputs it to screen as NTSC,
// PAL or M-PAL.
package vi

import (
	"github.com/modeseven/test64/hardware/spec"
)

// FieldRegs is the register group for one interlaced half-frame. the VStart
// and VBurst registers pack a start and end half-word into a single word
type FieldRegs struct {
	Origin uint32
	YScale uint32
	VStart uint32
	VBurst uint32
	VIntr  uint32
}

// ComRegs is the register group common to both fields
type ComRegs struct {
	Ctrl     uint32
	Width    uint32
	Burst    uint32
	VSync    uint32
	HSync    uint32
	Leap     uint32
	HStart   uint32
	XScale   uint32
	VCurrent uint32
}

// RegisterImage is the in-memory mirror of the video-timing hardware. it is
// written wholesale by Compute() and installed wholesale by Device.Activate().
// nothing ever patches an image partially from outside this package
type RegisterImage struct {
	Com ComRegs
	Fld [2]FieldRegs
}

// bits of the Ctrl register
const (
	CtrlType16       = 0x00002
	CtrlType32       = 0x00003
	CtrlGammaDither  = 0x00004
	CtrlGamma        = 0x00008
	CtrlDivot        = 0x00010
	CtrlSerrate      = 0x00040
	CtrlAAResample   = 0x00300
	CtrlDitherFilter = 0x10000
)

// the 50Hz raster sits structurally lower than the 60Hz one. the template
// vertical start is pulled up by the bias and then nudged back down by the
// trim on both fields
const (
	palVStartBias = 0x180000
	palVStartTrim = 0x10
)

// user corrections are scaled by two step sizes and summed. the corrected
// registers pack a start and an end half-word into one word, so the coarse
// step lands in the high half and the fine step in the low half. the two
// terms must not be collapsed into a single multiply
const (
	correctionCoarse = 0x20000
	correctionFine   = 0x2
)

// Compute derives the register image for the given mode and standard,
// applying the user's horizontal-start and vertical-scale corrections.
//
// The function is total: a mode whose resolution index is not the tall one
// folds onto the standard template, whatever its other bits say. Computing
// the same arguments twice yields identical images.
//
// The returned image is not yet live. The caller is responsible for
// installing it with Device.Activate(), with interrupts masked for the
// duration of the write.
func Compute(mode spec.VideoMode, std spec.Spec, hStartCorrection int8, vScaleCorrection int8) RegisterImage {
	var img RegisterImage

	if mode.Tall() {
		img = tallTemplate(std)
	} else {
		img = standardTemplate(std)
	}

	if std.ID == spec.PAL.ID {
		img.Fld[0].VStart -= palVStartBias
		img.Fld[1].VStart -= palVStartBias
		img.Fld[0].VStart += palVStartTrim
		img.Fld[1].VStart += palVStartTrim
	}

	img.Fld[0].VStart += uint32(int32(vScaleCorrection) * correctionCoarse)
	img.Fld[1].VStart += uint32(int32(vScaleCorrection) * correctionCoarse)
	img.Fld[0].VStart += uint32(int32(vScaleCorrection) * correctionFine)
	img.Fld[1].VStart += uint32(int32(vScaleCorrection) * correctionFine)
	img.Com.HStart += uint32(int32(hStartCorrection) * correctionCoarse)
	img.Com.HStart += uint32(int32(hStartCorrection) * correctionFine)

	return img
}
