package vi

import (
	"fmt"
	"strings"
)

// Feature is a discrete post-processing toggle applied to the live register
// image after activation
type Feature int

const (
	FeatureDivotOn Feature = iota
	FeatureDivotOff
	FeatureDitherFilterOn
	FeatureDitherFilterOff
	FeatureGammaOn
	FeatureGammaOff
)

// Device is the write-only hardware register target. it accepts a
// RegisterImage wholesale and discrete feature toggles.
//
// Activate() and Blank() touch registers that the refresh hardware reads
// mid-frame, so the caller must hold the scheduler's interrupt-disable token
// across the call.
type Device struct {
	image RegisterImage
	blank bool

	// set once an image has been activated. queries before that point report
	// an unprogrammed device
	live bool
}

// Activate installs a register image and enables the engine's fixed
// post-processing: edge-smoothing on, dither filter on, gamma off
func (dev *Device) Activate(img RegisterImage) {
	dev.image = img
	dev.live = true
	dev.SetFeature(FeatureDivotOn)
	dev.SetFeature(FeatureDitherFilterOn)
	dev.SetFeature(FeatureGammaOff)
}

func (dev *Device) SetFeature(f Feature) {
	switch f {
	case FeatureDivotOn:
		dev.image.Com.Ctrl |= CtrlDivot
	case FeatureDivotOff:
		dev.image.Com.Ctrl &^= CtrlDivot
	case FeatureDitherFilterOn:
		dev.image.Com.Ctrl |= CtrlDitherFilter
	case FeatureDitherFilterOff:
		dev.image.Com.Ctrl &^= CtrlDitherFilter
	case FeatureGammaOn:
		dev.image.Com.Ctrl |= CtrlGamma
	case FeatureGammaOff:
		dev.image.Com.Ctrl &^= CtrlGamma
	}
}

// Blank stops the DAC outputting image data until blanking is lifted. used
// during mode changes so the viewer never sees a half-programmed display
func (dev *Device) Blank(active bool) {
	dev.blank = active
}

func (dev *Device) Blanked() bool {
	return dev.blank
}

// SetOrigin points the named field at a framebuffer address. called at the
// vertical-blank boundary after a buffer swap
func (dev *Device) SetOrigin(field int, addr uint32) {
	dev.image.Fld[field&0x1].Origin = addr
}

// Image returns a copy of the live register image
func (dev *Device) Image() RegisterImage {
	return dev.image
}

// Fld returns a copy of the register group for the named field
func (dev *Device) Fld(field int) FieldRegs {
	return dev.image.Fld[field&0x1]
}

func (dev *Device) Label() string {
	return "VI"
}

func (dev *Device) Status() string {
	if !dev.live {
		return "VI: not programmed"
	}
	if dev.blank {
		return "VI: blanked"
	}
	return dev.String()
}

func (dev *Device) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s: ctrl=%#08x width=%d burst=%#08x\n",
		dev.Label(), dev.image.Com.Ctrl, dev.image.Com.Width, dev.image.Com.Burst))
	s.WriteString(fmt.Sprintf("vsync=%#08x hsync=%#08x leap=%#08x\n",
		dev.image.Com.VSync, dev.image.Com.HSync, dev.image.Com.Leap))
	s.WriteString(fmt.Sprintf("hstart=%#08x xscale=%#08x", dev.image.Com.HStart, dev.image.Com.XScale))
	for f := range dev.image.Fld {
		s.WriteString(fmt.Sprintf("\nfield %d: origin=%#08x yscale=%#08x vstart=%#08x vburst=%#08x vintr=%d",
			f, dev.image.Fld[f].Origin, dev.image.Fld[f].YScale,
			dev.image.Fld[f].VStart, dev.image.Fld[f].VBurst, dev.image.Fld[f].VIntr))
	}
	return s.String()
}
