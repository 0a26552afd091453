package vi

import (
	"github.com/modeseven/test64/hardware/spec"
)

// the base timing templates, two per broadcast standard. the standard
// template is the 320 wide progressive display; the tall template is the 640
// wide interlaced display used by the tall video modes
//
// burst, sync and start values follow the DAC documentation for each
// standard. the templates are copied by Compute() and never written to

var ntscStandard = RegisterImage{
	Com: ComRegs{
		Ctrl:   CtrlType16 | CtrlGammaDither | CtrlAAResample,
		Width:  320,
		Burst:  0x03e5_2239,
		VSync:  0x0000_020d,
		HSync:  0x0000_0c15,
		Leap:   0x0c15_0c15,
		HStart: 0x006c_02ec,
		XScale: 0x0000_0200,
	},
	Fld: [2]FieldRegs{
		{Origin: 640, YScale: 0x0000_0400, VStart: 0x0025_01ff, VBurst: 0x000e_0204, VIntr: 2},
		{Origin: 640, YScale: 0x0000_0400, VStart: 0x0025_01ff, VBurst: 0x000e_0204, VIntr: 2},
	},
}

var ntscTall = RegisterImage{
	Com: ComRegs{
		Ctrl:   CtrlType16 | CtrlGammaDither | CtrlAAResample | CtrlSerrate,
		Width:  640,
		Burst:  0x03e5_2239,
		VSync:  0x0000_020c,
		HSync:  0x0000_0c15,
		Leap:   0x0c15_0c15,
		HStart: 0x006c_02ec,
		XScale: 0x0000_0400,
	},
	Fld: [2]FieldRegs{
		{Origin: 1280, YScale: 0x0000_0800, VStart: 0x0025_01ff, VBurst: 0x000e_0204, VIntr: 2},
		{Origin: 1280, YScale: 0x0000_0800, VStart: 0x0024_01fe, VBurst: 0x0007_0203, VIntr: 2},
	},
}

var palStandard = RegisterImage{
	Com: ComRegs{
		Ctrl:   CtrlType16 | CtrlGammaDither | CtrlAAResample,
		Width:  320,
		Burst:  0x0404_233a,
		VSync:  0x0000_0271,
		HSync:  0x0015_0c69,
		Leap:   0x0c6f_0c6e,
		HStart: 0x0080_0300,
		XScale: 0x0000_0200,
	},
	Fld: [2]FieldRegs{
		{Origin: 640, YScale: 0x0000_0400, VStart: 0x005f_0239, VBurst: 0x0009_026b, VIntr: 2},
		{Origin: 640, YScale: 0x0000_0400, VStart: 0x005f_0239, VBurst: 0x0009_026b, VIntr: 2},
	},
}

var palTall = RegisterImage{
	Com: ComRegs{
		Ctrl:   CtrlType16 | CtrlGammaDither | CtrlAAResample | CtrlSerrate,
		Width:  640,
		Burst:  0x0404_233a,
		VSync:  0x0000_0270,
		HSync:  0x0015_0c69,
		Leap:   0x0c6f_0c6e,
		HStart: 0x0080_0300,
		XScale: 0x0000_0400,
	},
	Fld: [2]FieldRegs{
		{Origin: 1280, YScale: 0x0000_0800, VStart: 0x005f_0239, VBurst: 0x0009_026b, VIntr: 2},
		{Origin: 1280, YScale: 0x0000_0800, VStart: 0x005e_0238, VBurst: 0x000c_026c, VIntr: 2},
	},
}

var mpalStandard = RegisterImage{
	Com: ComRegs{
		Ctrl:   CtrlType16 | CtrlGammaDither | CtrlAAResample,
		Width:  320,
		Burst:  0x0465_1e39,
		VSync:  0x0000_020d,
		HSync:  0x0000_0c10,
		Leap:   0x0c1c_0c1c,
		HStart: 0x006c_02ec,
		XScale: 0x0000_0200,
	},
	Fld: [2]FieldRegs{
		{Origin: 640, YScale: 0x0000_0400, VStart: 0x0025_01ff, VBurst: 0x000b_0202, VIntr: 2},
		{Origin: 640, YScale: 0x0000_0400, VStart: 0x0025_01ff, VBurst: 0x000b_0202, VIntr: 2},
	},
}

var mpalTall = RegisterImage{
	Com: ComRegs{
		Ctrl:   CtrlType16 | CtrlGammaDither | CtrlAAResample | CtrlSerrate,
		Width:  640,
		Burst:  0x0465_1e39,
		VSync:  0x0000_020c,
		HSync:  0x0000_0c10,
		Leap:   0x0c1c_0c1c,
		HStart: 0x006c_02ec,
		XScale: 0x0000_0400,
	},
	Fld: [2]FieldRegs{
		{Origin: 1280, YScale: 0x0000_0800, VStart: 0x0025_01ff, VBurst: 0x000b_0202, VIntr: 2},
		{Origin: 1280, YScale: 0x0000_0800, VStart: 0x0024_01fe, VBurst: 0x0005_0202, VIntr: 2},
	},
}

func standardTemplate(std spec.Spec) RegisterImage {
	switch std.ID {
	case spec.PAL.ID:
		return palStandard
	case spec.MPAL.ID:
		return mpalStandard
	}
	return ntscStandard
}

func tallTemplate(std spec.Spec) RegisterImage {
	switch std.ID {
	case spec.PAL.ID:
		return palTall
	case spec.MPAL.ID:
		return mpalTall
	}
	return ntscTall
}
