package spec

import "github.com/modeseven/test64/hardware/clocks"

// VideoMode combines broadcast-standard assumptions with a resolution index.
// The low three bits select an entry in the resolution table. A VideoMode
// should only ever be a value that has previously been given to the timing
// configurator, never something derived ad hoc.
type VideoMode int

// ResolutionIdx returns the resolution table index selected by the mode
func (m VideoMode) ResolutionIdx() int {
	return int(m & 0x7)
}

// Tall returns true if the mode selects the 480 scanline "tall" display. the
// tall modes use a different timing template and, when expansion memory is
// fitted, a different framebuffer bank
func (m VideoMode) Tall() bool {
	return m&0x7 == 0x6
}

// the modes used by the engine. other values are accepted by the timing
// configurator and fold onto the standard template
const (
	ModeGame VideoMode = 1
	ModeMenu VideoMode = 7
	ModeTall VideoMode = 14
)

// Resolution is a single entry in the resolution table
type Resolution struct {
	W uint32
	H uint32
}

const NumResolutions = 8

// Resolutions is the table of supported resolutions, indexed by the low three
// bits of the video mode. the table is defined for the 60Hz standards; a
// console session on a 50Hz display stretches its own copy with StretchPAL()
var Resolutions = [NumResolutions]Resolution{
	{W: 320, H: 240},
	{W: 320, H: 240},
	{W: 256, H: 224},
	{W: 384, H: 288},
	{W: 448, H: 336},
	{W: 512, H: 384},
	{W: 640, H: 480},
	{W: 320, H: 240},
}

// StretchPAL adds twenty scanlines to every entry in a resolution table. the
// 50Hz raster has more lines to fill and the engine fills them with image
// rather than letterboxing
func StretchPAL(table *[NumResolutions]Resolution) {
	for i := range table {
		table[i].H += 20
	}
}

// Spec is the timing profile for one broadcast standard. one instance exists
// per standard. the instance is selected once at startup from the detected
// hardware flag and is immutable afterwards
type Spec struct {
	ID          string
	RefreshHz   uint32
	AspectRatio float32

	// the clock feeding the video DAC
	VIClock float64

	// scale factor applied to frame-time dependent values by collaborating
	// subsystems. unity for the 60Hz standards
	FrameScale float32
}

var NTSC Spec
var PAL Spec
var MPAL Spec

func init() {
	NTSC = Spec{
		ID:          "NTSC",
		RefreshHz:   clocks.NTSC_Refresh,
		AspectRatio: 4.0 / 3.0,
		VIClock:     clocks.NTSC_VI,
		FrameScale:  1.0,
	}

	PAL = Spec{
		ID:          "PAL",
		RefreshHz:   clocks.PAL_Refresh,
		AspectRatio: 1.379,
		VIClock:     clocks.PAL_VI,
		FrameScale:  1.2,
	}

	// M-PAL is the Brazilian hybrid. 60Hz refresh with PAL colour encoding
	MPAL = Spec{
		ID:          "MPAL",
		RefreshHz:   clocks.MPAL_Refresh,
		AspectRatio: 4.0 / 3.0,
		VIClock:     clocks.MPAL_VI,
		FrameScale:  1.0,
	}
}
