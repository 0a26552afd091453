package clocks

const Mhz = 1000000

// the clock feeding the video DAC differs by broadcast standard
const (
	NTSC_VI = 48.681812 * Mhz
	PAL_VI  = 49.656530 * Mhz
	MPAL_VI = 48.628316 * Mhz
)

// vertical refresh rates
const (
	NTSC_Refresh = 60
	PAL_Refresh  = 50
	MPAL_Refresh = 60
)
