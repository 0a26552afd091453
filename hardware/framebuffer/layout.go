// Package framebuffer decides where the two image buffers live in RDRAM and
// which of them is the visible one.
package framebuffer

import (
	"fmt"

	"github.com/modeseven/test64/hardware/rdram"
	"github.com/modeseven/test64/hardware/spec"
)

// all framebuffers are 16bpp
const BytesPerPixel = 2

// Region describes the RDRAM window that holds the buffer pair. the three
// implementations correspond to the three layout branches. only the wide
// expanded-memory window has a defined end; the absence of an End method on
// the other two is deliberate
type Region interface {
	Base() uint32
}

// LowMemory is the region used when only the base memory fitment is present
type LowMemory struct {
	base uint32
}

func (r LowMemory) Base() uint32 { return r.base }

// HighMemoryTall is the region used for the tall modes when the expansion
// bank is present
type HighMemoryTall struct {
	base uint32
}

func (r HighMemoryTall) Base() uint32 { return r.base }

// HighMemoryWide is the region used for the other modes when the expansion
// bank is present. it is the only region with a defined end.
//
// The end is computed from the expansion framebuffer base while the region
// base is the separate wide bank window. Whether these are two independent
// hardware bank windows is unresolved; both computations are kept as they
// are, deliberately not unified with HighMemoryTall.
type HighMemoryWide struct {
	base         uint32
	EndExclusive uint32
}

func (r HighMemoryWide) Base() uint32 { return r.base }

// Set is the buffer pair produced by Layout. it is owned by this package;
// callers treat it as a value
type Set struct {
	Buffers [2]uint32
	Stride  uint32
	Region  Region
}

// Layout places the two image buffers for the given mode. the resolution is
// resolved from the caller's table using the low three bits of the mode.
//
// Insufficient memory is a precondition guaranteed by memory detection, not
// checked here.
func Layout(mode spec.VideoMode, table [spec.NumResolutions]spec.Resolution, expansion bool) Set {
	res := table[mode.ResolutionIdx()]
	span := res.W * res.H * BytesPerPixel

	set := Set{
		Stride: res.W * BytesPerPixel,
	}

	if !expansion {
		set.Buffers[0] = rdram.FramebufferNoExpansion
		set.Buffers[1] = rdram.FramebufferNoExpansion + span
		set.Region = LowMemory{base: rdram.FramebufferNoExpansion}
		return set
	}

	// the bank decision follows the mode, not the table entry. a 50Hz session
	// stretches its table but the tall mode stays in the tall bank
	if mode.Tall() {
		set.Buffers[0] = rdram.FramebufferExpansion
		set.Buffers[1] = rdram.FramebufferExpansion + span
		set.Region = HighMemoryTall{base: rdram.FramebufferExpansion}
		return set
	}

	set.Buffers[0] = rdram.FramebufferExpansion
	set.Buffers[1] = rdram.FramebufferExpansion + span
	set.Region = HighMemoryWide{
		base:         rdram.FramebufferWideBank,
		EndExclusive: rdram.FramebufferExpansion + span + span,
	}
	return set
}

func (set Set) String() string {
	s := fmt.Sprintf("buffers: %#08x %#08x, stride: %d", set.Buffers[0], set.Buffers[1], set.Stride)
	switch r := set.Region.(type) {
	case LowMemory:
		s = fmt.Sprintf("%s\nlow memory region from %#08x", s, r.Base())
	case HighMemoryTall:
		s = fmt.Sprintf("%s\nhigh memory region from %#08x", s, r.Base())
	case HighMemoryWide:
		s = fmt.Sprintf("%s\nhigh memory region from %#08x to %#08x", s, r.Base(), r.EndExclusive)
	}
	return s
}
