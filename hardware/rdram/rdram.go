// Package rdram models the console's unified memory from the point of view of
// the video subsystem. The only property that matters to framebuffer placement
// is the detected memory size: the base 4MB fitment or the 8MB fitment with
// the expansion bank present.
package rdram

const (
	BaseSize     = 0x0040_0000
	ExpandedSize = 0x0080_0000
)

// the fixed framebuffer bank bases. addresses are physical offsets into RDRAM
const (
	// both image buffers when only the base fitment is present
	FramebufferNoExpansion = 0x0035_8000

	// both image buffers when the expansion bank is present
	FramebufferExpansion = 0x0060_0000

	// the region start reported for the non-tall expanded-memory layout. this
	// is a different bank window to FramebufferExpansion even though the
	// buffers themselves are placed at FramebufferExpansion
	FramebufferWideBank = 0x0020_0000
)

type RDRAM struct {
	data []byte
}

// Create allocates the memory model. memory detection itself is the IPL's
// responsibility; the caller passes the result in
func Create(expansion bool) *RDRAM {
	size := BaseSize
	if expansion {
		size = ExpandedSize
	}
	return &RDRAM{
		data: make([]byte, size),
	}
}

func (r *RDRAM) Size() uint32 {
	return uint32(len(r.data))
}

func (r *RDRAM) Expanded() bool {
	return len(r.data) == ExpandedSize
}

// Pixel reads a 16bit big-endian value at the physical address. out of range
// addresses read as zero, matching open-bus behaviour closely enough for a
// harness
func (r *RDRAM) Pixel(addr uint32) uint16 {
	if int(addr)+1 >= len(r.data) {
		return 0
	}
	return uint16(r.data[addr])<<8 | uint16(r.data[addr+1])
}

// SetPixel writes a 16bit big-endian value at the physical address. out of
// range writes are dropped
func (r *RDRAM) SetPixel(addr uint32, v uint16) {
	if int(addr)+1 >= len(r.data) {
		return
	}
	r.data[addr] = uint8(v >> 8)
	r.data[addr+1] = uint8(v)
}
