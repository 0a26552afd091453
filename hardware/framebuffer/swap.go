package framebuffer

import (
	"fmt"

	"github.com/modeseven/test64/hardware/spec"
)

// Swap owns the current/next buffer indices and is the only mutation path
// for switching the visible buffer.
//
// Swap() must be called exactly once per display refresh interval,
// synchronised to the vertical-blank signal by the scheduler. calling it more
// often is a caller error: the visual result is undefined but nothing
// crashes.
type Swap struct {
	set Set

	// the index of the buffer currently on display. the current and next
	// pointers are recomputed from the index on every swap, never stored
	// independently of it
	choice  int
	current uint32
	next    uint32

	// the resolution associated with each buffer. the entries only differ
	// transiently across a mode change
	resolutions [2]spec.Resolution

	// with the letterbox override active the encoded resolution reports a
	// square height-by-height image
	letterbox bool
}

// NewSwap resets the swap state for a freshly laid out buffer pair. display
// starts on buffer 0
func NewSwap(set Set, res spec.Resolution) *Swap {
	return &Swap{
		set:         set,
		choice:      0,
		current:     set.Buffers[0],
		next:        set.Buffers[1],
		resolutions: [2]spec.Resolution{res, res},
	}
}

// Swap toggles the visible buffer. exactly one XOR toggle per call; the
// pointers are derived from the toggled index so they are always consistent
// with it when Swap returns
func (s *Swap) Swap() {
	s.choice = s.choice ^ 1
	s.current = s.set.Buffers[s.choice]
	s.next = s.set.Buffers[s.choice^1]
}

// Current returns the address of the buffer on display
func (s *Swap) Current() uint32 {
	return s.current
}

// Next returns the address of the buffer being drawn into
func (s *Swap) Next() uint32 {
	return s.next
}

// Index returns the index of the buffer on display
func (s *Swap) Index() int {
	return s.choice
}

// Set returns the buffer pair the controller is indexing into
func (s *Swap) Set() Set {
	return s.set
}

// SetResolution records the resolution associated with one buffer index
func (s *Swap) SetResolution(idx int, res spec.Resolution) {
	s.resolutions[idx&0x1] = res
}

// Resolution returns the resolution of the buffer on display or, with
// forCurrent false, of the other buffer
func (s *Swap) Resolution(forCurrent bool) spec.Resolution {
	i := s.choice
	if !forCurrent {
		i ^= 1
	}
	return s.resolutions[i]
}

// SetLetterbox sets or clears the letterbox override
func (s *Swap) SetLetterbox(on bool) {
	s.letterbox = on
}

func (s *Swap) Letterbox() bool {
	return s.letterbox
}

// EncodedResolution returns a resolution encoded as 0xVVVV_HHHH. while the
// letterbox override is active the encoding of the displayed buffer is
// square, height by height. the back buffer's encoding never consults the
// override
func (s *Swap) EncodedResolution(forCurrent bool) uint32 {
	res := s.Resolution(forCurrent)
	if s.letterbox && forCurrent {
		return res.H<<16 | res.H
	}
	return res.H<<16 | res.W
}

// Within returns whether the given point is inside the displayed buffer's
// resolution. both coordinates must be inside
func (s *Swap) Within(x int32, y int32) bool {
	res := s.Resolution(true)
	return x >= 0 && uint32(x) < res.W && y >= 0 && uint32(y) < res.H
}

func (s *Swap) String() string {
	return fmt.Sprintf("displaying buffer %d (%#08x), drawing into %#08x", s.choice, s.current, s.next)
}
