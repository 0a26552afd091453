package framebuffer

import (
	"testing"

	"github.com/modeseven/test64/hardware/spec"
	"github.com/modeseven/test64/test"
)

func TestSwapToggle(t *testing.T) {
	set := Layout(spec.ModeGame, spec.Resolutions, false)
	s := NewSwap(set, spec.Resolutions[spec.ModeGame.ResolutionIdx()])

	// display starts on buffer 0
	test.ExpectEquality(t, s.Index(), 0)
	test.ExpectEquality(t, s.Current(), set.Buffers[0])
	test.ExpectEquality(t, s.Next(), set.Buffers[1])

	// one swap and buffer 1 is on display
	s.Swap()
	test.ExpectEquality(t, s.Index(), 1)
	test.ExpectEquality(t, s.Current(), set.Buffers[1])
	test.ExpectEquality(t, s.Next(), set.Buffers[0])

	// a second swap returns to the starting state
	s.Swap()
	test.ExpectEquality(t, s.Index(), 0)
	test.ExpectEquality(t, s.Current(), set.Buffers[0])

	// the two pointers never coincide
	for range 5 {
		s.Swap()
		test.ExpectInequality(t, s.Current(), s.Next())
	}
}

func TestSwapResolution(t *testing.T) {
	set := Layout(spec.ModeGame, spec.Resolutions, false)
	res := spec.Resolutions[spec.ModeGame.ResolutionIdx()]
	s := NewSwap(set, res)

	// both buffers start with the mode's resolution
	test.ExpectEquality(t, s.Resolution(true), res)
	test.ExpectEquality(t, s.Resolution(false), res)
	test.ExpectEquality(t, s.EncodedResolution(true), res.H<<16|res.W)

	// across a transient mode change the two buffers can disagree
	other := spec.Resolution{W: 256, H: 224}
	s.SetResolution(1, other)
	test.ExpectEquality(t, s.Resolution(true), res)
	test.ExpectEquality(t, s.Resolution(false), other)

	s.Swap()
	test.ExpectEquality(t, s.Resolution(true), other)
	test.ExpectEquality(t, s.EncodedResolution(true), uint32(224<<16|256))

	// the letterbox override squares the displayed buffer's encoding but not
	// the resolution itself. the back buffer's encoding is unaffected
	s.SetLetterbox(true)
	test.ExpectEquality(t, s.EncodedResolution(true), uint32(224<<16|224))
	test.ExpectEquality(t, s.EncodedResolution(false), res.H<<16|res.W)
	test.ExpectEquality(t, s.Resolution(true), other)
	s.SetLetterbox(false)
	test.ExpectEquality(t, s.EncodedResolution(true), uint32(224<<16|256))
}

func TestSwapWithin(t *testing.T) {
	set := Layout(spec.ModeGame, spec.Resolutions, false)
	s := NewSwap(set, spec.Resolutions[spec.ModeGame.ResolutionIdx()])

	test.ExpectSuccess(t, s.Within(0, 0))
	test.ExpectSuccess(t, s.Within(319, 239))
	test.ExpectFailure(t, s.Within(320, 0))
	test.ExpectFailure(t, s.Within(0, 240))
	test.ExpectFailure(t, s.Within(-1, 0))
	test.ExpectFailure(t, s.Within(0, -1))
}
