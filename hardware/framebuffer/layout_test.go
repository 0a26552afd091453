package framebuffer

import (
	"testing"

	"github.com/modeseven/test64/hardware/rdram"
	"github.com/modeseven/test64/hardware/spec"
	"github.com/modeseven/test64/test"
)

func TestLayoutLowMemory(t *testing.T) {
	// without expansion memory both buffers sit in the low bank, adjacent,
	// whatever the mode
	for m := range spec.NumResolutions {
		mode := spec.VideoMode(m)
		res := spec.Resolutions[mode.ResolutionIdx()]
		span := res.W * res.H * BytesPerPixel

		set := Layout(mode, spec.Resolutions, false)
		test.ExpectEquality(t, set.Buffers[0], uint32(rdram.FramebufferNoExpansion))
		test.ExpectEquality(t, set.Buffers[1], set.Buffers[0]+span)
		test.ExpectEquality(t, set.Stride, res.W*BytesPerPixel)

		r, ok := set.Region.(LowMemory)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, r.Base(), uint32(rdram.FramebufferNoExpansion))
	}
}

func TestLayoutExpansionTall(t *testing.T) {
	set := Layout(spec.ModeTall, spec.Resolutions, true)

	span := uint32(640 * 480 * BytesPerPixel)
	test.ExpectEquality(t, set.Buffers[0], uint32(rdram.FramebufferExpansion))
	test.ExpectEquality(t, set.Buffers[1], set.Buffers[0]+span)

	r, ok := set.Region.(HighMemoryTall)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r.Base(), uint32(rdram.FramebufferExpansion))
}

func TestLayoutExpansionWide(t *testing.T) {
	set := Layout(spec.ModeGame, spec.Resolutions, true)

	span := uint32(320 * 240 * BytesPerPixel)
	test.ExpectEquality(t, set.Buffers[0], uint32(rdram.FramebufferExpansion))
	test.ExpectEquality(t, set.Buffers[1], set.Buffers[0]+span)

	// the wide region's base is the separate bank window while its end is
	// counted from the buffers. the two bases genuinely differ
	r, ok := set.Region.(HighMemoryWide)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r.Base(), uint32(rdram.FramebufferWideBank))
	test.ExpectEquality(t, r.EndExclusive, uint32(rdram.FramebufferExpansion)+span+span)
	test.ExpectInequality(t, r.Base(), set.Buffers[0])
}

func TestLayoutStretched(t *testing.T) {
	// a 50Hz session lays out from its stretched table
	table := spec.Resolutions
	spec.StretchPAL(&table)

	set := Layout(spec.ModeGame, table, false)
	test.ExpectEquality(t, set.Buffers[1], set.Buffers[0]+320*260*BytesPerPixel)

	// the stretch does not move the tall mode out of the tall bank
	set = Layout(spec.ModeTall, table, true)
	_, ok := set.Region.(HighMemoryTall)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, set.Region.(HighMemoryTall).Base(), uint32(rdram.FramebufferExpansion))

	// the wide branch still applies to the other modes
	set = Layout(spec.ModeGame, table, true)
	_, ok = set.Region.(HighMemoryWide)
	test.ExpectSuccess(t, ok)
}
