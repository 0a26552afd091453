package framebuffer

import (
	"testing"

	"github.com/modeseven/test64/test"
)

func TestScratchHalves(t *testing.T) {
	var s Scratch
	s.Zero()

	test.ExpectEquality(t, len(s.Half(0)), ScratchSize/2)
	test.ExpectEquality(t, len(s.Half(1)), ScratchSize/2)
	test.ExpectEquality(t, s.Count(), uint16(0))

	s.Active()[0] = 0xff
	s.Record()
	s.Record()
	test.ExpectEquality(t, s.Count(), uint16(2))

	// swapping activates the other half with a fresh count. the old half's
	// data and count survive until it becomes active again
	s.SwapHalves()
	test.ExpectEquality(t, s.Count(), uint16(0))
	test.ExpectEquality(t, s.Half(0)[0], uint8(0xff))
	test.ExpectEquality(t, s.Active()[0], uint8(0x00))

	s.SwapHalves()
	test.ExpectEquality(t, s.Count(), uint16(0))

	s.Record()
	s.Zero()
	test.ExpectEquality(t, s.Count(), uint16(0))
	test.ExpectEquality(t, s.Half(0)[0], uint8(0x00))
}
