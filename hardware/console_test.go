package hardware_test

import (
	"testing"

	"github.com/modeseven/test64/hardware"
	"github.com/modeseven/test64/hardware/spec"
	"github.com/modeseven/test64/test"
	"github.com/modeseven/test64/ui"
)

func TestSwapAfterInitialize(t *testing.T) {
	con := hardware.Create(spec.NTSC, ui.NewUI())
	con.Initialize(spec.ModeGame, false)

	// after initialisation buffer 0 is on display
	test.ExpectEquality(t, con.FB.Current(), con.Set.Buffers[0])
	test.ExpectEquality(t, con.FB.Resolution(true), spec.Resolutions[spec.ModeGame.ResolutionIdx()])

	// one swap and buffer 1 is on display
	con.FB.Swap()
	test.ExpectEquality(t, con.FB.Current(), con.Set.Buffers[1])
	test.ExpectEquality(t, con.FB.Next(), con.Set.Buffers[0])
}

func TestStep(t *testing.T) {
	con := hardware.Create(spec.NTSC, ui.NewUI())
	con.Initialize(spec.ModeGame, true)

	// the display is blanked across a mode change
	test.ExpectSuccess(t, con.VI.Blanked())

	prev := con.FB.Current()
	for i := range 15 {
		// nudge the scheduler so the test does not sit out real vertical-blank
		// intervals
		con.Sched.Nudge()
		test.ExpectSuccess(t, con.Step())

		test.DemandEquality(t, con.Frame(), i+1)
		test.ExpectInequality(t, con.FB.Current(), prev)
		prev = con.FB.Current()

		// both field origins follow the displayed buffer
		test.ExpectEquality(t, con.VI.Fld(0).Origin, con.FB.Current())
		test.ExpectEquality(t, con.VI.Fld(1).Origin, con.FB.Current())
	}

	// blanking lifts once the first frames have been produced
	test.ExpectFailure(t, con.VI.Blanked())
}

func TestReinitialize(t *testing.T) {
	con := hardware.Create(spec.NTSC, ui.NewUI())
	con.Initialize(spec.ModeGame, true)

	con.Sched.Nudge()
	test.ExpectSuccess(t, con.Step())
	test.ExpectEquality(t, con.Frame(), 1)

	con.Reinitialize(spec.ModeTall)
	test.ExpectEquality(t, con.Mode, spec.ModeTall)
	test.ExpectEquality(t, con.Frame(), 0)
	test.ExpectSuccess(t, con.VI.Blanked())
	test.ExpectEquality(t, con.FB.Resolution(true), spec.Resolution{W: 640, H: 480})
	test.ExpectEquality(t, con.FB.Current(), con.Set.Buffers[0])
}

func TestVideoSetup(t *testing.T) {
	con := hardware.Create(spec.NTSC, ui.NewUI())
	con.Initialize(spec.ModeGame, false)

	con.VideoSetup(true)
	test.ExpectEquality(t, con.Mode, spec.ModeMenu)
	con.VideoSetup(false)
	test.ExpectEquality(t, con.Mode, spec.ModeGame)
}

func TestStretchedSession(t *testing.T) {
	con := hardware.Create(spec.PAL, ui.NewUI())
	con.Initialize(spec.ModeGame, false)

	// the 50Hz session stretches its own copy of the resolution table
	test.ExpectEquality(t, con.FB.Resolution(true), spec.Resolution{W: 320, H: 260})
	test.ExpectEquality(t, con.Set.Buffers[1], con.Set.Buffers[0]+320*260*2)

	// the shared table is untouched
	test.ExpectEquality(t, spec.Resolutions[spec.ModeGame.ResolutionIdx()], spec.Resolution{W: 320, H: 240})
}

func TestFrameRate(t *testing.T) {
	con := hardware.Create(spec.NTSC, ui.NewUI())
	con.Initialize(spec.ModeGame, false)

	// the default divisor gives a 30fps update rate on a 60Hz display
	test.ExpectEquality(t, con.FrameRate(), uint32(30))

	con.SetUpdateRate(1)
	test.ExpectEquality(t, con.FrameRate(), uint32(60))
	con.SetUpdateRate(3)
	test.ExpectEquality(t, con.FrameRate(), uint32(20))

	// a zero divisor clamps rather than dividing by zero
	con.SetUpdateRate(0)
	test.ExpectEquality(t, con.FrameRate(), uint32(60))
}

func TestCorrections(t *testing.T) {
	con := hardware.Create(spec.NTSC, ui.NewUI())
	con.Initialize(spec.ModeGame, false)

	before := con.VI.Image()

	// with apply false nothing happens until the next mode change
	con.SetCorrections(false, 2, 3)
	test.ExpectEquality(t, con.VI.Image(), before)

	con.Reinitialize(con.Mode)
	after := con.VI.Image()
	test.ExpectEquality(t, after.Com.HStart, before.Com.HStart+2*0x20000+2*0x2)
	test.ExpectEquality(t, after.Fld[0].VStart, before.Fld[0].VStart+3*0x20000+3*0x2)

	// with apply true the timing is reprogrammed immediately
	con.SetCorrections(true, 0, 0)
	test.ExpectEquality(t, con.VI.Image().Com.HStart, before.Com.HStart)
}
