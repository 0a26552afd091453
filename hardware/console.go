package hardware

import (
	"fmt"

	"github.com/modeseven/test64/hardware/clocks"
	"github.com/modeseven/test64/hardware/framebuffer"
	"github.com/modeseven/test64/hardware/overlay"
	"github.com/modeseven/test64/hardware/rdram"
	"github.com/modeseven/test64/hardware/sched"
	"github.com/modeseven/test64/hardware/spec"
	"github.com/modeseven/test64/hardware/vi"
	"github.com/modeseven/test64/logger"
	"github.com/modeseven/test64/ui"
)

// per-session counters consumed by collaborating subsystems. reset on every
// mode change
type counters struct {
	frame      int
	updateRate uint32
	blinkRate  int
	blankDelay int
}

// the number of frames the display stays blanked after a mode change
const blankFrames = 12

// depth of the scheduler client's event queue
const clientQueueDepth = 8

// Console is the video subsystem's composition root. it initialises the
// timing configurator, framebuffer layout, swap controller and overlay queue
// in dependency order and exposes the public API consumed by the rest of the
// engine
type Console struct {
	Standard spec.Spec
	Mode     spec.VideoMode

	// the session's copy of the resolution table. stretched once at startup
	// on 50Hz displays and immutable afterwards
	resolutions [spec.NumResolutions]spec.Resolution

	RAM      *rdram.RDRAM
	VI       *vi.Device
	Sched    *sched.Scheduler
	Set      framebuffer.Set
	FB       *framebuffer.Swap
	Overlays *overlay.Queue
	Scratch  framebuffer.Scratch

	client *sched.Client

	hStartCorrection int8
	vScaleCorrection int8

	counters counters

	u *ui.UI
}

// Create a console for the detected broadcast standard. the console is not
// usable until Initialize has been called
func Create(std spec.Spec, u *ui.UI) *Console {
	con := &Console{
		Standard:    std,
		VI:          &vi.Device{},
		Sched:       sched.Create(std),
		Overlays:    &overlay.Queue{},
		resolutions: spec.Resolutions,
		u:           u,
	}
	return con
}

// Initialize performs the startup sequence: detect memory, register with the
// scheduler, and bring up the requested mode
func (con *Console) Initialize(mode spec.VideoMode, expansion bool) {
	if con.Standard.ID == spec.PAL.ID {
		spec.StretchPAL(&con.resolutions)
	}

	con.RAM = rdram.Create(expansion)
	con.client = con.Sched.AddClient(clientQueueDepth)

	con.reinit(mode)

	con.Overlays.Enable(true)

	logger.Logf(logger.Allow, "video", "initialised %s mode %d (%dMB)",
		con.Standard.ID, mode, con.RAM.Size()>>20)
}

// Reinitialize brings up a new video mode on a running console
func (con *Console) Reinitialize(mode spec.VideoMode) {
	con.reinit(mode)
	logger.Logf(logger.Allow, "video", "mode change to %d", mode)
}

// the common mode bring-up path: compute timing, install it with interrupts
// masked, recompute the buffer layout, reset the swap state and the
// per-session counters, then blank the display until the first frame is
// ready
func (con *Console) reinit(mode spec.VideoMode) {
	con.Mode = mode

	con.installTiming()

	con.Set = framebuffer.Layout(mode, con.resolutions, con.RAM.Expanded())
	res := con.resolutions[mode.ResolutionIdx()]
	con.FB = framebuffer.NewSwap(con.Set, res)

	con.counters = counters{
		updateRate: 2,
		blinkRate:  5,
		blankDelay: blankFrames,
	}

	con.Scratch.Zero()

	con.Blank(true)
}

// Blank forces or lifts display blanking. the blanking registers are read by
// the refresh hardware so the write happens under the interrupt mask
func (con *Console) Blank(active bool) {
	tok := con.Sched.DisableInterrupts()
	defer con.Sched.RestoreInterrupts(tok)
	con.VI.Blank(active)
}

// installTiming computes the register image for the current mode and
// corrections and installs it. the interrupt mask is held only across the
// installation, never across the computation
func (con *Console) installTiming() {
	img := vi.Compute(con.Mode, con.Standard, con.hStartCorrection, con.vScaleCorrection)

	tok := con.Sched.DisableInterrupts()
	defer con.Sched.RestoreInterrupts(tok)
	con.VI.Activate(img)
}

// SetCorrections records the user's display corrections. with apply false the
// values only take effect on the next mode change
func (con *Console) SetCorrections(apply bool, hStart int8, vScale int8) {
	con.hStartCorrection = hStart
	con.vScaleCorrection = vScale

	if !apply {
		return
	}

	con.installTiming()
}

// VideoSetup reinitialises to one of the two preset modes
func (con *Console) VideoSetup(menu bool) {
	if menu {
		con.Reinitialize(spec.ModeMenu)
	} else {
		con.Reinitialize(spec.ModeGame)
	}
}

// SetUpdateRate changes the divisor applied to the refresh rate
func (con *Console) SetUpdateRate(rate uint32) {
	if rate < 1 {
		rate = 1
	}
	con.counters.updateRate = rate
}

// FrameRate returns the effective game update rate for the session
func (con *Console) FrameRate() uint32 {
	return con.Standard.RefreshHz / con.counters.updateRate
}

// Frame returns the number of frames produced since the last mode change
func (con *Console) Frame() int {
	return con.counters.frame
}

// Step produces one frame: draw into the back buffer, assemble the visible
// image for the front end, then swap at the vertical-blank boundary
func (con *Console) Step() error {
	con.drawTestCard()
	con.PushRender()

	con.Sched.WaitVBlank()

	// consume this frame's event from our own client queue so it never fills
	select {
	case <-con.client.C:
	default:
	}

	con.FB.Swap()
	con.VI.SetOrigin(0, con.FB.Current())
	con.VI.SetOrigin(1, con.FB.Current())

	if con.counters.blankDelay > 0 {
		con.counters.blankDelay--
		if con.counters.blankDelay == 0 {
			con.Blank(false)
		}
	}

	con.Scratch.SwapHalves()
	con.counters.frame++

	return nil
}

// Run steps the console until the stop channel is closed or the hook returns
// an error. the hook is called after every frame
func (con *Console) Run(stop chan bool, hook func() error) error {
	for {
		select {
		case <-stop:
			return nil
		default:
		}

		err := con.Step()
		if err != nil {
			return err
		}

		err = hook()
		if err != nil {
			return err
		}
	}
}

func (con *Console) Status() string {
	return fmt.Sprintf("%s (%.2fMHz DAC) mode %d: %s\nframe %d, update rate 1/%d, blink %d",
		con.Standard.ID, con.Standard.VIClock/clocks.Mhz, con.Mode, con.FB.String(),
		con.counters.frame, con.counters.updateRate, con.counters.blinkRate)
}
