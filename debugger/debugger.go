package debugger

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"

	"github.com/modeseven/test64/hardware"
	"github.com/modeseven/test64/hardware/overlay"
	"github.com/modeseven/test64/hardware/spec"
	"github.com/modeseven/test64/io"
	"github.com/modeseven/test64/logger"
	"github.com/modeseven/test64/ui"
)

type input struct {
	s   string
	err error
}

type debugger struct {
	guiQuit chan bool
	sig     chan os.Signal
	input   chan input

	// channels passed to the debugger during creation via the UI type
	state     chan ui.State
	userInput chan io.Input

	con    *hardware.Console
	styles styles

	// the handle given to the next overlay pushed from the front end
	overlaySource uint32
}

// the mode cycle driven by the front end's mode key
var modeCycle = []spec.VideoMode{spec.ModeGame, spec.ModeMenu, spec.ModeTall}

func (m *debugger) cycleMode() {
	for i, md := range modeCycle {
		if md == m.con.Mode {
			m.con.Reinitialize(modeCycle[(i+1)%len(modeCycle)])
			return
		}
	}
	m.con.Reinitialize(modeCycle[0])
}

// setState tells the front end about a run-state change. the channel is
// treated as non-blocking at both ends so a missed update only affects the
// window title
func (m *debugger) setState(state ui.State) {
	select {
	case m.state <- state:
	default:
	}
}

// userAction applies an input action sent by the front end
func (m *debugger) userAction(inp io.Input) {
	if inp.Release {
		return
	}

	switch inp.Action {
	case io.ModeCycle:
		m.cycleMode()
	case io.OverlayPush:
		m.overlaySource++
		res := m.con.FB.Resolution(true)
		m.con.Overlays.Push(overlay.Descriptor{
			Source: m.overlaySource,
			U:      float32(res.W / 2),
			V:      float32(res.H / 2),
			W:      1.0,
		})
	case io.ToggleBlank:
		m.con.Blank(!m.con.VI.Blanked())
	case io.NudgeSwap:
		m.con.Sched.Nudge()
	}
}

// drain pending front end input without blocking
func (m *debugger) drainUserInput() {
	for {
		select {
		case inp := <-m.userInput:
			m.userAction(inp)
		default:
			return
		}
	}
}

// step advances the console by the given number of frames
//
// returns true if quit signal has been received
func (m *debugger) step(ct int) bool {
	for range ct {
		select {
		case <-m.guiQuit:
			return true
		default:
		}

		m.drainUserInput()

		err := m.con.Step()
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			return false
		}
	}

	if ct > 1 {
		fmt.Println(m.styles.debugger.Render(
			fmt.Sprintf("%d frames stepped", ct),
		))
	}
	fmt.Println(m.styles.video.Render(m.con.Status()))

	return false
}

// returns true if quit signal has been received
func (m *debugger) run() bool {
	fmt.Println(m.styles.debugger.Render("running"))

	var (
		endRunErr = errors.New("end run")
		quitErr   = errors.New("quit")
	)

	// hook is called after every frame
	hook := func() error {
		select {
		case <-m.sig:
			return endRunErr
		case <-m.guiQuit:
			return quitErr
		case inp := <-m.userInput:
			m.userAction(inp)
		default:
		}
		return nil
	}

	m.setState(ui.StateRunning)
	err := m.con.Run(nil, hook)
	m.setState(ui.StatePaused)

	if errors.Is(err, quitErr) {
		return true
	}

	if err != nil && !errors.Is(err, endRunErr) {
		fmt.Println(m.styles.err.Render(err.Error()))
	}

	fmt.Println(m.styles.debugger.Render("paused"))
	fmt.Println(m.styles.video.Render(m.con.Status()))

	return false
}

func (m *debugger) loop() {
	for {
		fmt.Print("> ")

		var inp input
		select {
		case <-m.guiQuit:
			return
		case inp = <-m.input:
		}
		if inp.err != nil {
			return
		}

		cmd := strings.Fields(strings.ToUpper(inp.s))
		if len(cmd) == 0 {
			if m.step(1) {
				return
			}
			continue // for loop
		}

		switch cmd[0] {
		case "RUN":
			if m.run() {
				return
			}

		case "STEP":
			ct := 1
			if len(cmd) > 1 {
				n, err := strconv.Atoi(cmd[1])
				if err != nil || n < 1 {
					fmt.Println(m.styles.err.Render(
						fmt.Sprintf("STEP argument is not a frame count: %s", cmd[1]),
					))
					continue // for loop
				}
				ct = n
			}
			if m.step(ct) {
				return
			}

		case "SWAP":
			// a manual swap outside the vertical-blank cadence. useful for
			// inspection but the visual result is undefined by contract
			m.con.FB.Swap()
			fmt.Println(m.styles.video.Render(m.con.FB.String()))

		case "MODE":
			if len(cmd) < 2 {
				fmt.Println(m.styles.video.Render(
					fmt.Sprintf("mode %d", m.con.Mode),
				))
				continue // for loop
			}
			n, err := strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("MODE argument is not a mode number: %s", cmd[1]),
				))
				continue // for loop
			}
			m.con.Reinitialize(spec.VideoMode(n))
			fmt.Println(m.styles.video.Render(m.con.Status()))

		case "MENU":
			m.con.VideoSetup(true)
			fmt.Println(m.styles.video.Render(m.con.Status()))

		case "GAME":
			m.con.VideoSetup(false)
			fmt.Println(m.styles.video.Render(m.con.Status()))

		case "OVERLAY":
			if len(cmd) < 4 {
				fmt.Println(m.styles.err.Render("OVERLAY requires u, v and w values"))
				continue // for loop
			}
			var vals [3]float64
			var err error
			for i := range vals {
				vals[i], err = strconv.ParseFloat(cmd[i+1], 32)
				if err != nil {
					break // for vals loop
				}
			}
			if err != nil {
				fmt.Println(m.styles.err.Render("OVERLAY values must be numbers"))
				continue // for loop
			}
			var kind uint64
			if len(cmd) > 4 {
				kind, err = strconv.ParseUint(cmd[4], 0, 8)
				if err != nil {
					fmt.Println(m.styles.err.Render("OVERLAY kind must be an 8bit number"))
					continue // for loop
				}
			}
			m.overlaySource++
			m.con.Overlays.Push(overlay.Descriptor{
				Source: m.overlaySource,
				U:      float32(vals[0]),
				V:      float32(vals[1]),
				W:      float32(vals[2]),
				Kind:   uint8(kind),
			})
			fmt.Println(m.styles.debugger.Render(
				fmt.Sprintf("overlay queued in slot %d", (m.con.Overlays.Index()+overlay.Capacity-1)%overlay.Capacity),
			))

		case "CORRECT":
			if len(cmd) < 3 {
				fmt.Println(m.styles.err.Render("CORRECT requires hStart and vScale values"))
				continue // for loop
			}
			h, herr := strconv.ParseInt(cmd[1], 10, 8)
			v, verr := strconv.ParseInt(cmd[2], 10, 8)
			if herr != nil || verr != nil {
				fmt.Println(m.styles.err.Render("CORRECT values must be signed 8bit numbers"))
				continue // for loop
			}
			m.con.SetCorrections(true, int8(h), int8(v))
			fmt.Println(m.styles.video.Render(m.con.VI.Status()))

		case "RATE":
			if len(cmd) < 2 {
				fmt.Println(m.styles.video.Render(
					fmt.Sprintf("frame rate %dfps", m.con.FrameRate()),
				))
				continue // for loop
			}
			n, err := strconv.ParseUint(cmd[1], 10, 32)
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("RATE argument is not a divisor: %s", cmd[1]),
				))
				continue // for loop
			}
			m.con.SetUpdateRate(uint32(n))
			fmt.Println(m.styles.video.Render(
				fmt.Sprintf("frame rate %dfps", m.con.FrameRate()),
			))

		case "BLANK":
			if len(cmd) > 1 && cmd[1] == "OFF" {
				m.con.Blank(false)
			} else {
				m.con.Blank(true)
			}
			fmt.Println(m.styles.video.Render(m.con.VI.Status()))

		case "VI":
			fmt.Println(m.styles.video.Render(m.con.VI.Status()))

		case "FB":
			fmt.Println(m.styles.mem.Render(m.con.Set.String()))
			fmt.Println(m.styles.mem.Render(m.con.FB.String()))

		case "LETTERBOX":
			m.con.FB.SetLetterbox(!(len(cmd) > 1 && cmd[1] == "OFF"))
			fmt.Println(m.styles.video.Render(
				fmt.Sprintf("letterbox %v, displayed encoding %08x",
					m.con.FB.Letterbox(), m.con.FB.EncodedResolution(true)),
			))

		case "RES":
			fmt.Println(m.styles.video.Render(
				fmt.Sprintf("displayed %08x, drawing %08x",
					m.con.FB.EncodedResolution(true), m.con.FB.EncodedResolution(false)),
			))

		case "RAM":
			fmt.Println(m.styles.mem.Render(
				fmt.Sprintf("%dMB fitted (expansion %v)", m.con.RAM.Size()>>20, m.con.RAM.Expanded()),
			))

		case "RESET":
			m.con.Reinitialize(m.con.Mode)
			fmt.Println(m.styles.debugger.Render("video reinitialised"))
			fmt.Println(m.styles.video.Render(m.con.Status()))

		case "LOG":
			logger.Tail(os.Stdout, -1)

		case "QUIT":
			return

		default:
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("unrecognised command: %s", strings.Join(cmd, " ")),
			))
		}
	}
}

const programName = "test64"

func Launch(guiQuit chan bool, u *ui.UI, args []string) error {
	var std string
	var mode int
	var expansion bool
	var demoOverlay bool
	var profile bool

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.StringVar(&std, "spec", "NTSC", "TV specification of the console: NTSC, PAL or MPAL")
	flgs.IntVar(&mode, "mode", int(spec.ModeGame), "video mode selected at startup")
	flgs.BoolVar(&expansion, "expansion", true, "expansion memory is fitted")
	flgs.BoolVar(&demoOverlay, "overlay", false, "queue a demonstration overlay at startup")
	flgs.BoolVar(&profile, "profile", false, "create CPU profile for the harness")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	if len(flgs.Args()) > 0 {
		return fmt.Errorf("too many arguments to debugger")
	}

	var s spec.Spec
	switch strings.ToUpper(std) {
	case "NTSC":
		s = spec.NTSC
	case "PAL":
		s = spec.PAL
	case "MPAL":
		s = spec.MPAL
	default:
		return fmt.Errorf("unsupported specification: %s", std)
	}

	m := &debugger{
		guiQuit:   guiQuit,
		sig:       make(chan os.Signal, 1),
		input:     make(chan input, 1),
		state:     u.State,
		userInput: u.UserInput,
		styles:    newStyles(),
	}
	m.con = hardware.Create(s, u)
	m.con.Initialize(spec.VideoMode(mode), expansion)

	if demoOverlay {
		m.userAction(io.Input{Action: io.OverlayPush})
	}

	signal.Notify(m.sig, syscall.SIGINT)

	go func() {
		r := bufio.NewReader(os.Stdin)
		b := make([]byte, 256)
		for {
			n, err := r.Read(b)
			select {
			case m.input <- input{
				s:   strings.TrimSpace(string(b[:n])),
				err: err,
			}:
			default:
			}
		}
	}()

	if profile {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Println(m.styles.video.Render(m.con.Status()))
	m.loop()

	return nil
}
