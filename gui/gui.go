package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/modeseven/test64/io"
	"github.com/modeseven/test64/ui"
	"github.com/modeseven/test64/version"
)

type gui struct {
	started bool

	endGui chan bool
	u      *ui.UI

	image  *ebiten.Image
	width  int
	height int

	paused bool

	inputHandler *input.Handler
	inputSystem  input.System
}

const (
	ActionModeCycle   = input.Action(io.ModeCycle)
	ActionOverlayPush = input.Action(io.OverlayPush)
	ActionToggleBlank = input.Action(io.ToggleBlank)
	ActionNudgeSwap   = input.Action(io.NudgeSwap)
)

func (g *gui) initialise() {
	keymap := input.Keymap{
		ActionModeCycle:   {input.KeyGamepadUp, input.KeyM},
		ActionOverlayPush: {input.KeyGamepadA, input.KeyO},
		ActionToggleBlank: {input.KeyGamepadB, input.KeyB},
		ActionNudgeSwap:   {input.KeyGamepadDown, input.KeyN},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)
	g.started = true
}

func (g *gui) input() {
	g.inputSystem.Update()

	var inp io.Input

	if g.inputHandler.ActionIsJustPressed(ActionModeCycle) {
		inp = io.Input{Action: io.ModeCycle}
	}
	if g.inputHandler.ActionIsJustPressed(ActionOverlayPush) {
		inp = io.Input{Action: io.OverlayPush}
	}
	if g.inputHandler.ActionIsJustPressed(ActionToggleBlank) {
		inp = io.Input{Action: io.ToggleBlank}
	}
	if g.inputHandler.ActionIsJustPressed(ActionNudgeSwap) {
		inp = io.Input{Action: io.NudgeSwap}
	}

	if inp.Action != io.Nothing {
		select {
		case g.u.UserInput <- inp:
		default:
		}
	}
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	g.input()

	select {
	case state := <-g.u.State:
		g.paused = state == ui.StatePaused
		if g.paused {
			ebiten.SetWindowTitle(fmt.Sprintf("%s [paused]", version.Title()))
		} else {
			ebiten.SetWindowTitle(version.Title())
		}
	default:
	}

	select {
	case <-g.endGui:
		return ebiten.Termination
	case img := <-g.u.SetImage:
		dim := img.Bounds()
		if g.image == nil || g.width != dim.Dx() || g.height != dim.Dy() {
			g.width = dim.Dx()
			g.height = dim.Dy()
			g.image = ebiten.NewImage(g.width, g.height)
		}
		g.image.WritePixels(img.Pix)
	default:
	}
	return nil
}

// the low resolution modes use wide pixels. the tall modes are already 640
// wide and map one-to-one
func (g *gui) pixelWidth() int {
	if g.width > 320 {
		return 1
	}
	return 2
}

func (g *gui) Draw(screen *ebiten.Image) {
	if g.image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(g.pixelWidth()), 1)
		screen.DrawImage(g.image, op)
	}
}

func (g *gui) Layout(width, height int) (int, int) {
	if g.image != nil {
		return g.width * g.pixelWidth(), g.height
	}
	return width, height
}

func Launch(endGui chan bool, u *ui.UI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := &gui{
		endGui: endGui,
		u:      u,
	}

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	return ebiten.RunGame(g)
}
