package ui

import (
	"image"

	"github.com/modeseven/test64/io"
)

type State int

const (
	StatePaused State = iota
	StateRunning
)

// UI is the bundle of channels connecting the gui and the debugger. both ends
// treat every channel as non-blocking
type UI struct {
	SetImage  chan *image.RGBA
	UserInput chan io.Input
	State     chan State
}

func NewUI() *UI {
	return &UI{
		SetImage:  make(chan *image.RGBA, 1),
		UserInput: make(chan io.Input, 1),
		State:     make(chan State, 1),
	}
}
