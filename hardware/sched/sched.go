// Package sched is the scheduler and interrupt service for the video
// subsystem. It owns the vertical-blank heartbeat and the interrupt-disable
// token that guards hardware register installation.
package sched

import (
	"sync"
	"time"

	"github.com/modeseven/test64/hardware/spec"
)

// Event is a notification delivered to registered clients
type Event int

const (
	EventVBlank Event = iota
	EventPreReset
)

// Client receives scheduler events on a buffered channel. notifications that
// arrive while the channel is full are dropped, matching the no-block message
// queue semantics of the original OS
type Client struct {
	C chan Event
}

// Token is the saved interrupt state returned by DisableInterrupts. it must
// be handed back to RestoreInterrupts on every exit path; callers defer the
// restore immediately after acquisition
type Token struct {
	mask uint32
}

// Scheduler drives the periodic vertical-blank event and serialises access to
// the timing registers
type Scheduler struct {
	tick  *time.Ticker
	nudge chan bool

	// the payload function for the Wait() method
	wait func()

	crit sync.Mutex
	mask uint32

	clients   []*Client
	clientsMu sync.Mutex
}

// the interrupt enable bit of the modelled status register
const maskIE = 0x0001

// Create a scheduler beating at the standard's refresh rate
func Create(std spec.Spec) *Scheduler {
	s := &Scheduler{
		nudge: make(chan bool, 1),
		mask:  maskIE,
	}

	d := time.Second / time.Duration(std.RefreshHz)

	// the wait() function deliberately starts slow and switches to the ticker
	// after a few nudges. this gives the front end time to settle before the
	// swap cadence becomes strict
	var ct int
	s.wait = func() {
		select {
		case <-time.After(time.Duration(float64(d) * 1.025)):
		case <-s.nudge:
			ct++
			if ct > 2 {
				s.tick = time.NewTicker(d)
				s.wait = func() {
					select {
					case <-s.tick.C:
					case <-s.nudge:
					}
				}
			}
		}
	}

	return s
}

// AddClient registers a message channel of the given depth. events are
// dropped rather than blocking when the channel is full
func (s *Scheduler) AddClient(depth int) *Client {
	c := &Client{
		C: make(chan Event, depth),
	}
	s.clientsMu.Lock()
	s.clients = append(s.clients, c)
	s.clientsMu.Unlock()
	return c
}

// WaitVBlank blocks until the next vertical-blank boundary and notifies all
// registered clients
func (s *Scheduler) WaitVBlank() {
	s.wait()

	s.clientsMu.Lock()
	for _, c := range s.clients {
		select {
		case c.C <- EventVBlank:
		default:
		}
	}
	s.clientsMu.Unlock()
}

// Nudge interrupts the current WaitVBlank early
func (s *Scheduler) Nudge() {
	select {
	case s.nudge <- true:
	default:
	}
}

// DisableInterrupts masks maskable interrupts and returns the previous state.
// the token must be returned with RestoreInterrupts on all exit paths. the
// mask is intended to be held only across a register write+verify sequence,
// never across layout or resolution computation
func (s *Scheduler) DisableInterrupts() Token {
	s.crit.Lock()
	t := Token{mask: s.mask}
	s.mask &^= maskIE
	return t
}

// RestoreInterrupts reinstates the interrupt state saved in the token
func (s *Scheduler) RestoreInterrupts(t Token) {
	s.mask = t.mask
	s.crit.Unlock()
}

// Masked reports whether maskable interrupts are currently disabled
func (s *Scheduler) Masked() bool {
	return s.mask&maskIE != maskIE
}
