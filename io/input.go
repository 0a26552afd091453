package io

type Action int

type Input struct {
	Action  Action
	Release bool
}

const (
	Nothing Action = iota
	ModeCycle
	OverlayPush
	ToggleBlank
	NudgeSwap
)
