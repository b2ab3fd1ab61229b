package tui

import "github.com/Zahr1729/Iron/player"

// UpdateMsg carries the updates that were pending when the model last
// read from the render thread. Runs of CurrentSample are collapsed to
// their last value.
type UpdateMsg struct {
	Updates []player.Update
}

// closedMsg is sent once the update channel is exhausted.
type closedMsg struct{}
