package main

import "github.com/opd-ai/go-asteroids/pkg/entity"

// autopilot plays without a keyboard: it keeps firing while sweeping to the
// right, with a short burst of thrust every few seconds. Holding fire also
// restarts the game from the game over screen.
type autopilot struct {
	tick int
}

func (a *autopilot) Poll() entity.Input {
	t := a.tick
	a.tick++

	return entity.Input{
		Thrust:    t%180 < 15,
		TurnRight: t%120 < 60,
		Fire:      true,
	}
}
