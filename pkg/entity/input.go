package entity

// Input is the key state sampled once per tick. Held keys repeat every tick.
type Input struct {
	Thrust    bool
	TurnLeft  bool
	TurnRight bool
	Fire      bool

	// Other is set while a key with no ship action is held. It only counts
	// toward Any.
	Other bool
}

// Any reports whether any key is held.
func (in Input) Any() bool {
	return in.Thrust || in.TurnLeft || in.TurnRight || in.Fire || in.Other
}
