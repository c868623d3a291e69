package movie

import (
	"iter"

	"github.com/m64kit/m64/section"
)

// Frames groups inputs into consecutive frames of controllers records each.
//
// Each yielded group is a sub-slice of inputs, capped so that appending to it
// cannot overwrite the following frame. If len(inputs) is not a multiple of
// controllers, the last group is shorter. A non-positive controllers value
// yields nothing.
//
// The position of a record inside its group is the polling order of the
// emulator; it does not necessarily match the player number seen by the game.
func Frames(inputs []section.ControllerState, controllers int) iter.Seq2[int, []section.ControllerState] {
	return func(yield func(int, []section.ControllerState) bool) {
		if controllers <= 0 {
			return
		}

		frame := 0
		for start := 0; start < len(inputs); start += controllers {
			end := min(start+controllers, len(inputs))
			if !yield(frame, inputs[start:end:end]) {
				return
			}
			frame++
		}
	}
}

// FrameCount returns the number of groups Frames yields for n records.
func FrameCount(n, controllers int) int {
	if controllers <= 0 || n <= 0 {
		return 0
	}

	return (n + controllers - 1) / controllers
}

// Frame returns the i-th group, or nil when i is out of range.
func Frame(inputs []section.ControllerState, controllers, i int) []section.ControllerState {
	if controllers <= 0 || i < 0 {
		return nil
	}

	start := i * controllers
	if start >= len(inputs) {
		return nil
	}
	end := min(start+controllers, len(inputs))

	return inputs[start:end:end]
}
