package movie

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m64kit/m64/section"
)

func states(words ...uint32) []section.ControllerState {
	out := make([]section.ControllerState, len(words))
	for i, w := range words {
		out[i] = section.NewControllerState(w)
	}

	return out
}

func TestFrames(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		controllers int
		sizes       []int
	}{
		{name: "Exact multiple", n: 6, controllers: 2, sizes: []int{2, 2, 2}},
		{name: "Short last group", n: 7, controllers: 3, sizes: []int{3, 3, 1}},
		{name: "Single controller", n: 3, controllers: 1, sizes: []int{1, 1, 1}},
		{name: "Fewer records than controllers", n: 2, controllers: 4, sizes: []int{2}},
		{name: "No records", n: 0, controllers: 4, sizes: nil},
		{name: "Zero controllers", n: 5, controllers: 0, sizes: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := make([]uint32, tt.n)
			for i := range words {
				words[i] = uint32(i)
			}
			inputs := states(words...)

			var sizes []int
			next := 0
			for i, frame := range Frames(inputs, tt.controllers) {
				require.Equal(t, len(sizes), i)
				for _, s := range frame {
					require.Equal(t, uint32(next), s.Uint32())
					next++
				}
				sizes = append(sizes, len(frame))
			}

			require.Equal(t, tt.sizes, sizes)
			require.Equal(t, len(tt.sizes), FrameCount(tt.n, tt.controllers))
		})
	}
}

func TestFrames_Restartable(t *testing.T) {
	seq := Frames(states(1, 2, 3, 4), 2)

	count := func() int {
		n := 0
		for range seq {
			n++
		}

		return n
	}
	require.Equal(t, 2, count())
	require.Equal(t, 2, count())
}

func TestFrames_EarlyStop(t *testing.T) {
	seen := 0
	for range Frames(states(1, 2, 3, 4, 5, 6), 1) {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

func TestFrames_GroupsAreCapped(t *testing.T) {
	inputs := states(1, 2, 3, 4)
	for i, frame := range Frames(inputs, 2) {
		if i == 0 {
			require.Equal(t, 2, cap(frame))
			_ = append(frame, section.NewControllerState(99))
		}
	}
	require.Equal(t, uint32(3), inputs[2].Uint32())
}

func TestFrame(t *testing.T) {
	inputs := states(1, 2, 3, 4, 5)

	require.Equal(t, states(1, 2), Frame(inputs, 2, 0))
	require.Equal(t, states(5), Frame(inputs, 2, 2))
	require.Nil(t, Frame(inputs, 2, 3))
	require.Nil(t, Frame(inputs, 2, -1))
	require.Nil(t, Frame(inputs, 0, 0))
}
