package nodes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pipelined.dev/graph/nodes"
	"pipelined.dev/graph/signal"
)

const frames = 64

func stereoBlock(value float64) signal.Float64 {
	buf := signal.EmptyFloat64(2, frames)
	for ch := range buf {
		for i := range buf[ch] {
			buf[ch][i] = value
		}
	}
	return buf
}

func TestGainScales(t *testing.T) {
	tests := []struct {
		description string
		gain        float64
		input       float64
		expected    float64
	}{
		{"unity", 1, 0.5, 0.5},
		{"half", 0.5, 1, 0.5},
		{"mute", 0, 1, 0},
		{"boost", 2, 0.25, 0.5},
	}
	for _, test := range tests {
		g := nodes.NewGain(test.gain)
		in := stereoBlock(test.input)
		out := signal.EmptyFloat64(2, frames)

		g.Process([]signal.Float64{in}, []signal.Float64{out}, frames)

		for ch := range out {
			for i := range out[ch] {
				assert.InDelta(t, test.expected, out[ch][i], 1e-9, test.description)
			}
		}
	}
}

func TestGainSmoothing(t *testing.T) {
	g := nodes.NewGain(1)
	g.SetGain(0)

	in := stereoBlock(1)
	out := signal.EmptyFloat64(2, frames)
	g.Process([]signal.Float64{in}, []signal.Float64{out}, frames)

	// The gain ramps towards the target instead of jumping.
	assert.Less(t, out[0][0], 1.0)
	assert.Greater(t, out[0][0], 0.0)
	assert.Less(t, out[0][frames-1], out[0][0])

	// After a reset the gain snaps to the target.
	g.Reset()
	assert.Equal(t, float64(0), g.Gain())
	g.Process([]signal.Float64{in}, []signal.Float64{out}, frames)
	assert.Equal(t, float64(0), out[0][0])
}

func TestGainDB(t *testing.T) {
	g := nodes.NewGain(1)

	g.SetGainDB(0)
	g.Reset()
	assert.InDelta(t, 1, g.Gain(), 1e-9)

	g.SetGainDB(-6)
	g.Reset()
	assert.InDelta(t, 0.5011872, g.Gain(), 1e-6)

	g.SetGainDB(6)
	g.Reset()
	assert.InDelta(t, 1.9952623, g.Gain(), 1e-6)
}

func TestGainInfo(t *testing.T) {
	info := nodes.NewGain(1).Info()
	assert.Equal(t, 1, info.Inputs)
	assert.Equal(t, 1, info.Outputs)
	assert.Equal(t, []int{2}, info.InputChannels)
	assert.Equal(t, "Gain", nodes.NewGain(1).Name())
}
