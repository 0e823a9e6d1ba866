package nodes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pipelined.dev/graph/nodes"
	"pipelined.dev/graph/signal"
)

func TestMixerSums(t *testing.T) {
	m := nodes.NewMixer(3)

	inputs := []signal.Float64{
		stereoBlock(0.1),
		stereoBlock(0.2),
		stereoBlock(0.3),
	}
	out := stereoBlock(9) // stale content must be cleared

	m.Process(inputs, []signal.Float64{out}, frames)

	for ch := range out {
		for i := range out[ch] {
			assert.InDelta(t, 0.6, out[ch][i], 1e-9)
		}
	}
}

func TestMixerInputGains(t *testing.T) {
	m := nodes.NewMixer(2)
	m.SetInputGain(0, 0.5)
	m.SetInputGain(1, 0)
	m.SetInputGain(7, 3) // out of range, ignored

	inputs := []signal.Float64{stereoBlock(1), stereoBlock(1)}
	out := signal.EmptyFloat64(2, frames)

	m.Process(inputs, []signal.Float64{out}, frames)

	for ch := range out {
		for i := range out[ch] {
			assert.InDelta(t, 0.5, out[ch][i], 1e-9)
		}
	}
}

func TestMixerInfo(t *testing.T) {
	info := nodes.NewMixer(4).Info()
	assert.Equal(t, 4, info.Inputs)
	assert.Equal(t, []int{2, 2, 2, 2}, info.InputChannels)
	assert.Equal(t, 1, info.Outputs)
	assert.Equal(t, []int{2}, info.OutputChannels)
	assert.Equal(t, "Mixer", nodes.NewMixer(1).Name())
}
