package nodes

import (
	"pipelined.dev/graph"
	"pipelined.dev/graph/signal"
)

// Mixer sums a fixed number of stereo inputs into one stereo output,
// with an individual gain per input.
type Mixer struct {
	gains []float64
}

// NewMixer returns a mixer with the given number of input ports, all
// at unity gain.
func NewMixer(inputs int) *Mixer {
	gains := make([]float64, inputs)
	for i := range gains {
		gains[i] = 1
	}
	return &Mixer{gains: gains}
}

// SetInputGain sets the linear gain of one input. Out-of-range inputs
// are ignored.
func (m *Mixer) SetInputGain(input int, gain float64) {
	if input >= 0 && input < len(m.gains) {
		m.gains[input] = gain
	}
}

// Info returns the port shape: n stereo inputs, one stereo output.
func (m *Mixer) Info() graph.NodeInfo {
	inputs := make([]int, len(m.gains))
	for i := range inputs {
		inputs[i] = 2
	}
	return graph.Custom(inputs, []int{2}, 0)
}

// Process sums the inputs into the output with per-input gain.
func (m *Mixer) Process(inputs, outputs []signal.Float64, frames int) {
	if len(outputs) == 0 {
		return
	}
	out := outputs[0]
	out.Clear()
	for idx, in := range inputs {
		if in.NumChannels() == 0 {
			continue
		}
		gain := float64(1)
		if idx < len(m.gains) {
			gain = m.gains[idx]
		}
		channels := min(in.NumChannels(), out.NumChannels())
		for frame := 0; frame < frames; frame++ {
			for ch := 0; ch < channels; ch++ {
				out[ch][frame] += in[ch][frame] * gain
			}
		}
	}
}

// Reset is a no-op: the mixer is stateless between blocks.
func (m *Mixer) Reset() {}

// Name returns the node name.
func (m *Mixer) Name() string {
	return "Mixer"
}
