package nodes

import (
	"math"

	"pipelined.dev/graph"
	"pipelined.dev/graph/signal"
)

// smoothing coefficient for parameter changes, per sample.
const gainSmoothing = 0.999

// Gain is a stereo gain node. Gain changes are smoothed towards the
// target over time to avoid zipper noise.
type Gain struct {
	gain   float64
	target float64
}

// NewGain returns a gain node with the given linear gain.
func NewGain(gain float64) *Gain {
	return &Gain{gain: gain, target: gain}
}

// SetGain sets the target linear gain.
func (g *Gain) SetGain(gain float64) {
	g.target = gain
}

// SetGainDB sets the target gain in decibels.
func (g *Gain) SetGainDB(db float64) {
	g.target = math.Pow(10, db/20)
}

// Gain returns the current smoothed gain value.
func (g *Gain) Gain() float64 {
	return g.gain
}

// Info returns the port shape.
func (g *Gain) Info() graph.NodeInfo {
	return graph.Stereo()
}

// Process scales the input by the smoothed gain.
func (g *Gain) Process(inputs, outputs []signal.Float64, frames int) {
	if len(inputs) == 0 || len(outputs) == 0 {
		return
	}
	in, out := inputs[0], outputs[0]
	channels := min(in.NumChannels(), out.NumChannels())
	for frame := 0; frame < frames; frame++ {
		g.gain = g.target + gainSmoothing*(g.gain-g.target)
		for ch := 0; ch < channels; ch++ {
			out[ch][frame] = in[ch][frame] * g.gain
		}
	}
}

// Reset snaps the smoothed gain to the target.
func (g *Gain) Reset() {
	g.gain = g.target
}

// Name returns the node name.
func (g *Gain) Name() string {
	return "Gain"
}
