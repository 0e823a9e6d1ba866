package mock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pipelined.dev/graph"
	"pipelined.dev/graph/mock"
	"pipelined.dev/graph/signal"
)

func TestNodeDefaults(t *testing.T) {
	n := &mock.Node{}
	assert.Equal(t, graph.Stereo(), n.Info())
	assert.Equal(t, "Mock", n.Name())

	shape := graph.Generator(1)
	n = &mock.Node{Shape: &shape, NodeName: "Osc"}
	assert.Equal(t, shape, n.Info())
	assert.Equal(t, "Osc", n.Name())
}

func TestNodeProcess(t *testing.T) {
	n := &mock.Node{Value: 2}

	in := signal.EmptyFloat64(2, 8)
	in[0][0] = 1
	out := signal.EmptyFloat64(2, 8)

	n.Process([]signal.Float64{in}, []signal.Float64{out}, 8)
	n.Process([]signal.Float64{in}, []signal.Float64{out}, 4)

	assert.Equal(t, float64(3), out[0][0])
	assert.Equal(t, float64(2), out[0][1])
	assert.Equal(t, 2, n.Counter.Blocks)
	assert.Equal(t, 12, n.Counter.Samples)

	n.Reset()
	assert.Equal(t, 1, n.Resets)
}
