package signal_test

import (
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"

	"pipelined.dev/graph/signal"
)

func TestEmptyFloat64(t *testing.T) {
	buf := signal.EmptyFloat64(2, 8)
	assert.Equal(t, 2, buf.NumChannels())
	assert.Equal(t, 8, buf.Size())
	for i := range buf {
		for _, v := range buf[i] {
			assert.Equal(t, float64(0), v)
		}
	}

	var nilBuf signal.Float64
	assert.Equal(t, 0, nilBuf.NumChannels())
	assert.Equal(t, 0, nilBuf.Size())
}

func TestClear(t *testing.T) {
	buf := signal.Float64{{1, 2}, {3, 4}}
	buf.Clear()
	assert.Equal(t, signal.Float64{{0, 0}, {0, 0}}, buf)
}

func TestCopyFrom(t *testing.T) {
	buf := signal.EmptyFloat64(2, 2)
	buf.CopyFrom(signal.Float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	assert.Equal(t, signal.Float64{{1, 2}, {4, 5}}, buf)
}

func TestDurationOf(t *testing.T) {
	tests := []struct {
		sampleRate int
		samples    int64
		expected   time.Duration
	}{
		{sampleRate: 44100, samples: 44100, expected: time.Second},
		{sampleRate: 44100, samples: 22050, expected: 500 * time.Millisecond},
		{sampleRate: 48000, samples: 480, expected: 10 * time.Millisecond},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, signal.DurationOf(test.sampleRate, test.samples))
	}
}

func TestAsBuffer(t *testing.T) {
	floats := signal.Float64{
		{1, 1, 1},
		{2, 2, 2},
	}
	buf := floats.AsBuffer(44100)
	assert.Equal(t, 2, buf.Format.NumChannels)
	assert.Equal(t, 44100, buf.Format.SampleRate)
	assert.Equal(t, []float64{1, 2, 1, 2, 1, 2}, buf.Data)

	var empty signal.Float64
	assert.Nil(t, empty.AsBuffer(44100))
}

func TestFromBuffer(t *testing.T) {
	buf := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: 44100},
		Data:   []float64{1, 2, 1, 2, 1, 2},
	}
	floats := signal.FromBuffer(buf)
	assert.Equal(t, signal.Float64{{1, 1, 1}, {2, 2, 2}}, floats)

	assert.Nil(t, signal.FromBuffer(nil))
}
