// Package signal provides the buffer type shared between graph nodes.
// Buffers are non-interleaved float64 samples: the first dimension is
// the channel, the second is the frame. It also converts to and from
// the interleaved go-audio buffers used at the host boundary.
package signal

import (
	"time"

	"github.com/go-audio/audio"
)

// Float64 is a non-interleaved float64 signal.
type Float64 [][]float64

// EmptyFloat64 returns a zeroed buffer of specified dimensions.
func EmptyFloat64(numChannels int, bufferSize int) Float64 {
	result := make([][]float64, numChannels)
	for i := range result {
		result[i] = make([]float64, bufferSize)
	}
	return result
}

// NumChannels returns the number of channels in the buffer.
func (floats Float64) NumChannels() int {
	return len(floats)
}

// Size returns the number of frames per channel.
func (floats Float64) Size() int {
	if floats.NumChannels() == 0 {
		return 0
	}
	return len(floats[0])
}

// Clear zeroes all samples in place.
func (floats Float64) Clear() {
	for i := range floats {
		for j := range floats[i] {
			floats[i][j] = 0
		}
	}
}

// CopyFrom copies samples from the source into the buffer in place.
// Channels and frames beyond the receiver's dimensions are dropped.
func (floats Float64) CopyFrom(source Float64) {
	for i := 0; i < len(floats) && i < len(source); i++ {
		copy(floats[i], source[i])
	}
}

// DurationOf returns the time duration of samples at this sample rate.
func DurationOf(sampleRate int, samples int64) time.Duration {
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}

// AsBuffer returns the signal as an interleaved go-audio float
// buffer, for handing rendered output to a host.
func (floats Float64) AsBuffer(sampleRate int) *audio.FloatBuffer {
	numChannels := floats.NumChannels()
	if numChannels == 0 {
		return nil
	}
	buf := &audio.FloatBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
		},
		Data: make([]float64, floats.Size()*numChannels),
	}
	for i := range floats[0] {
		for j := range floats {
			buf.Data[i*numChannels+j] = floats[j][i]
		}
	}
	return buf
}

// FromBuffer converts an interleaved go-audio buffer into a
// non-interleaved signal, for feeding host input into the graph.
func FromBuffer(buf audio.Buffer) Float64 {
	if buf == nil || buf.NumFrames() == 0 {
		return nil
	}
	floatBuf := buf.AsFloatBuffer()
	numChannels := floatBuf.Format.NumChannels
	floats := make([][]float64, numChannels)
	for i := range floats {
		floats[i] = make([]float64, 0, floatBuf.NumFrames())
		for j := i; j < len(floatBuf.Data); j += numChannels {
			floats[i] = append(floats[i], floatBuf.Data[j])
		}
	}
	return floats
}
