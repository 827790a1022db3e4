package pcm

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

const (
	floatPCM8Center = 127.5
	scalePCMInt8    = 127.5
	scalePCMInt16   = 32768.0
	scalePCMInt24   = 8388608.0
	scalePCMInt32   = 2147483648.0
)

var (
	errNotIntegerPCM  = errors.New("not an integer sample representation")
	errNilAudioBuffer = errors.New("nil audio buffer")
)

// ToDoubleFloat converts a sample into a DoubleFloat sample in [-1, 1].
// Only the integer representations with implemented values convert; the
// placeholders return ErrUnimplementedSampleType.
func (s Sample) ToDoubleFloat() (Sample, error) {
	switch s.Type {
	case Unsigned8:
		return Float64Sample((float64(s.Uint8Value())*2)/math.MaxUint8 - 1), nil
	case Signed16:
		return Float64Sample(float64(s.Int16Value()) / math.MaxInt16), nil
	case Signed32:
		return Float64Sample(float64(s.Int) / math.MaxInt32), nil
	default:
		return Sample{}, fmt.Errorf("%w: no conversion to double float for %s", ErrUnimplementedSampleType, s.Type)
	}
}

// IntBuffer converts the signal to an interleaved go-audio int buffer.
// It is defined for the integer representations only.
func (p *PCM) IntBuffer() (*audio.IntBuffer, error) {
	sampleType := p.Parameters.SampleType

	switch sampleType {
	case Unsigned8, Signed16, Signed24, Signed32:
	default:
		return nil, fmt.Errorf("%w: %s", errNotIntegerPCM, sampleType)
	}

	buf := &audio.IntBuffer{
		Format:         p.format(),
		SourceBitDepth: int(sampleType.BitDepth()),
		Data:           make([]int, 0, len(p.Frames)*int(p.Parameters.NumChannels)),
	}

	for _, frame := range p.Frames {
		for _, sample := range frame {
			buf.Data = append(buf.Data, int(sample.Int))
		}
	}

	return buf, nil
}

// Float32Buffer converts the signal to an interleaved go-audio float
// buffer with samples normalized to [-1, 1].
func (p *PCM) Float32Buffer() (*audio.Float32Buffer, error) {
	sampleType := p.Parameters.SampleType

	buf := &audio.Float32Buffer{
		Format:         p.format(),
		SourceBitDepth: int(sampleType.BitDepth()),
		Data:           make([]float32, 0, len(p.Frames)*int(p.Parameters.NumChannels)),
	}

	for _, frame := range p.Frames {
		for _, sample := range frame {
			switch sampleType {
			case Unsigned8, Signed16, Signed24, Signed32:
				buf.Data = append(buf.Data, normalizePCMInt(sample.Int, sampleType))
			case Float, DoubleFloat:
				buf.Data = append(buf.Data, clampFloat32(float32(sample.Float), -1, 1))
			default:
				return nil, fmt.Errorf("%w: cannot normalize %s", ErrUnimplementedSampleType, sampleType)
			}
		}
	}

	return buf, nil
}

// FromIntBuffer builds a PCM signal out of an interleaved go-audio int
// buffer, storing each value as the passed integer representation. A
// trailing partial frame in the buffer is dropped.
func FromIntBuffer(buf *audio.IntBuffer, t SampleType) (*PCM, error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilAudioBuffer
	}

	switch t {
	case Unsigned8, Signed16, Signed24, Signed32:
	default:
		return nil, fmt.Errorf("%w: %s", errNotIntegerPCM, t)
	}

	numChans := buf.Format.NumChannels
	if numChans < 1 {
		return nil, errNoChannels
	}

	frameCount := len(buf.Data) / numChans
	frames := make([]Frame, frameCount)

	for i := range frames {
		frame := make(Frame, numChans)
		for j := range frame {
			frame[j] = Sample{Type: t, Int: int32(buf.Data[i*numChans+j])}
		}

		frames[i] = frame
	}

	return &PCM{
		Parameters: Parameters{
			SampleRate:  uint32(buf.Format.SampleRate),
			NumChannels: uint16(numChans),
			SampleType:  t,
		},
		Frames: frames,
	}, nil
}

func (p *PCM) format() *audio.Format {
	return &audio.Format{
		NumChannels: int(p.Parameters.NumChannels),
		SampleRate:  int(p.Parameters.SampleRate),
	}
}

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

func normalizePCMInt(sample int32, t SampleType) float32 {
	switch t {
	case Unsigned8:
		return float32((float64(sample) - floatPCM8Center) / scalePCMInt8)
	case Signed16:
		return float32(float64(sample) / scalePCMInt16)
	case Signed24:
		return float32(float64(sample) / scalePCMInt24)
	case Signed32:
		return float32(float64(sample) / scalePCMInt32)
	default:
		return 0
	}
}
