package pcm

import "fmt"

const (
	wavFormatPCM       = 1
	wavFormatMSADPCM   = 2
	wavFormatIEEEFloat = 3
	wavFormatIMAADPCM  = 17
)

// SampleType identifies the concrete representation of one amplitude value.
// The set is closed: every property accessor below switches exhaustively
// over it.
type SampleType uint8

const (
	// Unsigned8 is one unsigned byte per sample.
	Unsigned8 SampleType = iota
	// Signed16 is two bytes per sample, little-endian two's-complement.
	Signed16
	// Signed24 is three bytes per sample. The representation exists but has
	// no wire codec.
	Signed24
	// Signed32 is four bytes per sample.
	Signed32
	// MSADPCM is 4-bit Microsoft ADPCM, a placeholder with no codec.
	MSADPCM
	// IMAADPCM is 4-bit IMA ADPCM, a placeholder with no codec.
	IMAADPCM
	// Float is a four byte IEEE float per sample.
	Float
	// DoubleFloat is an eight byte IEEE float per sample.
	DoubleFloat
)

// BitDepth returns the number of bits used to store one sample.
func (t SampleType) BitDepth() uint16 {
	switch t {
	case Unsigned8:
		return 8
	case Signed16:
		return 16
	case Signed24:
		return 24
	case Signed32:
		return 32
	case MSADPCM, IMAADPCM:
		return 4
	case Float:
		return 32
	case DoubleFloat:
		return 64
	default:
		return 0
	}
}

// WavAudioFormat returns the best-fit WAVE format tag to use when writing
// this representation to a wav container.
func (t SampleType) WavAudioFormat() uint16 {
	switch t {
	case Unsigned8, Signed16, Signed24, Signed32:
		return wavFormatPCM
	case MSADPCM:
		return wavFormatMSADPCM
	case IMAADPCM:
		return wavFormatIMAADPCM
	case Float, DoubleFloat:
		return wavFormatIEEEFloat
	default:
		return 0
	}
}

// FmtExtraSize returns how many extension bytes the representation requires
// at the end of the wav fmt chunk.
func (t SampleType) FmtExtraSize() uint32 {
	switch t {
	case MSADPCM:
		return 34
	case IMAADPCM:
		return 4
	default:
		return 0
	}
}

// BytesPerSample returns the storage size of one sample in bytes. Sub-byte
// representations (ADPCM) report zero.
func (t SampleType) BytesPerSample() int {
	return int(t.BitDepth()) / 8
}

// String implements the Stringer interface.
func (t SampleType) String() string {
	switch t {
	case Unsigned8:
		return "Unsigned 8 bits"
	case Signed16:
		return "Signed 16 bits"
	case Signed24:
		return "Signed 24 bits"
	case Signed32:
		return "Signed 32 bits"
	case MSADPCM:
		return "Microsoft ADPCM"
	case IMAADPCM:
		return "IMA ADPCM"
	case Float:
		return "Float"
	case DoubleFloat:
		return "Double-precision Float"
	default:
		return fmt.Sprintf("SampleType(%d)", uint8(t))
	}
}

// Sample is a single amplitude value tagged with its representation.
// Integer variants store their value in Int, float variants in Float.
// The zero value is an Unsigned8 sample of amplitude 0.
type Sample struct {
	Type  SampleType
	Int   int32
	Float float64
}

// Uint8 returns an Unsigned8 sample.
func Uint8(v uint8) Sample {
	return Sample{Type: Unsigned8, Int: int32(v)}
}

// Int16 returns a Signed16 sample.
func Int16(v int16) Sample {
	return Sample{Type: Signed16, Int: int32(v)}
}

// Int32 returns a Signed32 sample.
func Int32(v int32) Sample {
	return Sample{Type: Signed32, Int: v}
}

// Float32Sample returns a Float sample.
func Float32Sample(v float32) Sample {
	return Sample{Type: Float, Float: float64(v)}
}

// Float64Sample returns a DoubleFloat sample.
func Float64Sample(v float64) Sample {
	return Sample{Type: DoubleFloat, Float: v}
}

// Uint8Value returns the sample value as an unsigned byte.
func (s Sample) Uint8Value() uint8 { return uint8(s.Int) }

// Int16Value returns the sample value as a signed 16-bit integer.
func (s Sample) Int16Value() int16 { return int16(s.Int) }

// String implements the Stringer interface.
func (s Sample) String() string {
	return s.Type.String()
}
